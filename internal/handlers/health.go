package handlers

import (
	"net/http"
	"time"

	"github.com/bankdemo/retailbank/internal/handlers/render"
)

func handleHealth(service string, environment string) http.Handler {
	type response struct {
		Status      string    `json:"status"`
		Service     string    `json:"service"`
		Environment string    `json:"environment"`
		Time        time.Time `json:"time"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, response{
			Status:      "ok",
			Service:     service,
			Environment: environment,
			Time:        time.Now().UTC(),
		})
	})
}
