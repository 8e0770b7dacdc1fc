package handlers

import (
	"net/http"
	"time"

	"github.com/bankdemo/retailbank/internal/handlers/render"
	"github.com/bankdemo/retailbank/internal/models"
)

type complianceInputs struct {
	EnvironmentType string    `json:"environmentType"`
	RequestedAt     time.Time `json:"requestedAt"`
	ChangeType      string    `json:"changeType"`
}

func handleListPolicies(complianceService complianceService) http.Handler {
	type policyResponse struct {
		PolicyID    string `json:"policyId"`
		Name        string `json:"name"`
		Severity    string `json:"severity"`
		Description string `json:"description"`
		Enabled     bool   `json:"enabled"`
	}

	type response struct {
		Policies []policyResponse `json:"policies"`
		Count    int              `json:"count"`
		AsOf     time.Time        `json:"as_of"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		policies := complianceService.Policies()

		res := response{
			Policies: make([]policyResponse, 0, len(policies)),
			Count:    len(policies),
			AsOf:     time.Now().UTC(),
		}
		for _, p := range policies {
			res.Policies = append(res.Policies, policyResponse{
				PolicyID:    p.ID,
				Name:        p.Name,
				Severity:    p.Severity,
				Description: p.Description,
				Enabled:     p.Enabled,
			})
		}

		render.JSON(w, res)
	})
}

func handleComplianceCheck(complianceService complianceService) http.Handler {
	type request struct {
		EnvironmentType string `json:"environmentType" validate:"required"`
		RequestedAt     string `json:"requestedAt"`
		ChangeType      string `json:"changeType"`
	}

	type response struct {
		Decision    string           `json:"decision"`
		PolicyID    string           `json:"policyId,omitempty"`
		Reason      string           `json:"reason,omitempty"`
		EvaluatedAt time.Time        `json:"evaluatedAt"`
		Inputs      complianceInputs `json:"inputs"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		var requestedAt time.Time
		if req.RequestedAt != "" {
			requestedAt, err = time.Parse(time.RFC3339, req.RequestedAt)
			if err != nil {
				render.ServiceError(w, "requestedAt must be a valid datetime string (ISO 8601)", http.StatusBadRequest)
				return
			}
		}

		decision := complianceService.Check(models.ComplianceCheck{
			EnvironmentType: req.EnvironmentType,
			RequestedAt:     requestedAt,
			ChangeType:      req.ChangeType,
		})

		render.JSON(w, response{
			Decision:    decision.Decision,
			PolicyID:    decision.PolicyID,
			Reason:      decision.Reason,
			EvaluatedAt: decision.EvaluatedAt,
			Inputs: complianceInputs{
				EnvironmentType: decision.Inputs.EnvironmentType,
				RequestedAt:     decision.Inputs.RequestedAt,
				ChangeType:      decision.Inputs.ChangeType,
			},
		})
	})
}
