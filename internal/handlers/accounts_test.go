package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bankdemo/retailbank/internal/seed"
)

type accountBody struct {
	AccountID     string  `json:"accountId"`
	CustomerID    string  `json:"customerId"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type accountListBody struct {
	Accounts []accountBody `json:"accounts"`
	Count    int           `json:"count"`
	AsOf     string        `json:"as_of"`
}

func createAccount(t *testing.T, srv string, body string) accountBody {
	t.Helper()

	code, respBody := do(t, http.MethodPost, srv+"/api/v1/accounts", body)
	require.Equalf(t, http.StatusCreated, code, "account should be created. Body: %s", respBody)

	var account accountBody
	require.NoError(t, json.Unmarshal([]byte(respBody), &account))
	return account
}

func Test_AccountHandlers(t *testing.T) {
	t.Parallel()

	t.Run("create ok", func(t *testing.T) {
		srv := newTestServer(t)

		account := createAccount(t, srv.URL, `{
			"customerId": "CUST-009",
			"accountNumber": "ACC-9001",
			"initialBalance": 100,
			"currency": "USD"
		}`)

		require.NotEmpty(t, account.AccountID, "account id should be allocated")
		require.Equal(t, "CUST-009", account.CustomerID)
		require.Equal(t, "ACC-9001", account.AccountNumber)
		require.Equal(t, 100.0, account.Balance)
		require.Equal(t, "USD", account.Currency)
		require.Equal(t, "ACTIVE", account.Status)
		require.NotEmpty(t, account.CreatedAt)
	})

	t.Run("create with defaults", func(t *testing.T) {
		srv := newTestServer(t)

		account := createAccount(t, srv.URL, `{"customerId": "CUST-001", "accountNumber": "ACC-1001"}`)

		require.Equal(t, 0.0, account.Balance, "omitted initial balance should yield 0")
		require.Equal(t, "USD", account.Currency, "currency should default to USD")
	})

	t.Run("create missing fields fail", func(t *testing.T) {
		srv := newTestServer(t)

		code, body := do(t, http.MethodPost, srv.URL+"/api/v1/accounts", `{"accountNumber": "ACC-1001"}`)

		require.Equalf(t, http.StatusBadRequest, code, "not expected code. Body: %s", body)
		require.JSONEq(t, `{
			"error": "validation_failed",
			"message": "Request validation failed",
			"fields": {"customerId": "This field is required"}
		}`, body)
	})

	t.Run("get by id", func(t *testing.T) {
		srv := newTestServer(t)

		created := createAccount(t, srv.URL, `{"customerId": "CUST-001", "accountNumber": "ACC-1001"}`)

		code, body := do(t, http.MethodGet, srv.URL+"/api/v1/accounts/"+created.AccountID, "")
		require.Equal(t, http.StatusOK, code)

		var got accountBody
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		require.Equal(t, created, got, "stored account should be returned unmodified")
	})

	t.Run("get unknown id fail", func(t *testing.T) {
		srv := newTestServer(t)

		code, body := do(t, http.MethodGet, srv.URL+"/api/v1/accounts/7b6cb0a8-9b31-4bd6-b1a8-9d3c55555555", "")

		require.Equal(t, http.StatusNotFound, code)
		require.JSONEq(t, `{
			"error": "service_error",
			"message": "Account not found"
		}`, body)
	})

	t.Run("get malformed id fail", func(t *testing.T) {
		srv := newTestServer(t)

		code, _ := do(t, http.MethodGet, srv.URL+"/api/v1/accounts/not-a-uuid", "")

		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("list with customer filter", func(t *testing.T) {
		srv := newTestServer(t)

		first := createAccount(t, srv.URL, `{"customerId": "CUST-001", "accountNumber": "ACC-1001"}`)
		_ = createAccount(t, srv.URL, `{"customerId": "CUST-002", "accountNumber": "ACC-2001"}`)
		third := createAccount(t, srv.URL, `{"customerId": "CUST-001", "accountNumber": "ACC-1002"}`)

		code, body := do(t, http.MethodGet, srv.URL+"/api/v1/accounts", "")
		require.Equal(t, http.StatusOK, code)

		var all accountListBody
		require.NoError(t, json.Unmarshal([]byte(body), &all))
		require.Equal(t, 3, all.Count)
		require.Len(t, all.Accounts, 3)
		require.Equal(t, first.AccountID, all.Accounts[0].AccountID, "accounts should keep insertion order")
		require.NotEmpty(t, all.AsOf)

		code, body = do(t, http.MethodGet, srv.URL+"/api/v1/accounts?customerId=CUST-001", "")
		require.Equal(t, http.StatusOK, code)

		var filtered accountListBody
		require.NoError(t, json.Unmarshal([]byte(body), &filtered))
		require.Equal(t, 2, filtered.Count)
		require.Equal(t, first.AccountID, filtered.Accounts[0].AccountID)
		require.Equal(t, third.AccountID, filtered.Accounts[1].AccountID)
	})

	t.Run("list many generated accounts", func(t *testing.T) {
		srv := newTestServer(t)

		gen := seed.NewGenerator(99)
		created := make([]accountBody, 0, 25)
		for range 25 {
			params := gen.Account()
			body := fmt.Sprintf(
				`{"customerId": %q, "accountNumber": %q, "initialBalance": %s}`,
				params.CustomerID, params.AccountNumber, params.InitialBalance.String(),
			)
			created = append(created, createAccount(t, srv.URL, body))
		}

		code, body := do(t, http.MethodGet, srv.URL+"/api/v1/accounts", "")
		require.Equal(t, http.StatusOK, code)

		var list accountListBody
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		require.Equal(t, 25, list.Count)
		for i, account := range list.Accounts {
			require.Equalf(t, created[i].AccountID, account.AccountID, "account %d out of insertion order", i)
			require.Equal(t, created[i].Balance, account.Balance)
		}
	})

	t.Run("suspend and activate", func(t *testing.T) {
		srv := newTestServer(t)

		created := createAccount(t, srv.URL, `{"customerId": "CUST-001", "accountNumber": "ACC-1001"}`)

		code, body := do(t, http.MethodPut, srv.URL+"/api/v1/accounts/"+created.AccountID+"/suspend", "")
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, body, `"status":"SUSPENDED"`)

		code, body = do(t, http.MethodPut, srv.URL+"/api/v1/accounts/"+created.AccountID+"/activate", "")
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, body, `"status":"ACTIVE"`)
	})
}
