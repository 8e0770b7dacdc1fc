// Package seed provides deterministic account fixtures for demo
// deployments and tests.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/bankdemo/retailbank/internal/service/ledger"
)

// DemoAccounts returns the canonical demo fixtures. Seeding them on
// startup gives a fresh in-memory deployment something to look at.
func DemoAccounts() []ledger.CreateAccountParams {
	return []ledger.CreateAccountParams{
		{
			CustomerID:     "CUST-001",
			AccountNumber:  "ACC-1001",
			InitialBalance: decimal.RequireFromString("5420.75"),
			Currency:       "USD",
		},
		{
			CustomerID:     "CUST-002",
			AccountNumber:  "ACC-1002",
			InitialBalance: decimal.RequireFromString("12850.20"),
			Currency:       "USD",
		},
		{
			CustomerID:     "CUST-003",
			AccountNumber:  "ACC-1003",
			InitialBalance: decimal.RequireFromString("3200.00"),
			Currency:       "USD",
		},
	}
}

// Generator produces account fixtures from a seeded source, so tests
// that need volume get reproducible data
type Generator struct {
	rnd *rand.Rand
	n   int
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Account returns the next generated fixture. Balances land between
// 0.00 and 99999.99 with cent precision.
func (g *Generator) Account() ledger.CreateAccountParams {
	g.n++
	cents := g.rnd.Int63n(10_000_000)

	return ledger.CreateAccountParams{
		CustomerID:     fmt.Sprintf("CUST-%03d", g.n),
		AccountNumber:  fmt.Sprintf("ACC-%04d", 1000+g.n),
		InitialBalance: decimal.New(cents, -2),
		Currency:       "USD",
	}
}
