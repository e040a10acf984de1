// Package report implements the aggregations the views of Money Diary are
// built from. All functions are pure: they never touch the database and
// never modify the transactions passed in, so they can be called on every
// state change.
package report

import (
	"github.com/moneydiary/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// BalanceSummary holds the totals for a collection of transactions.
type BalanceSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Balance reduces the transactions to their income, expense and net totals
// in a single pass. An empty collection yields all zeros.
func Balance(transactions []models.Transaction) BalanceSummary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.Kind == models.KindIncome {
			income = income.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}

	return BalanceSummary{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}
