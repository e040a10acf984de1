package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/moneydiary/backend/pkg/models"
	"github.com/moneydiary/backend/pkg/types"
	"github.com/shopspring/decimal"
)

// CategoryStatistic is the spending of one category within a period.
type CategoryStatistic struct {
	Category         models.Category
	Amount           decimal.Decimal
	TransactionCount int
}

// Percentage returns the share of total this category contributes, as a
// value between 0 and 1. A total of zero or less yields 0.
func (s CategoryStatistic) Percentage(total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	return s.Amount.Div(total)
}

// CategoryStatistics groups the expense transactions inside the interval by
// category and sums them up. When account is set, only transactions of that
// account are considered. Transactions without a category are left out.
//
// The result is sorted by amount, largest first. Categories with equal
// amounts keep the order in which they first appear in the input.
func CategoryStatistics(transactions []models.Transaction, interval types.Interval, account *uuid.UUID) []CategoryStatistic {
	groups := make(map[uuid.UUID]*CategoryStatistic)
	var order []uuid.UUID

	for _, t := range transactions {
		if t.Kind != models.KindExpense {
			continue
		}

		if !interval.Contains(t.Date) {
			continue
		}

		if account != nil && (t.AccountID == nil || *t.AccountID != *account) {
			continue
		}

		// Uncategorized expenses count towards balance totals, but have no
		// place in a per-category breakdown
		if t.CategoryID == nil {
			continue
		}

		group, ok := groups[*t.CategoryID]
		if !ok {
			group = &CategoryStatistic{Category: t.Category}
			groups[*t.CategoryID] = group
			order = append(order, *t.CategoryID)
		}

		group.Amount = group.Amount.Add(t.Amount)
		group.TransactionCount++
	}

	statistics := make([]CategoryStatistic, 0, len(order))
	for _, id := range order {
		statistics = append(statistics, *groups[id])
	}

	sort.SliceStable(statistics, func(i, j int) bool {
		return statistics[i].Amount.GreaterThan(statistics[j].Amount)
	})

	return statistics
}

// Summary bundles the totals and the category breakdown for one period,
// the shape the dashboard consumes.
type Summary struct {
	Interval   types.Interval
	Balance    BalanceSummary
	Categories []CategoryStatistic
}

// Summarize computes the dashboard summary for the transactions inside the
// interval, optionally restricted to a single account.
func Summarize(transactions []models.Transaction, interval types.Interval, account *uuid.UUID) Summary {
	var matching []models.Transaction
	for _, t := range transactions {
		if !interval.Contains(t.Date) {
			continue
		}

		if account != nil && (t.AccountID == nil || *t.AccountID != *account) {
			continue
		}

		matching = append(matching, t)
	}

	return Summary{
		Interval:   interval,
		Balance:    Balance(matching),
		Categories: CategoryStatistics(matching, interval, account),
	}
}
