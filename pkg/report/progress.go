package report

import (
	"github.com/shopspring/decimal"
)

// BudgetStatus is a coarse tier of how far along a budget is.
type BudgetStatus string

const (
	BudgetUnder BudgetStatus = "under"
	BudgetNear  BudgetStatus = "near"
	BudgetOver  BudgetStatus = "over"
)

var (
	nearThreshold = decimal.NewFromFloat(0.7)
	overThreshold = decimal.NewFromFloat(0.9)
)

// BudgetProgress describes how much of a budget plan has been consumed.
type BudgetProgress struct {
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // Negative when the budget is exceeded
	RawRatio  decimal.Decimal // Spent divided by limit, unclamped
	Ratio     decimal.Decimal // RawRatio clamped to [0, 1], for progress bars
	Percent   int64           // Display percentage, capped at 100
	Status    BudgetStatus
}

// Progress calculates the consumption of a budget with the given limit.
// A limit of zero or less yields a ratio of 0 rather than an error, callers
// that want to reject such limits must validate before saving the plan.
func Progress(limit, spent decimal.Decimal) BudgetProgress {
	raw := decimal.Zero
	if limit.IsPositive() {
		raw = spent.Div(limit)
	}

	ratio := raw
	if ratio.IsNegative() {
		ratio = decimal.Zero
	}
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}

	status := BudgetUnder
	if ratio.GreaterThanOrEqual(overThreshold) {
		status = BudgetOver
	} else if ratio.GreaterThanOrEqual(nearThreshold) {
		status = BudgetNear
	}

	return BudgetProgress{
		Limit:     limit,
		Spent:     spent,
		Remaining: limit.Sub(spent),
		RawRatio:  raw,
		Ratio:     ratio,
		Percent:   ratio.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Status:    status,
	}
}
