// Package types implements special types for Money Diary.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Period is a symbolic, resolvable calendar range used to filter and
// aggregate transactions.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodLastMonth Period = "lastMonth"
	PeriodYear      Period = "year"
	PeriodLastYear  Period = "lastYear"
	PeriodAllTime   Period = "allTime"
)

// BudgetPeriods are the periods a budget plan can recur over.
var BudgetPeriods = []Period{PeriodWeek, PeriodMonth, PeriodYear}

// Periods returns all period selectors.
func Periods() []Period {
	return []Period{
		PeriodToday,
		PeriodYesterday,
		PeriodWeek,
		PeriodMonth,
		PeriodLastMonth,
		PeriodYear,
		PeriodLastYear,
		PeriodAllTime,
	}
}

// String returns the period selector as a string.
func (p Period) String() string {
	return string(p)
}

// Valid reports whether p is a known period selector.
func (p Period) Valid() bool {
	for _, period := range Periods() {
		if p == period {
			return true
		}
	}

	return false
}

// ValidForBudget reports whether p can be used as the recurrence of a
// budget plan.
func (p Period) ValidForBudget() bool {
	for _, period := range BudgetPeriods {
		if p == period {
			return true
		}
	}

	return false
}

// ParsePeriod parses a period selector string.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.TrimSpace(s))
	if !p.Valid() {
		return "", fmt.Errorf("%q is not a valid period", s)
	}

	return p, nil
}

// Scan reads the value from the database.
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Period(v)
	case []byte:
		*p = Period(v)
	default:
		return fmt.Errorf("cannot scan %T into a period", value)
	}

	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Period) GormDataType() string {
	return "text"
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls into the interval.
// The start instant is included, the end instant is not.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Interval resolves the period selector to a concrete half-open interval
// relative to the reference instant. Resolution uses the calendar of the
// reference instant's location. Weeks start on Monday.
func (p Period) Interval(now time.Time) Interval {
	year, month, day := now.Date()
	loc := now.Location()
	today := time.Date(year, month, day, 0, 0, 0, 0, loc)

	switch p {
	case PeriodToday:
		return Interval{Start: today, End: today.AddDate(0, 0, 1)}
	case PeriodYesterday:
		return Interval{Start: today.AddDate(0, 0, -1), End: today}
	case PeriodWeek:
		// time.Weekday counts from Sunday, shift so that Monday is 0
		offset := (int(now.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return Interval{Start: start, End: start.AddDate(0, 0, 7)}
	case PeriodMonth:
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(0, 1, 0)}
	case PeriodLastMonth:
		end := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		return Interval{Start: end.AddDate(0, -1, 0), End: end}
	case PeriodYear:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Interval{Start: start, End: start.AddDate(1, 0, 0)}
	case PeriodLastYear:
		end := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Interval{Start: end.AddDate(-1, 0, 0), End: end}
	case PeriodAllTime:
		// Bounded rather than unbounded so that both instants survive a
		// round trip through the database. Contains every realistic date.
		return Interval{
			Start: time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(9999, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	return Interval{}
}
