package report

import (
	"sort"
	"time"

	"github.com/moneydiary/backend/pkg/models"
)

// TransactionSection is one calendar day of transactions.
type TransactionSection struct {
	Date         time.Time // Start of the day
	Transactions []models.Transaction
}

// GroupByDay groups the transactions by calendar day. Sections are ordered
// newest day first, and within a section transactions are ordered newest
// first. Grouping the same input twice yields the same order.
func GroupByDay(transactions []models.Transaction) []TransactionSection {
	groups := make(map[time.Time]*TransactionSection)

	for _, t := range transactions {
		day := startOfDay(t.Date)

		section, ok := groups[day]
		if !ok {
			section = &TransactionSection{Date: day}
			groups[day] = section
		}

		section.Transactions = append(section.Transactions, t)
	}

	sections := make([]TransactionSection, 0, len(groups))
	for _, section := range groups {
		sort.SliceStable(section.Transactions, func(i, j int) bool {
			return section.Transactions[i].Date.After(section.Transactions[j].Date)
		})

		sections = append(sections, *section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Date.After(sections[j].Date)
	})

	return sections
}

// DayLabel returns the presentation label for a section date: "Today",
// "Yesterday", or the date itself for anything older.
//
// Labels are English. Hosts that need localized labels can branch on the
// relative day the same way this function does and render the date with
// their own locale formatter.
func DayLabel(day, now time.Time) string {
	today := startOfDay(now)
	day = startOfDay(day)

	if day.Equal(today) {
		return "Today"
	}

	if day.Equal(today.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	return day.Format("Jan 2, 2006")
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
