package drill

import (
	"cmp"
	"slices"
)

// Report summarizes a finished session.
type Report struct {
	// Rows holds the completed cards, most-missed first. Cards with the
	// same wrong count keep the order in which they were completed.
	Rows    []Card
	Total   int
	Perfect int // answered correctly on the first try
	Missed  int // marked wrong at least once
}

// BuildReport ranks completed cards worst-first and counts them.
func BuildReport(completed []Card) Report {
	rows := slices.Clone(completed)
	slices.SortStableFunc(rows, func(a, b Card) int {
		return cmp.Compare(b.WrongCount, a.WrongCount)
	})

	r := Report{Rows: rows, Total: len(rows)}
	for _, c := range rows {
		if c.Perfect() {
			r.Perfect++
		} else {
			r.Missed++
		}
	}
	return r
}

// MissedRows returns the rows with at least one wrong answer, in report
// order.
func (r Report) MissedRows() []Card {
	return r.Rows[:r.Missed]
}
