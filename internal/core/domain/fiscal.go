package domain

import (
	"fmt"
	"time"
)

// FiscalPeriod is a closed date interval. Periods are derived from calendar
// conventions, never stored.
type FiscalPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// QuarterPeriod returns the calendar quarter used for BTW returns.
func QuarterPeriod(year, quarter int) (FiscalPeriod, error) {
	if quarter < 1 || quarter > 4 {
		return FiscalPeriod{}, fmt.Errorf("quarter must be between 1 and 4, got %d", quarter)
	}
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return FiscalPeriod{Start: start, End: end}, nil
}

// YearPeriod returns the calendar year used for the audit export and for
// annual tax aggregation.
func YearPeriod(year int) FiscalPeriod {
	return FiscalPeriod{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether t falls within the closed interval [Start, End].
func (p FiscalPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
