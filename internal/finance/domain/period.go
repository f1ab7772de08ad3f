package domain

import (
	"time"

	"github.com/mwielgosz/SpendTracker/internal/finance/errors"
)

// Period is a named time-window selector used to filter transactions.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// ParsePeriod validates a period query value. An empty value defaults to monthly.
func ParsePeriod(value string) (Period, error) {
	if value == "" {
		return PeriodMonthly, nil
	}
	switch p := Period(value); p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodAll:
		return p, nil
	}
	return "", errors.NewValidationError("Invalid period: must be one of daily, weekly, monthly, yearly, all")
}

// Start returns the inclusive lower bound of the period relative to now.
// The second return value is false for PeriodAll, which has no lower bound.
func (p Period) Start(now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodDaily:
		return today, true
	case PeriodWeekly:
		// back to the most recent Monday
		offset := (int(today.Weekday()) + 6) % 7
		return today.AddDate(0, 0, -offset), true
	case PeriodMonthly:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), true
	case PeriodYearly:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), true
	default:
		return time.Time{}, false
	}
}
