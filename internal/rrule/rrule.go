package rrule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var weekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// WeeklyOn returns an open-ended weekly rule firing at midnight on day,
// anchored one week before ref so both directions have occurrences.
func WeeklyOn(day time.Weekday, ref time.Time) (*rrule.RRule, error) {
	start := midnight(ref).AddDate(0, 0, -7)
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Byweekday: []rrule.Weekday{weekdays[day]},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekly rule for %s: %w", day, err)
	}
	return rule, nil
}

// NextWeekday returns the first day on or after ref (or strictly after when
// inclusive is false) that falls on day.
func NextWeekday(day time.Weekday, ref time.Time, inclusive bool) (time.Time, error) {
	rule, err := WeeklyOn(day, ref)
	if err != nil {
		return time.Time{}, err
	}

	next := rule.After(midnight(ref), inclusive)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("no %s after %s", day, ref.Format("2006-01-02"))
	}
	return next, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
