// Package aggregation derives every number the tracker shows from raw
// income and expense records: date-range membership, filtering, totals,
// category breakdowns, the remaining balance and the budget alert.
//
// All functions are pure. Calendar arithmetic happens in the location of
// the evaluation instant passed in as now.
package aggregation

import (
	"fmt"
	"strings"
	"time"

	apperrors "spendwise/internal/errors"
)

// DateFilter selects records by calendar range relative to the evaluation
// instant.
type DateFilter string

const (
	DateAll       DateFilter = "all"
	DateToday     DateFilter = "today"
	DateThisWeek  DateFilter = "thisWeek"
	DateThisMonth DateFilter = "thisMonth"
	DateThisYear  DateFilter = "thisYear"
)

// DayLayout is the storage format of a record's date.
const DayLayout = "2006-01-02"

// ParseDateFilter accepts the filter names used by clients. An empty string
// means DateAll.
func ParseDateFilter(s string) (DateFilter, error) {
	switch f := DateFilter(strings.TrimSpace(s)); f {
	case "", DateAll:
		return DateAll, nil
	case DateToday, DateThisWeek, DateThisMonth, DateThisYear:
		return f, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrValidation,
		fmt.Sprintf("unknown date filter %q (use all, today, thisWeek, thisMonth or thisYear)", s))
}

// Membership reports which ranges a day falls into.
type Membership struct {
	Today     bool `json:"today"`
	ThisWeek  bool `json:"this_week"`
	ThisMonth bool `json:"this_month"`
	ThisYear  bool `json:"this_year"`
}

// ParseDay parses a stored date as midnight of that calendar day in loc.
// Full RFC 3339 timestamps are accepted too; only their calendar day in loc
// is kept.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(DayLayout, s, loc); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrParse, fmt.Errorf("date %q: %w", s, err))
	}
	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// WeekBounds returns Sunday 00:00:00.000 and the following Saturday
// 23:59:59.999 of the week containing now.
func WeekBounds(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// Classify reports the ranges day belongs to, relative to now.
func Classify(day, now time.Time) Membership {
	day = day.In(now.Location())
	dy, dm, dd := day.Date()
	ny, nm, nd := now.Date()

	start, end := WeekBounds(now)
	return Membership{
		Today:     dy == ny && dm == nm && dd == nd,
		ThisWeek:  !day.Before(start) && !day.After(end),
		ThisMonth: dy == ny && dm == nm,
		ThisYear:  dy == ny,
	}
}

// InRange reports whether day satisfies filter relative to now.
func InRange(filter DateFilter, day, now time.Time) bool {
	m := Classify(day, now)
	switch filter {
	case DateAll, "":
		return true
	case DateToday:
		return m.Today
	case DateThisWeek:
		return m.ThisWeek
	case DateThisMonth:
		return m.ThisMonth
	case DateThisYear:
		return m.ThisYear
	}
	return false
}
