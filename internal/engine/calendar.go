package engine

import (
	"cmp"
	"time"

	"github.com/tartampluch/go-agecalc/internal/config"
)

// CalendarDate is a day in the proleptic Gregorian calendar, without time of day
// or location. Values built by NewCalendarDate or DateOf always exist.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate validates (year, month, day) and returns the matching date.
// Impossible combinations such as Feb 30 are rejected, never rolled over.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if err := ValidateCalendarDate(day, month, year); err != nil {
		return CalendarDate{}, err
	}
	return CalendarDate{Year: year, Month: time.Month(month), Day: day}, nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// normalizedDate builds a date the way time.Date does, so Feb 29 of a common
// year becomes Mar 1. Only the next-birthday projection relies on that.
func normalizedDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return cmp.Compare(d.Year, o.Year)
	case d.Month != o.Month:
		return cmp.Compare(d.Month, o.Month)
	default:
		return cmp.Compare(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

// DaysSince returns the number of whole days from o to d (negative if d is earlier).
// Both dates are taken at UTC midnight, so daylight saving never shifts the count.
func (d CalendarDate) DaysSince(o CalendarDate) int {
	return int((d.Time().Unix() - o.Time().Unix()) / config.SecondsPerDay)
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return d.Time().Format(config.DateFormatDisplay)
}
