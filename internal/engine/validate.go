package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-agecalc/internal/config"
)

// Field identifies one of the three raw inputs.
type Field string

const (
	FieldDay   Field = "day"
	FieldMonth Field = "month"
	FieldYear  Field = "year"
)

// FieldError reports a single-field range or format violation.
// Reason is plain English; Key and the bound fields let callers render a
// localized message instead.
type FieldError struct {
	Field  Field
	Reason string
	Key    string

	Min, Max    int // Accepted range, when the failure is a range check.
	Month, Year int // Context of a days-in-month failure.
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FieldErrors collects the independent failures of several fields.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// For returns the error attached to field, or nil.
func (e FieldErrors) For(field Field) *FieldError {
	for _, fe := range e {
		if fe.Field == field {
			return fe
		}
	}
	return nil
}

// CalendarError reports a day/month/year combination that does not exist.
type CalendarError struct {
	Year, Month, Day int
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("%s: %04d-%02d-%02d", config.ErrCalendarDate, e.Year, e.Month, e.Day)
}

// FutureDateError reports a birth date later than the reference date.
type FutureDateError struct {
	Date      CalendarDate
	Reference CalendarDate
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("%s: %s is after %s", config.ErrFutureDate, e.Date, e.Reference)
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year, or 0 if month is not in 1..12.
func DaysInMonth(month, year int) int {
	switch time.Month(month) {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

// ValidateDay checks day against 1..31 and, when month and year are known
// (non-zero, month in range), against the length of that month.
func ValidateDay(day, month, year int) error {
	if day < config.MinDay || day > config.MaxDay {
		return &FieldError{
			Field:  FieldDay,
			Reason: config.ErrDayInvalid,
			Key:    config.TKeyErrDayInvalid,
			Min:    config.MinDay,
			Max:    config.MaxDay,
		}
	}
	if month == 0 || year == 0 {
		return nil
	}
	if limit := DaysInMonth(month, year); limit > 0 && day > limit {
		return &FieldError{
			Field:  FieldDay,
			Reason: fmt.Sprintf("%s (%s %d has %d days)", config.ErrDayInMonth, time.Month(month), year, limit),
			Key:    config.TKeyErrDayInMonth,
			Min:    config.MinDay,
			Max:    limit,
			Month:  month,
			Year:   year,
		}
	}
	return nil
}

// ValidateMonth checks month against 1..12.
func ValidateMonth(month int) error {
	if month < config.MinMonth || month > config.MaxMonth {
		return &FieldError{
			Field:  FieldMonth,
			Reason: config.ErrMonthInvalid,
			Key:    config.TKeyErrMonthInvalid,
			Min:    config.MinMonth,
			Max:    config.MaxMonth,
		}
	}
	return nil
}

// ValidateYear checks year against [config.MinYear, currentYear].
func ValidateYear(year, currentYear int) error {
	if year < config.MinYear || year > currentYear {
		return &FieldError{
			Field:  FieldYear,
			Reason: fmt.Sprintf("%s (%d-%d)", config.ErrYearInvalid, config.MinYear, currentYear),
			Key:    config.TKeyErrYearInvalid,
			Min:    config.MinYear,
			Max:    currentYear,
		}
	}
	return nil
}

// ValidateCalendarDate checks the day and month ranges, then builds the date
// with time.Date and requires the normalized result to keep the same
// components. A rollover (Apr 31 -> May 1) is a *CalendarError.
func ValidateCalendarDate(day, month, year int) error {
	if err := ValidateDay(day, 0, 0); err != nil {
		return err
	}
	if err := ValidateMonth(month); err != nil {
		return err
	}

	y, m, d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Date()
	if y != year || int(m) != month || d != day {
		return &CalendarError{Year: year, Month: month, Day: day}
	}
	return nil
}

// ValidateNotFuture fails when date is later than reference.
func ValidateNotFuture(date, reference CalendarDate) error {
	if date.After(reference) {
		return &FutureDateError{Date: date, Reference: reference}
	}
	return nil
}

// ParseField converts a raw input value to an int.
// Only unsigned decimal digits are accepted. Empty, signed or non-numeric
// input is an error; nothing is coerced to zero or clamped.
func ParseField(field Field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil || !isDigits(s) {
		fe := &FieldError{Field: field, Reason: config.ErrNotANumber}
		switch field {
		case FieldDay:
			fe.Key, fe.Min, fe.Max = config.TKeyErrDayInvalid, config.MinDay, config.MaxDay
		case FieldMonth:
			fe.Key, fe.Min, fe.Max = config.TKeyErrMonthInvalid, config.MinMonth, config.MaxMonth
		case FieldYear:
			// Max is filled in by the caller, which knows the current year.
			fe.Key, fe.Min = config.TKeyErrYearInvalid, config.MinYear
		}
		return 0, fe
	}
	return v, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
