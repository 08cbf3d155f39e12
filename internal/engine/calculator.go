package engine

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-agecalc/internal/config"
)

// Calculator drives the validator and ComputeAge from raw field values.
// The reference date is read from Clock on every call.
type Calculator struct {
	Clock Clock
}

// NewCalculator returns a Calculator reading the given clock.
func NewCalculator(clock Clock) *Calculator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Calculator{Clock: clock}
}

// Today returns the reference date.
func (c *Calculator) Today() CalendarDate {
	return DateOf(c.Clock.Now())
}

// CheckDay validates the raw day field. Month and year only narrow the check
// when they are themselves well-formed.
func (c *Calculator) CheckDay(day, month, year string) error {
	d, err := ParseField(FieldDay, day)
	if err != nil {
		return err
	}
	m, _ := parseOptional(month)
	y, _ := parseOptional(year)
	if ValidateMonth(m) != nil {
		m = 0
	}
	return ValidateDay(d, m, y)
}

// CheckMonth validates the raw month field.
func (c *Calculator) CheckMonth(month string) error {
	m, err := ParseField(FieldMonth, month)
	if err != nil {
		return err
	}
	return ValidateMonth(m)
}

// CheckYear validates the raw year field against the current year.
func (c *Calculator) CheckYear(year string) error {
	currentYear := c.Today().Year
	y, err := ParseField(FieldYear, year)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			fe.Max = currentYear
		}
		return err
	}
	return ValidateYear(y, currentYear)
}

// CheckFields validates each field independently and returns every failure.
func (c *Calculator) CheckFields(day, month, year string) FieldErrors {
	var errs FieldErrors
	for _, err := range []error{
		c.CheckDay(day, month, year),
		c.CheckMonth(month),
		c.CheckYear(year),
	} {
		var fe *FieldError
		if errors.As(err, &fe) {
			errs = append(errs, fe)
		}
	}
	return errs
}

// Validate turns the three raw fields into a birth date.
// Field errors come first (all of them, as FieldErrors), then the calendar
// round-trip (*CalendarError), then the future check (*FutureDateError).
func (c *Calculator) Validate(day, month, year string) (CalendarDate, error) {
	if errs := c.CheckFields(day, month, year); len(errs) > 0 {
		return CalendarDate{}, errs
	}

	// The fields parsed above, so these conversions cannot fail.
	d, _ := parseOptional(day)
	m, _ := parseOptional(month)
	y, _ := parseOptional(year)

	birth, err := NewCalendarDate(y, m, d)
	if err != nil {
		return CalendarDate{}, err
	}
	if err := ValidateNotFuture(birth, c.Today()); err != nil {
		return CalendarDate{}, err
	}
	return birth, nil
}

// Calculate validates the raw fields and computes the age as of today.
func (c *Calculator) Calculate(day, month, year string) (AgeResult, error) {
	birth, err := c.Validate(day, month, year)
	if err != nil {
		slog.Debug(config.MsgCalcRejected,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyError, err)
		return AgeResult{}, err
	}
	return c.compute(birth, c.Today()), nil
}

// CalculateDate applies the same checks as Calculate to an already built date.
func (c *Calculator) CalculateDate(birth CalendarDate) (AgeResult, error) {
	today := c.Today()
	if err := ValidateCalendarDate(birth.Day, int(birth.Month), birth.Year); err != nil {
		return AgeResult{}, err
	}
	if err := ValidateYear(birth.Year, today.Year); err != nil {
		return AgeResult{}, err
	}
	if err := ValidateNotFuture(birth, today); err != nil {
		return AgeResult{}, err
	}
	return c.compute(birth, today), nil
}

func (c *Calculator) compute(birth, today CalendarDate) AgeResult {
	res := ComputeAge(birth, today)
	slog.Debug(config.MsgCalcDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyBirth, birth.String(),
		config.LogKeyRef, today.String(),
		config.LogKeyYears, res.Years,
		config.LogKeyMonths, res.Months,
		config.LogKeyDays, res.Days,
		config.LogKeyTotalDays, res.TotalDays,
		config.LogKeyNextDays, res.DaysToNextBirthday,
	)
	return res
}

// parseOptional parses a field that may legitimately be blank; blank yields 0.
func parseOptional(raw string) (int, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, false
	}
	v, err := ParseField("", raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
