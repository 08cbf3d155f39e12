package engine

import "time"

// AgeResult is the elapsed time between a birth date and a reference date.
//
// Years, Months and Days follow the calendar borrow rule. TotalDays is the raw
// day count between the same two dates and is computed separately; the two are
// not reconciled and may disagree around leap days.
type AgeResult struct {
	Years  int
	Months int
	Days   int

	TotalDays int

	// NextBirthday is the next anniversary on or after the reference date.
	// A Feb 29 birthday falls on Mar 1 in common years.
	NextBirthday       CalendarDate
	DaysToNextBirthday int

	// AgeAtNextBirthday is the age turned on NextBirthday.
	AgeAtNextBirthday int
}

// IsBirthday reports whether the reference date is the birthday itself.
func (r AgeResult) IsBirthday() bool {
	return r.DaysToNextBirthday == 0
}

// ComputeAge returns the age at reference of someone born on birth.
// Callers must ensure birth is a real date not after reference.
func ComputeAge(birth, reference CalendarDate) AgeResult {
	years := reference.Year - birth.Year
	months := int(reference.Month) - int(birth.Month)
	days := reference.Day - birth.Day

	// Borrow from the month preceding the reference month. When that month is
	// shorter than the birth day keep borrowing backwards. Only a 30th or 31st
	// birth day against Mar 1-2 (Jan 31 -> Mar 1) borrows twice, through February.
	borrowYear, borrowMonth := reference.Year, reference.Month
	for days < 0 {
		borrowYear, borrowMonth = previousMonth(borrowYear, borrowMonth)
		months--
		days += DaysInMonth(int(borrowMonth), borrowYear)
	}

	for months < 0 {
		years--
		months += 12
	}

	next, ageNext := nextOccurrence(reference, birth)

	return AgeResult{
		Years:              years,
		Months:             months,
		Days:               days,
		TotalDays:          reference.DaysSince(birth),
		NextBirthday:       next,
		DaysToNextBirthday: next.DaysSince(reference),
		AgeAtNextBirthday:  ageNext,
	}
}

// nextOccurrence determines the next birthday relative to today.
// Today's birthday counts as the next one.
func nextOccurrence(today, birth CalendarDate) (CalendarDate, int) {
	candidate := normalizedDate(today.Year, birth.Month, birth.Day)
	if candidate.Before(today) {
		candidate = normalizedDate(today.Year+1, birth.Month, birth.Day)
	}
	return candidate, candidate.Year - birth.Year
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
