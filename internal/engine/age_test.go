package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) CalendarDate {
	return CalendarDate{Year: y, Month: m, Day: d}
}

func TestComputeAge(t *testing.T) {
	tests := []struct {
		name      string
		birth     CalendarDate
		reference CalendarDate

		years, months, days int
		totalDays           int
		next                CalendarDate
		daysToNext          int
		ageAtNext           int
	}{
		{
			name:  "Exact anniversary",
			birth: date(2000, time.January, 1), reference: date(2024, time.January, 1),
			years: 24, months: 0, days: 0,
			totalDays: 8766,
			next:      date(2024, time.January, 1), daysToNext: 0, ageAtNext: 24,
		},
		{
			name:  "Borrow across December",
			birth: date(2000, time.June, 15), reference: date(2024, time.January, 1),
			years: 23, months: 6, days: 17,
			totalDays: 8600,
			next:      date(2024, time.June, 15), daysToNext: 166, ageAtNext: 24,
		},
		{
			name:  "Born today",
			birth: date(2024, time.June, 15), reference: date(2024, time.June, 15),
			years: 0, months: 0, days: 0,
			totalDays: 0,
			next:      date(2024, time.June, 15), daysToNext: 0, ageAtNext: 0,
		},
		{
			name:  "Year boundary",
			birth: date(2023, time.December, 20), reference: date(2024, time.January, 5),
			years: 0, months: 0, days: 16,
			totalDays: 16,
			next:      date(2024, time.December, 20), daysToNext: 350, ageAtNext: 1,
		},
		{
			name:  "Prior month shorter than birth day",
			birth: date(2023, time.January, 31), reference: date(2023, time.March, 1),
			years: 0, months: 0, days: 29,
			totalDays: 29,
			next:      date(2024, time.January, 31), daysToNext: 336, ageAtNext: 1,
		},
		{
			name:  "Double borrow wrapping the year",
			birth: date(2000, time.December, 31), reference: date(2001, time.March, 1),
			years: 0, months: 1, days: 29,
			totalDays: 60,
			next:      date(2001, time.December, 31), daysToNext: 305, ageAtNext: 1,
		},
		{
			name:  "Leapling on Mar 1 of a common year",
			birth: date(2000, time.February, 29), reference: date(2023, time.March, 1),
			years: 23, months: 0, days: 0,
			totalDays: 8401,
			next:      date(2023, time.March, 1), daysToNext: 0, ageAtNext: 23,
		},
		{
			name:  "Leapling the day before a leap birthday",
			birth: date(2000, time.February, 29), reference: date(2024, time.February, 28),
			years: 23, months: 11, days: 30,
			totalDays: 8765,
			next:      date(2024, time.February, 29), daysToNext: 1, ageAtNext: 24,
		},
		{
			name:  "Plain case",
			birth: date(1990, time.May, 10), reference: date(2024, time.June, 15),
			years: 34, months: 1, days: 5,
			totalDays: 12455,
			next:      date(2025, time.May, 10), daysToNext: 329, ageAtNext: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAge(tt.birth, tt.reference)

			assert.Equal(t, tt.years, got.Years, "years")
			assert.Equal(t, tt.months, got.Months, "months")
			assert.Equal(t, tt.days, got.Days, "days")
			assert.Equal(t, tt.totalDays, got.TotalDays, "total days")
			assert.Equal(t, tt.next, got.NextBirthday, "next birthday")
			assert.Equal(t, tt.daysToNext, got.DaysToNextBirthday, "days to next birthday")
			assert.Equal(t, tt.ageAtNext, got.AgeAtNextBirthday, "age at next birthday")
			assert.Equal(t, tt.daysToNext == 0, got.IsBirthday())
		})
	}
}

func TestComputeAge_Idempotent(t *testing.T) {
	birth := date(1987, time.October, 3)
	reference := date(2024, time.March, 2)

	first := ComputeAge(birth, reference)
	second := ComputeAge(birth, reference)
	assert.Equal(t, first, second)
}

// TestComputeAge_Bounds sweeps birth and reference dates and checks the result ranges.
func TestComputeAge_Bounds(t *testing.T) {
	start := time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)
	refStart := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 9000; i += 7 {
		birth := DateOf(start.AddDate(0, 0, i))
		for j := 0; j < 800; j += 3 {
			reference := DateOf(refStart.AddDate(0, 0, j))
			if birth.After(reference) {
				continue
			}

			got := ComputeAge(birth, reference)
			require.GreaterOrEqual(t, got.Years, 0, "%s -> %s", birth, reference)
			require.True(t, got.Months >= 0 && got.Months <= 11, "months %d for %s -> %s", got.Months, birth, reference)
			require.True(t, got.Days >= 0 && got.Days <= 30, "days %d for %s -> %s", got.Days, birth, reference)
			require.GreaterOrEqual(t, got.TotalDays, 0)
			require.True(t, got.DaysToNextBirthday >= 0 && got.DaysToNextBirthday <= 366)
			require.False(t, got.NextBirthday.Before(reference))
		}
	}
}

// TestComputeAge_TotalDaysIndependent shows that the day count ignores the borrow rule:
// both references below are "0 years, 0 months, N days" yet differ in TotalDays by the month lengths.
func TestComputeAge_TotalDaysIndependent(t *testing.T) {
	feb := ComputeAge(date(2023, time.January, 31), date(2023, time.March, 1))
	leap := ComputeAge(date(2024, time.January, 31), date(2024, time.March, 1))

	assert.Equal(t, 29, feb.TotalDays)
	assert.Equal(t, 30, leap.TotalDays)
	assert.Equal(t, feb.TotalDays, feb.Days)
	assert.Equal(t, leap.TotalDays, leap.Days)
}

// TestNextOccurrence verifies the projection of the next anniversary.
func TestNextOccurrence(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := date(2025, time.June, 15)

	tests := []struct {
		name         string
		birth        CalendarDate
		expectedDate CalendarDate
		expectedAge  int
	}{
		{"Birthday in the past (this year)", date(1990, time.January, 1), date(2026, time.January, 1), 36},
		{"Birthday in the future (this year)", date(1990, time.December, 31), date(2025, time.December, 31), 35},
		{"Birthday is Today", date(1990, time.June, 15), date(2025, time.June, 15), 35},
		{"Leapling - Non-Leap Year (Feb 29 -> Mar 1)", date(2000, time.February, 29), date(2026, time.March, 1), 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, age := nextOccurrence(now, tt.birth)
			assert.Equal(t, tt.expectedDate, next)
			assert.Equal(t, tt.expectedAge, age, "Age calculation mismatch")
		})
	}
}

// TestNextOccurrence_LeapYearContext verifies behavior when the current year is a leap year.
func TestNextOccurrence_LeapYearContext(t *testing.T) {
	next, _ := nextOccurrence(date(2024, time.January, 1), date(2000, time.February, 29))
	assert.Equal(t, date(2024, time.February, 29), next, "In a leap year, the birthday should be Feb 29, not Mar 1")
}
