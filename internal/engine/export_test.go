package engine_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-agecalc/internal/config"
	"github.com/tartampluch/go-agecalc/internal/engine"
)

func TestExportCalendar(t *testing.T) {
	contacts, err := engine.ImportContacts(context.Background(), strings.NewReader(sampleVCards))
	require.NoError(t, err)

	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	calc := newCalculator(2025, time.March, 1)
	ages := calc.Contacts(contacts)

	summary := func(name string, age int, yearKnown bool) string {
		if yearKnown {
			return fmt.Sprintf("%s turns %d", name, age)
		}
		return name
	}

	data, err := engine.ExportCalendar(ages, now, summary)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3, "the rejected future contact is left out")

	summaries := make([]string, 0, len(events))
	for _, e := range events {
		s, err := e.Props.Text(config.PropSummary)
		require.NoError(t, err)
		summaries = append(summaries, s)
	}
	assert.Contains(t, summaries, "John Doe turns 26")
	assert.Contains(t, summaries, "Leap Baby turns 25")
	assert.Contains(t, summaries, "Anna Smith")

	icsStr := string(data)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260101")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250301")
}

func TestExportCalendar_StableUIDs(t *testing.T) {
	ages := []engine.ContactAge{{
		Contact:      engine.Contact{Name: "Alice", BirthDate: engine.CalendarDate{Year: 1990, Month: time.May, Day: 10}, YearKnown: true},
		NextBirthday: engine.CalendarDate{Year: 2025, Month: time.May, Day: 10},
	}}

	first, err := engine.ExportCalendar(ages, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	second, err := engine.ExportCalendar(ages, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	uid := func(data []byte) string {
		cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 1)
		v, err := events[0].Props.Text(config.PropUID)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, uid(first), uid(second))

	id, ok := strings.CutSuffix(uid(first), fmt.Sprintf("-%d@%s", 2025, config.ICalDomain))
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, string(first), "SUMMARY:Birthday: Alice")
}

func TestExportCalendar_Empty(t *testing.T) {
	data, err := engine.ExportCalendar(nil, time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}
