package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-agecalc/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultLanguage", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestValidationBounds checks the ranges the validator relies on.
func TestValidationBounds(t *testing.T) {
	assert.Equal(t, 1, config.MinDay)
	assert.Equal(t, 31, config.MaxDay)
	assert.Equal(t, 1, config.MinMonth)
	assert.Equal(t, 12, config.MaxMonth)
	assert.Equal(t, 1900, config.MinYear)
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
}

func TestDebounceDelay(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.DebounceDelay, 0*time.Second)
	assert.LessOrEqual(t, config.DebounceDelay, time.Second, "Live recalculation should feel immediate")
}

func TestStubVCalendar_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}
