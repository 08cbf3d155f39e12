package locale_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-agecalc/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale file, and reports keys nobody references.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyLblDay,
		config.TKeyLblMonth,
		config.TKeyLblYear,
		config.TKeyLblLanguage,
		config.TKeyHintMonth,
		config.TKeyBtnCalculate,
		config.TKeyBtnReset,
		config.TKeyLblYears,
		config.TKeyLblMonths,
		config.TKeyLblDays,
		config.TKeyTotalDays,
		config.TKeyNextBirthday,
		config.TKeyHappyBirthday,
		config.TKeyLblFooter,
		config.TKeyColName,
		config.TKeyColBirth,
		config.TKeyColAge,
		config.TKeyColNext,
		config.TKeyAgeUnknown,
		config.TKeyAgeFormat,
		config.TKeyEvtSummary,
		config.TKeyEvtSummaryAge,
		config.TKeyEvtSummaryBirth,
		config.TKeyErrDayInvalid,
		config.TKeyErrDayInMonth,
		config.TKeyErrMonthInvalid,
		config.TKeyErrYearInvalid,
		config.TKeyErrCalendarDate,
		config.TKeyErrFutureDate,
	}
	for m := 1; m <= 12; m++ {
		keysToCheck = append(keysToCheck, fmt.Sprintf(config.TKeyMonthFormat, m))
	}

	definedKeys := make(map[string]bool, len(keysToCheck))
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err, "Must load active.%s.json", lang)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}
