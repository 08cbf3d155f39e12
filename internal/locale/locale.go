package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-agecalc/internal/config"
	"github.com/tartampluch/go-agecalc/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders user-facing text in one language.
// It is not safe for concurrent SetLanguage calls; the UI only switches on its own goroutine.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	printer   *message.Printer

	Lang      string
	Languages []string
}

// NewTranslator loads the embedded locales and selects lang.
func NewTranslator(lang string) *Translator {
	t := &Translator{}
	t.bundle, t.Languages = loadBundle()
	t.SetLanguage(lang)
	return t
}

// loadBundle registers every embedded active.<lang>.json file.
func loadBundle() (*i18n.Bundle, []string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return bundle, nil
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return bundle, detectedLangs
}

// SetLanguage switches the active language. Unknown tags fall back to English.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	t.Lang = lang
	t.localizer = i18n.NewLocalizer(t.bundle, lang, config.DefaultLanguage)
	t.printer = message.NewPrinter(tag)
}

// Msg translates a key safely; a missing key returns the key itself.
func (t *Translator) Msg(key string) string {
	return t.MsgData(key, nil, nil)
}

// MsgData translates a key with template data and an optional plural count.
func (t *Translator) MsgData(key string, data map[string]any, pluralCount any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  pluralCount,
	})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// MonthName returns the localized name of m.
func (t *Translator) MonthName(m time.Month) string {
	key := fmt.Sprintf(config.TKeyMonthFormat, int(m))
	if name := t.Msg(key); name != key {
		return name
	}
	return m.String()
}

// MonthNames lists the twelve month names in calendar order.
func (t *Translator) MonthNames() []string {
	names := make([]string, 0, config.MaxMonth)
	for m := time.January; m <= time.December; m++ {
		names = append(names, t.MonthName(m))
	}
	return names
}

// FormatCount formats n with the language's digit grouping (8,766 / 8 766).
func (t *Translator) FormatCount(n int) string {
	return t.printer.Sprintf("%d", n)
}

// TotalDays renders the "days lived" sentence.
func (t *Translator) TotalDays(r engine.AgeResult) string {
	return t.MsgData(config.TKeyTotalDays, map[string]any{"Count": t.FormatCount(r.TotalDays)}, r.TotalDays)
}

// NextBirthday renders the countdown sentence, or the greeting on the day itself.
func (t *Translator) NextBirthday(r engine.AgeResult) string {
	if r.IsBirthday() {
		return t.Msg(config.TKeyHappyBirthday)
	}
	return t.MsgData(config.TKeyNextBirthday, map[string]any{"Count": t.FormatCount(r.DaysToNextBirthday)}, r.DaysToNextBirthday)
}

// Age renders "N years, N months, N days" in compact form.
func (t *Translator) Age(r engine.AgeResult) string {
	return t.MsgData(config.TKeyAgeFormat, map[string]any{
		"Years":  r.Years,
		"Months": r.Months,
		"Days":   r.Days,
	}, nil)
}

// Summary renders a calendar event title for the exporter.
func (t *Translator) Summary(name string, age int, yearKnown bool) string {
	data := map[string]any{"Name": name, "Age": age}
	key := config.TKeyEvtSummary
	if yearKnown {
		key = config.TKeyEvtSummaryAge
		if age == 0 {
			key = config.TKeyEvtSummaryBirth
		}
	}

	msg := t.MsgData(key, data, nil)
	if msg != key {
		return msg
	}
	switch key {
	case config.TKeyEvtSummaryAge:
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	case config.TKeyEvtSummaryBirth:
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	default:
		return fmt.Sprintf(config.FallbackSummary, name)
	}
}

// Error renders a validation error for display. Non-validation errors are
// returned as their plain message.
func (t *Translator) Error(err error) string {
	var fe *engine.FieldError
	var ce *engine.CalendarError
	var fd *engine.FutureDateError
	var fes engine.FieldErrors

	switch {
	case errors.As(err, &fes):
		parts := make([]string, 0, len(fes))
		for _, e := range fes {
			parts = append(parts, t.fieldError(e))
		}
		return strings.Join(parts, "\n")
	case errors.As(err, &fe):
		return t.fieldError(fe)
	case errors.As(err, &ce):
		return t.Msg(config.TKeyErrCalendarDate)
	case errors.As(err, &fd):
		return t.Msg(config.TKeyErrFutureDate)
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

// FieldErrors renders each error of errs keyed by field.
func (t *Translator) FieldErrors(errs engine.FieldErrors) map[engine.Field]string {
	out := make(map[engine.Field]string, len(errs))
	for _, fe := range errs {
		out[fe.Field] = t.fieldError(fe)
	}
	return out
}

func (t *Translator) fieldError(fe *engine.FieldError) string {
	if fe.Key == "" {
		return fe.Error()
	}
	data := map[string]any{
		"Min":  fe.Min,
		"Max":  fe.Max,
		"Year": fe.Year,
	}
	if fe.Month > 0 {
		data["Month"] = t.MonthName(time.Month(fe.Month))
	}
	msg := t.MsgData(fe.Key, data, nil)
	if msg == fe.Key {
		return fe.Error()
	}
	return msg
}
