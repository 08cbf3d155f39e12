package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-agecalc/internal/config"
	"github.com/tartampluch/go-agecalc/internal/engine"
	"github.com/tartampluch/go-agecalc/internal/locale"
)

// AgeCalcApp owns the calculator window. The engine never sees widget state:
// every action reads the three raw fields and passes them down.
type AgeCalcApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Translator  *locale.Translator
	Calculator  *engine.Calculator
	Ctx         context.Context

	// debouncer is the single timer slot for the form's input stream.
	debouncer *engine.Debouncer

	form *calculatorForm

	// resetting silences change handlers while fields are cleared programmatically.
	resetting bool
}

// calculatorForm holds references to the widgets of the main window.
type calculatorForm struct {
	dayEntry    *NumericalEntry
	monthSelect *widget.Select
	yearEntry   *NumericalEntry
	langSelect  *widget.Select

	dayError   *widget.Label
	monthError *widget.Label
	yearError  *widget.Label

	generalError *widget.Label
	errorCard    *widget.Card

	yearsValue   *widget.Label
	monthsValue  *widget.Label
	daysValue    *widget.Label
	totalDays    *widget.Label
	nextBirthday *widget.Label
	results      *fyne.Container
}

// NewAgeCalcApp constructs the application and wires dependencies.
func NewAgeCalcApp(a fyne.App, ctx context.Context, calc *engine.Calculator) *AgeCalcApp {
	prefs := a.Preferences()
	app := &AgeCalcApp{
		App:         a,
		Preferences: prefs,
		Translator:  locale.NewTranslator(prefs.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)),
		Calculator:  calc,
		Ctx:         ctx,
	}
	app.debouncer = engine.NewDebouncer(config.DebounceDelay, func() {
		// Timer goroutine: hop back to the UI thread.
		fyne.Do(app.autoCalculate)
	})
	return app
}

// Run opens the calculator window and blocks in the UI loop.
func (app *AgeCalcApp) Run() {
	w := app.App.NewWindow(app.Translator.Msg(config.TKeyWinTitle))
	app.Window = w

	w.SetContent(app.BuildContent())
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetOnClosed(app.Shutdown)

	// The accepted year range moves on New Year's Day; refresh when the user comes back.
	app.App.Lifecycle().SetOnEnteredForeground(app.refreshYearHint)

	w.ShowAndRun()
}

// Shutdown cancels any pending debounced recalculation.
func (app *AgeCalcApp) Shutdown() {
	app.debouncer.Stop()
}

// BuildContent creates the calculator form and returns its root object.
func (app *AgeCalcApp) BuildContent() fyne.CanvasObject {
	tr := app.Translator
	f := &calculatorForm{}
	app.form = f

	// --- Inputs ---
	f.dayEntry = NewNumericalEntry(config.DayMaxDigits)
	f.dayEntry.PlaceHolder = config.PlaceholderDay
	f.dayEntry.OnChanged = func(string) { app.onInput(app.validateDayField) }
	f.dayEntry.OnSubmitted = func(string) { app.Calculate() }

	f.monthSelect = widget.NewSelect(tr.MonthNames(), func(string) { app.onInput(app.validateMonthField) })
	f.monthSelect.PlaceHolder = tr.Msg(config.TKeyHintMonth)

	f.yearEntry = NewNumericalEntry(config.YearMaxDigits)
	f.yearEntry.OnChanged = func(string) { app.onInput(app.validateYearField) }
	f.yearEntry.OnSubmitted = func(string) { app.Calculate() }
	app.refreshYearHint()

	f.dayError = newErrorLabel()
	f.monthError = newErrorLabel()
	f.yearError = newErrorLabel()

	form := widget.NewForm(
		widget.NewFormItem(tr.Msg(config.TKeyLblDay), container.NewVBox(f.dayEntry, f.dayError)),
		widget.NewFormItem(tr.Msg(config.TKeyLblMonth), container.NewVBox(f.monthSelect, f.monthError)),
		widget.NewFormItem(tr.Msg(config.TKeyLblYear), container.NewVBox(f.yearEntry, f.yearError)),
	)

	// --- Actions ---
	btnCalc := widget.NewButtonWithIcon(tr.Msg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	btnCalc.Importance = widget.HighImportance
	btnReset := widget.NewButtonWithIcon(tr.Msg(config.TKeyBtnReset), theme.ContentClearIcon(), app.Reset)

	// --- General error ---
	f.generalError = widget.NewLabel("")
	f.generalError.Wrapping = fyne.TextWrapWord
	f.generalError.Importance = widget.DangerImportance
	f.errorCard = widget.NewCard("", "", f.generalError)
	f.errorCard.Hide()

	// --- Results ---
	f.yearsValue = newValueLabel()
	f.monthsValue = newValueLabel()
	f.daysValue = newValueLabel()
	f.totalDays = widget.NewLabel("")
	f.totalDays.Alignment = fyne.TextAlignCenter
	f.nextBirthday = widget.NewLabel("")
	f.nextBirthday.Alignment = fyne.TextAlignCenter
	f.nextBirthday.Wrapping = fyne.TextWrapWord

	f.results = container.NewVBox(
		container.NewGridWithColumns(config.LayoutColumnsTriple,
			resultCell(f.yearsValue, tr.Msg(config.TKeyLblYears)),
			resultCell(f.monthsValue, tr.Msg(config.TKeyLblMonths)),
			resultCell(f.daysValue, tr.Msg(config.TKeyLblDays)),
		),
		f.totalDays,
		f.nextBirthday,
	)
	f.results.Hide()

	// --- Language ---
	f.langSelect = widget.NewSelect(tr.Languages, nil)
	f.langSelect.SetSelected(tr.Lang)
	f.langSelect.OnChanged = app.changeLanguage
	langRow := container.NewBorder(nil, nil, widget.NewLabel(tr.Msg(config.TKeyLblLanguage)), nil, f.langSelect)

	footer := widget.NewLabel(fmt.Sprintf(tr.Msg(config.TKeyLblFooter), config.Version))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewPadded(container.NewVBox(
		langRow,
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnReset, btnCalc),
		f.errorCard,
		f.results,
		footer,
	))
}

// Calculate validates the form and shows either the age or the errors.
func (app *AgeCalcApp) Calculate() {
	app.hideResults()
	app.hideGeneralError()

	if !app.validateForm() {
		return
	}

	day, month, year := app.fields()
	res, err := app.Calculator.Calculate(day, month, year)
	if err != nil {
		var fieldErrs engine.FieldErrors
		if errors.As(err, &fieldErrs) {
			app.showFieldErrors(fieldErrs)
			return
		}
		app.showGeneralError(app.Translator.Error(err))
		return
	}

	app.displayResults(res)
}

// Reset clears every field, error and result.
func (app *AgeCalcApp) Reset() {
	f := app.form
	app.debouncer.Stop()

	app.resetting = true
	f.dayEntry.SetText("")
	f.monthSelect.ClearSelected()
	f.yearEntry.SetText("")
	app.resetting = false

	app.hideResults()
	app.hideGeneralError()
	for _, l := range []*widget.Label{f.dayError, f.monthError, f.yearError} {
		l.SetText("")
	}

	if app.Window != nil {
		app.Window.Canvas().Focus(f.dayEntry)
	}
	slog.Debug(config.MsgReset, config.LogKeyComponent, config.CompUI)
}

// autoCalculate runs after the debounce window when every field is filled and valid.
func (app *AgeCalcApp) autoCalculate() {
	day, month, year := app.fields()
	if day == "" || month == "" || year == "" {
		return
	}
	if !app.validateForm() {
		return
	}
	slog.Debug(config.MsgAutoCalc, config.LogKeyComponent, config.CompUI)
	app.Calculate()
}

// onInput validates the edited field and schedules a recalculation.
func (app *AgeCalcApp) onInput(validate func() bool) {
	if app.resetting || app.form == nil {
		return
	}
	validate()
	app.debouncer.Trigger()
}

// fields returns the raw form values. The month is the 1-based index of the selection.
func (app *AgeCalcApp) fields() (day, month, year string) {
	f := app.form
	if idx := f.monthSelect.SelectedIndex(); idx >= 0 {
		month = strconv.Itoa(idx + 1)
	}
	return strings.TrimSpace(f.dayEntry.Text), month, strings.TrimSpace(f.yearEntry.Text)
}

func (app *AgeCalcApp) validateForm() bool {
	// Evaluate all three so every field shows its own error.
	dayOK := app.validateDayField()
	monthOK := app.validateMonthField()
	yearOK := app.validateYearField()
	return dayOK && monthOK && yearOK
}

func (app *AgeCalcApp) validateDayField() bool {
	day, month, year := app.fields()
	return app.showFieldError(app.form.dayError, app.Calculator.CheckDay(day, month, year))
}

// validateMonthField also re-checks the day, whose limit depends on the month.
func (app *AgeCalcApp) validateMonthField() bool {
	_, month, _ := app.fields()
	if !app.showFieldError(app.form.monthError, app.Calculator.CheckMonth(month)) {
		return false
	}
	app.revalidateDay()
	return true
}

// validateYearField also re-checks the day for Feb 29.
func (app *AgeCalcApp) validateYearField() bool {
	_, _, year := app.fields()
	if !app.showFieldError(app.form.yearError, app.Calculator.CheckYear(year)) {
		return false
	}
	app.revalidateDay()
	return true
}

func (app *AgeCalcApp) revalidateDay() {
	if day, _, _ := app.fields(); day != "" {
		app.validateDayField()
	}
}

// showFieldError renders err under a field and reports whether the field is valid.
func (app *AgeCalcApp) showFieldError(label *widget.Label, err error) bool {
	if err == nil {
		label.SetText("")
		return true
	}
	label.SetText(app.Translator.Error(err))
	return false
}

func (app *AgeCalcApp) showFieldErrors(errs engine.FieldErrors) {
	msgs := app.Translator.FieldErrors(errs)
	labels := map[engine.Field]*widget.Label{
		engine.FieldDay:   app.form.dayError,
		engine.FieldMonth: app.form.monthError,
		engine.FieldYear:  app.form.yearError,
	}
	for field, msg := range msgs {
		labels[field].SetText(msg)
	}
}

func (app *AgeCalcApp) showGeneralError(msg string) {
	slog.Debug(config.MsgCalcRejected,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, msg)
	app.form.generalError.SetText(msg)
	app.form.errorCard.Show()
}

func (app *AgeCalcApp) hideGeneralError() {
	app.form.errorCard.Hide()
}

func (app *AgeCalcApp) displayResults(res engine.AgeResult) {
	f := app.form
	f.yearsValue.SetText(strconv.Itoa(res.Years))
	f.monthsValue.SetText(strconv.Itoa(res.Months))
	f.daysValue.SetText(strconv.Itoa(res.Days))
	f.totalDays.SetText(app.Translator.TotalDays(res))
	f.nextBirthday.SetText(app.Translator.NextBirthday(res))
	f.results.Show()
}

func (app *AgeCalcApp) hideResults() {
	app.form.results.Hide()
}

// refreshYearHint shows the accepted year range in the year placeholder.
func (app *AgeCalcApp) refreshYearHint() {
	if app.form == nil {
		return
	}
	app.form.yearEntry.SetPlaceHolder(fmt.Sprintf("%s (%d-%d)",
		config.PlaceholderYear, config.MinYear, app.Calculator.Today().Year))
}

// changeLanguage persists the choice and rebuilds the window, keeping the typed values.
func (app *AgeCalcApp) changeLanguage(lang string) {
	if lang == "" || lang == app.Translator.Lang {
		return
	}
	slog.Info(config.MsgLangChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang)

	app.Preferences.SetString(config.PrefLanguage, lang)
	app.Translator.SetLanguage(lang)

	old := app.form
	day, year := old.dayEntry.Text, old.yearEntry.Text
	monthIdx := old.monthSelect.SelectedIndex()

	content := app.BuildContent()

	app.resetting = true
	app.form.dayEntry.SetText(day)
	if monthIdx >= 0 {
		app.form.monthSelect.SetSelectedIndex(monthIdx)
	}
	app.form.yearEntry.SetText(year)
	app.resetting = false

	if app.Window != nil {
		app.Window.SetTitle(app.Translator.Msg(config.TKeyWinTitle))
		app.Window.SetContent(content)
	}
}

func newErrorLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Importance = widget.DangerImportance
	l.Wrapping = fyne.TextWrapWord
	return l
}

func newValueLabel() *widget.Label {
	l := widget.NewLabel("-")
	l.Alignment = fyne.TextAlignCenter
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

func resultCell(value *widget.Label, caption string) fyne.CanvasObject {
	c := widget.NewLabel(caption)
	c.Alignment = fyne.TextAlignCenter
	return container.NewVBox(value, c)
}
