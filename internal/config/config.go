package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Age Calculator"
	AppID       = "com.github.tartampluch.go-agecalc"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagLang    = "lang"
	FlagDay     = "day"
	FlagMonth   = "month"
	FlagYear    = "year"
	FlagVCard   = "vcard"
	FlagICS     = "ics"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging"
	FlagDescLang    = "Language used for output (en, fr)"
	FlagDescDay     = "Birth day (1-31); runs without the GUI"
	FlagDescMonth   = "Birth month (1-12); runs without the GUI"
	FlagDescYear    = "Birth year; runs without the GUI"
	FlagDescVCard   = "Compute ages for every contact of a vCard file"
	FlagDescICS     = "With -vcard, print an iCalendar of next birthdays instead of a table"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Validation Bounds & Business Logic
// -----------------------------------------------------------------------------

const (
	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12
	MinYear  = 1900

	// DebounceDelay is the quiescence window before a live recalculation.
	DebounceDelay = 500 * time.Millisecond

	DefaultLanguage = "en"
	DefaultLeapYear = 2000 // Leap year fallback for dates like --02-29
	UIDSalt         = "go-agecalc-v1-"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 420
	WindowHeight = 520

	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"

	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3

	PlaceholderDay  = "DD"
	PlaceholderYear = "YYYY"

	DayMaxDigits  = 2
	YearMaxDigits = 4
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyLblDay        = "lbl_day"
	TKeyLblMonth      = "lbl_month"
	TKeyLblYear       = "lbl_year"
	TKeyLblLanguage   = "lbl_language"
	TKeyHintMonth     = "hint_month"
	TKeyBtnCalculate  = "btn_calculate"
	TKeyBtnReset      = "btn_reset"
	TKeyLblYears      = "lbl_years"
	TKeyLblMonths     = "lbl_months"
	TKeyLblDays       = "lbl_days"
	TKeyTotalDays     = "total_days"    // Requires Count
	TKeyNextBirthday  = "next_birthday" // Requires Count
	TKeyHappyBirthday = "happy_birthday"
	TKeyLblFooter     = "lbl_footer"

	// TKeyMonthFormat expects the month number (1-12).
	TKeyMonthFormat = "month_%d"

	// Contact output (CLI)
	TKeyColName         = "col_name"
	TKeyColBirth        = "col_birth"
	TKeyColAge          = "col_age"
	TKeyColNext         = "col_next"
	TKeyAgeUnknown      = "age_unknown"
	TKeyAgeFormat       = "age_format" // Requires Years, Months, Days
	TKeyEvtSummary      = "event_summary"
	TKeyEvtSummaryAge   = "event_summary_age"
	TKeyEvtSummaryBirth = "event_summary_birth"

	// Validation Errors
	TKeyErrDayInvalid   = "err_day_invalid"    // Requires Min, Max
	TKeyErrDayInMonth   = "err_day_in_month"   // Requires Month, Year, Max
	TKeyErrMonthInvalid = "err_month_invalid"  // Requires Min, Max
	TKeyErrYearInvalid  = "err_year_invalid"   // Requires Min, Max
	TKeyErrCalendarDate = "err_calendar_date"
	TKeyErrFutureDate   = "err_future_date"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age Calculator//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goagecalc"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// DateFormatDisplay is the layout used by CalendarDate.String.
	DateFormatDisplay = "2006-01-02"

	// UID Generation
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// SecondsPerDay converts Unix second deltas between midnights to days.
	SecondsPerDay = 24 * 60 * 60
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDayInvalid       = "day must be a whole number between 1 and 31"
	ErrDayInMonth       = "day exceeds the number of days in the month"
	ErrMonthInvalid     = "month must be a whole number between 1 and 12"
	ErrYearInvalid      = "year must be a whole number within the accepted range"
	ErrNotANumber       = "value is not a whole number"
	ErrCalendarDate     = "date does not exist in the calendar"
	ErrFutureDate       = "birth date is in the future"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrOpenVCard        = "failed to open vCard file"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrIncompleteFields = "day, month and year are all required"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackName         = "Unknown"
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"

	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgCalcDone      = "Age calculated"
	MsgCalcRejected  = "Input rejected"
	MsgAutoCalc      = "Debounced recalculation"
	MsgReset         = "Form reset"
	MsgLangChanged   = "Language changed"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgImportDone    = "Contacts imported"
	MsgExportDone    = "Calendar export successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBdayToday     = "Birthday found today"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyBirth     = "birth_date"
	LogKeyRef       = "reference_date"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyTotalDays = "total_days"
	LogKeyNextDays  = "days_to_next_birthday"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompEngine   = "engine"
	CompImporter = "importer"
	CompExporter = "exporter"
	CompMain     = "main"
	CompCLI      = "cli"
	CompI18n     = "i18n"
)
