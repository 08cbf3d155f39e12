package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-agecalc/internal/config"
)

// Contact is a vCard entry that carries a birthday.
type Contact struct {
	Name string

	// BirthDate holds config.DefaultLeapYear as year when YearKnown is false.
	BirthDate CalendarDate

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool
}

// ContactAge pairs a contact with its computed age.
// Age is nil when the year is unknown or the birth date was rejected (Err set).
type ContactAge struct {
	Contact            Contact
	Age                *AgeResult
	NextBirthday       CalendarDate
	DaysToNextBirthday int
	Err                error
}

// ImportContacts decodes a vCard stream and returns every card with a usable BDAY.
// Malformed cards and unparseable dates are logged and skipped.
func ImportContacts(ctx context.Context, r io.Reader) ([]Contact, error) {
	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday int }{0, 0}
	var contacts []Contact

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Continue with the next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompImporter,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Name(); n != nil {
			if full := strings.TrimSpace(n.GivenName + " " + n.FamilyName); full != "" {
				name = full
			}
		}

		contacts = append(contacts, Contact{
			Name:      name,
			BirthDate: birth,
			YearKnown: yearKnown,
		})
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompImporter,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
		),
	)
	return contacts, nil
}

// Contacts computes the age of every contact as of today.
// Year-less contacts only get their next birthday.
func (c *Calculator) Contacts(contacts []Contact) []ContactAge {
	today := c.Today()
	out := make([]ContactAge, 0, len(contacts))

	for _, ct := range contacts {
		entry := ContactAge{Contact: ct}
		entry.NextBirthday, _ = nextOccurrence(today, ct.BirthDate)
		entry.DaysToNextBirthday = entry.NextBirthday.DaysSince(today)

		if ct.YearKnown {
			res, err := c.CalculateDate(ct.BirthDate)
			if err != nil {
				entry.Err = err
			} else {
				entry.Age = &res
			}
		}

		if entry.DaysToNextBirthday == 0 && entry.Err == nil {
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, ct.Name,
				config.LogKeyBirth, ct.BirthDate.String())
		}
		out = append(out, entry)
	}
	return out
}

// parseDate handles the vCard date formats, with and without a year.
func parseDate(value string) (CalendarDate, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), true, nil
		}
	}

	// Truncated dates (Year unknown) use a leap year so --02-29 survives.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return CalendarDate{Year: config.DefaultLeapYear, Month: t.Month(), Day: t.Day()}, false, nil
		}
	}

	return CalendarDate{}, false, errors.New(config.ErrDateParse)
}
