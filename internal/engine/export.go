package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/go-agecalc/internal/config"
)

// SummaryFunc renders an event title. age is only meaningful when yearKnown is true.
type SummaryFunc func(name string, age int, yearKnown bool) string

// ExportCalendar writes one all-day event per contact on its next birthday.
// Contacts whose age was rejected are left out. An empty result is still a
// valid VCALENDAR so clients do not flag it as broken.
func ExportCalendar(ages []ContactAge, now time.Time, summary SummaryFunc) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, entry := range ages {
		if entry.Err != nil {
			continue
		}
		event := buildEvent(entry, summary)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExporter,
		config.LogKeyCount, len(cal.Children),
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

func buildEvent(entry ContactAge, summary SummaryFunc) *ical.Event {
	ct := entry.Contact
	next := entry.NextBirthday

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, contactUID(ct), next.Year, config.ICalDomain))

	age := 0
	if ct.YearKnown && entry.Age != nil {
		age = entry.Age.AgeAtNextBirthday
	}

	title := fmt.Sprintf(config.FallbackSummary, ct.Name)
	if summary != nil {
		title = summary(ct.Name, age, ct.YearKnown)
	}
	event.Props.SetText(config.PropSummary, title)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(next.Time())
	event.Props.Set(dtStartProp)

	return event
}

// uidNamespace scopes contact UIDs to this application.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.ICalDomain))

// contactUID is deterministic so re-exports update events instead of duplicating them.
func contactUID(ct Contact) string {
	input := fmt.Sprintf(config.FormatHashInput, ct.Name, ct.BirthDate.String(), config.UIDSalt)
	return uuid.NewSHA1(uidNamespace, []byte(input)).String()
}
