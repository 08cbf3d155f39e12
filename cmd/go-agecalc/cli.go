package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/tartampluch/go-agecalc/internal/config"
	"github.com/tartampluch/go-agecalc/internal/engine"
	"github.com/tartampluch/go-agecalc/internal/locale"
)

// cliOptions carries the flags of the headless mode.
type cliOptions struct {
	Lang  string
	Day   string
	Month string
	Year  string
	VCard string
	ICS   bool
}

// Headless reports whether any flag asks for terminal output instead of the GUI.
func (o cliOptions) Headless() bool {
	return o.Day != "" || o.Month != "" || o.Year != "" || o.VCard != ""
}

// runCLI computes one age from the date flags, or every age of a vCard file.
// Results go to stdout, user-facing errors to stderr.
func runCLI(ctx context.Context, opts cliOptions, calc *engine.Calculator, stdout, stderr io.Writer) error {
	tr := locale.NewTranslator(opts.Lang)

	if opts.VCard != "" {
		return runContacts(ctx, opts, calc, tr, stdout)
	}

	if opts.Day == "" || opts.Month == "" || opts.Year == "" {
		return errors.New(config.ErrIncompleteFields)
	}

	res, err := calc.Calculate(opts.Day, opts.Month, opts.Year)
	if err != nil {
		fmt.Fprintln(stderr, tr.Error(err))
		return err
	}

	fmt.Fprintln(stdout, tr.Age(res))
	fmt.Fprintln(stdout, tr.TotalDays(res))
	fmt.Fprintln(stdout, tr.NextBirthday(res))
	return nil
}

func runContacts(ctx context.Context, opts cliOptions, calc *engine.Calculator, tr *locale.Translator, stdout io.Writer) error {
	f, err := os.Open(opts.VCard)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrOpenVCard, err)
	}
	defer f.Close()

	contacts, err := engine.ImportContacts(ctx, f)
	if err != nil {
		return err
	}
	ages := calc.Contacts(contacts)

	if opts.ICS {
		data, err := engine.ExportCalendar(ages, calc.Clock.Now(), tr.Summary)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	slog.Debug(config.MsgImportDone,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCount, len(ages))
	return writeContactTable(stdout, tr, ages)
}

// writeContactTable prints one aligned row per contact.
func writeContactTable(w io.Writer, tr *locale.Translator, ages []engine.ContactAge) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		tr.Msg(config.TKeyColName),
		tr.Msg(config.TKeyColBirth),
		tr.Msg(config.TKeyColAge),
		tr.Msg(config.TKeyColNext))

	for _, entry := range ages {
		ct := entry.Contact
		birth := ct.BirthDate.String()
		if !ct.YearKnown {
			birth = ct.BirthDate.Time().Format(config.DateFormatNoYearD)
		}

		age := tr.Msg(config.TKeyAgeUnknown)
		if entry.Age != nil {
			age = tr.Age(*entry.Age)
		}

		next := tr.Msg(config.TKeyAgeUnknown)
		if entry.Err == nil {
			next = fmt.Sprintf("%s (%s)", entry.NextBirthday, tr.FormatCount(entry.DaysToNextBirthday))
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ct.Name, birth, age, next)
	}
	return tw.Flush()
}
