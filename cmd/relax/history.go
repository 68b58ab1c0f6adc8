package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/relaxapp/relax/internal/app"
	"github.com/relaxapp/relax/internal/auth"
)

func addHistory(root *cobra.Command, opts *app.Options) {
	root.AddCommand(&cobra.Command{
		Use:     "history",
		Aliases: []string{"progress"},
		Short:   "Print your practice history",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := app.LoadHistory(cmd.Context(), opts.ConfigPath)
			if errors.Is(err, auth.ErrSignedOut) {
				return errors.New("not signed in; run `relax login` first")
			}
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), history, time.Now())
			return nil
		},
	})
}

func printHistory(w io.Writer, history app.History, now time.Time) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	name := history.User.Email
	if history.Profile != nil && history.Profile.Name != "" {
		name = history.Profile.Name
	}
	_, _ = fmt.Fprintln(w, bold.Sprint(name))
	if history.Profile != nil {
		if created := history.Profile.ParsedCreatedAt(); !created.IsZero() {
			_, _ = fmt.Fprintln(w, faint.Sprintf("member since %s", humanize.RelTime(created, now, "ago", "from now")))
		}
	}
	_, _ = fmt.Fprintln(w)

	dates := history.Progress.Dates()
	if len(dates) == 0 {
		_, _ = fmt.Fprintln(w, "No sessions yet.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Hours"), bold.Sprint("Activity"))
	for i := len(dates) - 1; i >= 0; i-- {
		entry := history.Progress[dates[i]]
		tbl.AddRow(dates[i], humanize.FtoaWithDigits(entry.Hours, 2), entry.Activity)
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, faint.Sprintf("%s hours across %d days", humanize.FtoaWithDigits(history.Progress.TotalHours(), 2), len(dates)))
}
