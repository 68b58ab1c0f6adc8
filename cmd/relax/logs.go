package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/relaxapp/relax/internal/app"
)

func addLogs(root *cobra.Command, opts *app.Options) {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the relax log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tail, err := app.TailLog(opts.ConfigPath, lines)
			if err != nil {
				return err
			}
			warn := color.New(color.FgYellow)
			out := cmd.OutOrStdout()
			for _, line := range tail {
				if strings.Contains(line, "failed") {
					_, _ = warn.Fprintln(out, line)
					continue
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show")
	root.AddCommand(cmd)
}
