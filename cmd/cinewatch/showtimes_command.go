package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cinewatch/internal/showtimes"
)

func newShowtimesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "showtimes <film-id>",
		Short: "Print upcoming screenings for one catalog film id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			aggregator, err := ctx.aggregator()
			if err != nil {
				return err
			}

			window := showtimes.WindowFrom(time.Now(), cfg.Subscriber.WindowDays)
			records, err := aggregator.Collect(cmd.Context(), args[0], window)
			if err != nil {
				return err
			}
			days := showtimes.BuildDays(records, cfg.Subscriber.Locale)

			if asJSON {
				return writeJSON(cmd, days)
			}

			out := cmd.OutOrStdout()
			if len(days) == 0 {
				fmt.Fprintln(out, "No screenings in the configured window")
				return nil
			}
			for _, day := range days {
				rows := make([][]string, 0, len(day.Rows))
				for _, row := range day.Rows {
					rows = append(rows, []string{row.ShowtimeHour, row.TheaterName, strings.Join(row.Tickets, ", ")})
				}
				fmt.Fprintln(out, day.Label)
				fmt.Fprintln(out, renderTable(
					[]string{"Hour", "Theater", "Cards"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print day buckets as JSON")
	return cmd
}
