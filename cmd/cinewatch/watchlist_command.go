package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWatchlistCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Fetch and print the subscriber's watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scraper, err := ctx.watchlistScraper()
			if err != nil {
				return err
			}
			entries, err := scraper.Fetch(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Slug, entry.Title, entry.OriginalTitle, entry.Year})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Slug", "Title", "Original title", "Year"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}
