package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinewatch/internal/logging"
	"cinewatch/internal/resolver"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Match the watchlist against the film catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cat, idx, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			scraper, err := ctx.watchlistScraper()
			if err != nil {
				return err
			}
			entries, err := scraper.Fetch(cmd.Context())
			if err != nil {
				return err
			}

			res := resolver.New(idx)
			for i := range entries {
				entry := &entries[i]
				id, err := res.Resolve(entry.PreferredTitle(), entry.Year)
				if err != nil {
					logger.Warn("film left unresolved",
						logging.String("slug", entry.Slug),
						logging.Error(err))
					continue
				}
				entry.FilmID = id
			}

			if asJSON {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			matched := 0
			for _, entry := range entries {
				catalogTitle := ""
				if catEntry, ok := cat.Get(entry.FilmID); ok {
					catalogTitle = catEntry.Title
					matched++
				}
				rows = append(rows, []string{entry.Slug, entry.PreferredTitle(), entry.FilmID, catalogTitle})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Slug", "Title", "Film id", "Catalog title"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "Matched %d of %d films\n", matched, len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}
