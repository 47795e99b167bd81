package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"cinewatch/internal/logging"
	"cinewatch/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch the watchlist and email the screening digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "cinewatch.lock"))
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !ok {
				return errors.New("another cinewatch run is already in progress")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("failed to release run lock", logging.Error(err))
				}
			}()

			cat, idx, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			scraper, err := ctx.watchlistScraper()
			if err != nil {
				return err
			}
			aggregator, err := ctx.aggregator()
			if err != nil {
				return err
			}
			sender, err := ctx.sender()
			if err != nil {
				return err
			}

			p := pipeline.New(pipeline.Options{
				Config:    cfg,
				Catalog:   cat,
				Index:     idx,
				Watchlist: scraper,
				Showtimes: aggregator,
				Sender:    sender,
				Logger:    logger,
			})
			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if isTerminal(out) {
				rows := [][]string{
					{"Watchlist films", strconv.Itoa(result.Films)},
					{"Resolved", strconv.Itoa(result.Resolved)},
					{"With showtimes", strconv.Itoa(result.WithShowtimes)},
					{"Missing", strconv.Itoa(result.Missing)},
					{"Digest sent", yesNo(result.Sent)},
				}
				fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			} else {
				fmt.Fprintf(out, "films=%d resolved=%d with_showtimes=%d missing=%d sent=%t\n",
					result.Films, result.Resolved, result.WithShowtimes, result.Missing, result.Sent)
			}
			fmt.Fprintf(out, "Watchlist snapshot: %s\n", result.WatchlistPath)
			fmt.Fprintf(out, "Programme snapshot: %s\n", result.ProgrammePath)
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
