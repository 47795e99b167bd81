package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinewatch/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Film catalog utilities",
	}

	catalogCmd.AddCommand(newCatalogBuildCommand(ctx))
	return catalogCmd
}

func newCatalogBuildCommand(ctx *commandContext) *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scrape the film listing and rebuild the catalog document",
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
			client, err := ctx.httpClient()
			if err != nil {
				return err
			}

			if pages <= 0 {
				pages = cfg.Allocine.CatalogPages
			}
			scraper, err := catalog.NewListingScraper(cfg.Allocine.BaseURL, pages, ctx.scrapeDelay(), logger)
			if err != nil {
				return err
			}
			cat, err := scraper.Build(cmd.Context(), client.Transport)
			if err != nil {
				return err
			}
			if err := catalog.Save(cfg.Allocine.FilmsPath, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d films to %s\n", cat.Len(), cfg.Allocine.FilmsPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "Listing pages to scrape (defaults to the configured count)")
	return cmd
}
