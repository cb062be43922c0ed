package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"charkit/internal/api"
	"charkit/internal/console"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the keyboard catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	return catalogCmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the keyboards in the catalog",
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

			catalog, err := api.ListCatalog(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := console.ShouldColorize(out)
			fmt.Fprintln(out, console.StatusLine("Catalog", console.StatusInfo, catalog.Path(), colorize))
			if catalog.Len() == 0 {
				fmt.Fprintln(out, console.StatusLine("Keyboards", console.StatusWarn, "none loaded", colorize))
				return nil
			}
			summary := fmt.Sprintf("%d loaded", catalog.Len())
			kind := console.StatusOK
			if catalog.Skipped() > 0 {
				summary = fmt.Sprintf("%d loaded, %d rows skipped", catalog.Len(), catalog.Skipped())
				kind = console.StatusWarn
			}
			fmt.Fprintln(out, console.StatusLine("Keyboards", kind, summary, colorize))
			fmt.Fprintln(out, console.CatalogTable(catalog.Records()))
			return nil
		},
	}
}
