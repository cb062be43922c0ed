package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"charkit/internal/api"
	"charkit/internal/console"
	"charkit/internal/prompt"
	"charkit/internal/report"
)

const inputQuestion = "Enter the path to your character file: "

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "match [FILE]",
		Short: "Rank catalog keyboards against a character inventory",
		Long: `Match loads a character inventory (one character per line), compares it with
every keyboard in the catalog, and writes the ten keyboards with the best
coverage and the ten with the best overlap to
<input>_most_similar_keyboards.csv in the output directory.

Coverage is the share of the language's characters a keyboard offers;
overlap is the share of the keyboard's characters the language uses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "table", "json", "none":
			default:
				return fmt.Errorf("unsupported --format %q (use table, json or none)", format)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var inputPath string
			if len(args) > 0 {
				inputPath = args[0]
			} else {
				p := prompt.New(cmd.InOrStdin(), out)
				if inputPath, err = p.Ask(inputQuestion); err != nil {
					return fmt.Errorf("read input path: %w", err)
				}
			}

			res, err := api.RunMatch(ctx.runContext(cmd), api.MatchRequest{
				Config:    cfg,
				InputPath: inputPath,
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			if format == "json" {
				return report.WriteJSON(out, res.Rankings)
			}

			fmt.Fprintf(out, "Loaded %d unique characters from: %s\n", res.Characters, res.InputPath)
			if format == "table" {
				colorize := console.ShouldColorize(out)
				if res.Keyboards == 0 {
					fmt.Fprintln(out, console.StatusLine("Catalog", console.StatusWarn, "no keyboards loaded from "+res.CatalogPath, colorize))
				}
				renderRanking(out, report.CoverageLabel, res.Rankings.ByCoverage, colorize)
				renderRanking(out, report.OverlapLabel, res.Rankings.ByOverlap, colorize)
			}
			fmt.Fprintf(out, "Analysis complete! Results saved to: %s\n", res.ReportPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Terminal output: table, json or none")
	return cmd
}
