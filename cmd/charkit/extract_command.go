package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"charkit/internal/api"
	"charkit/internal/config"
	"charkit/internal/console"
	"charkit/internal/extract"
	"charkit/internal/language"
	"charkit/internal/prompt"
)

const (
	languageQuestion = "What is the name of your language? (e.g. arz, lij, etc.) "
	modeQuestion     = "Do you want to (1) paste text directly or (2) provide a .txt file path? Enter 1 or 2: "
	pathQuestion     = "Enter the path to your .txt file: "
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var languageCode string
	var inputPath string
	var fromStdin bool
	var preview bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the unique non-Cyrillic characters of a text sample",
		Long: `Extract normalizes a text sample to NFC, keeps each distinct character once,
drops the Cyrillic blocks, and writes the characters in code point order to
<language>_unique_characters.txt in the output directory.

Without flags the command asks for the language code and whether to paste the
text (ending with a line containing only END) or to read a .txt file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath != "" && fromStdin {
				return fmt.Errorf("--input and --stdin are mutually exclusive")
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
			p := prompt.New(cmd.InOrStdin(), out)

			if !cmd.Flags().Changed("language") && inputPath == "" && !fromStdin {
				if languageCode, err = p.Ask(languageQuestion); err != nil {
					return fmt.Errorf("read language: %w", err)
				}
			}

			var text string
			switch {
			case inputPath != "":
				text, err = extract.ReadFile(inputPath, cfg.Extract.InputExtension)
			case fromStdin:
				text, err = extract.ReadPasted(p.Reader(), cfg.Extract.Sentinel)
			default:
				text, err = gatherInteractive(p, cfg)
			}
			if err != nil {
				return err
			}

			res, err := api.RunExtract(ctx.runContext(cmd), api.ExtractRequest{
				Config:   cfg,
				Language: languageCode,
				Text:     text,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			if preview {
				fmt.Fprintln(out, console.PreviewTable(res.Characters))
			}
			fmt.Fprintf(out, "Extracted %d characters for %s\n", len(res.Characters), language.Describe(res.Language))
			fmt.Fprintf(out, "Extracted characters successfully saved to %s!\n", res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageCode, "language", "l", "", "Language code used to name the output file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read the text sample from a .txt file")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the text sample from stdin until a line containing only the sentinel")
	cmd.Flags().BoolVar(&preview, "preview", false, "Print a table of the extracted characters")
	return cmd
}

// gatherInteractive asks for the input mode and collects the text sample.
func gatherInteractive(p *prompt.Prompter, cfg *config.Config) (string, error) {
	answer, err := p.Ask(modeQuestion)
	if err != nil {
		return "", fmt.Errorf("read input mode: %w", err)
	}
	mode, err := extract.ParseMode(answer)
	if err != nil {
		return "", err
	}

	if mode == extract.ModePaste {
		p.Printf("Please paste the dataset for your language below. To end the input, write a single line containing only '%s':\n", cfg.Extract.Sentinel)
		return extract.ReadPasted(p.Reader(), cfg.Extract.Sentinel)
	}

	var text string
	_, err = p.AskUntil(pathQuestion, func(path string) error {
		data, readErr := extract.ReadFile(path, cfg.Extract.InputExtension)
		if readErr != nil {
			if errors.Is(readErr, extract.ErrInputNotFound) {
				return errors.New("the path is not valid, retry")
			}
			return fmt.Errorf("error reading the file: %v", readErr)
		}
		text = data
		return nil
	})
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no valid path given", extract.ErrInputNotFound)
		}
		return "", err
	}
	return text, nil
}
