package extract

import (
	"context"
	"log/slog"
	"strings"

	"charkit/internal/language"
	"charkit/internal/logging"
)

// Options describes one extraction run.
type Options struct {
	Language         string
	FallbackLanguage string
	Text             string
	OutputDir        string
	Logger           *slog.Logger
}

// Result summarizes a completed extraction.
type Result struct {
	Language     string
	LanguageName string
	Characters   []rune
	Excluded     int
	OutputPath   string
}

// Run extracts the inventory of opts.Text and writes it to the output directory.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := logging.NewComponentLogger(logging.WithContext(ctx, opts.Logger), "extract")

	lang := ResolveLanguage(opts.Language, opts.FallbackLanguage)
	if err := ValidateLanguage(lang); err != nil {
		return Result{}, err
	}

	chars, excluded := extract(opts.Text)
	path, err := WriteFile(opts.OutputDir, lang, chars)
	if err != nil {
		return Result{}, err
	}

	name := language.DisplayName(lang)
	if name == "" {
		logger.Debug("language code is not a recognized BCP 47 tag", logging.String("language", lang))
	}
	logger.Info("extracted unique characters",
		logging.String("language", lang),
		logging.Int("characters", len(chars)),
		logging.Int("cyrillic_excluded", excluded),
		logging.String("path", path),
	)

	return Result{
		Language:     lang,
		LanguageName: name,
		Characters:   chars,
		Excluded:     excluded,
		OutputPath:   path,
	}, nil
}

// ResolveLanguage trims code and falls back when it is empty.
func ResolveLanguage(code, fallback string) string {
	code = strings.TrimSpace(code)
	if code != "" {
		return code
	}
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		return "output"
	}
	return fallback
}
