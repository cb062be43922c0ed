package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"charkit/internal/charset"
	"charkit/internal/config"
	"charkit/internal/extract"
	"charkit/internal/keyboard"
	"charkit/internal/logging"
	"charkit/internal/match"
	"charkit/internal/report"
)

// ErrNoInputFile reports a match request without an inventory path.
var ErrNoInputFile = errors.New("no input file specified")

type ExtractRequest struct {
	Config   *config.Config
	Language string
	Text     string
	Logger   *slog.Logger
}

// RunExtract extracts the inventory of req.Text into the configured output
// directory.
func RunExtract(ctx context.Context, req ExtractRequest) (extract.Result, error) {
	cfg := req.Config
	if cfg == nil {
		return extract.Result{}, fmt.Errorf("configuration is required")
	}
	return extract.Run(ctx, extract.Options{
		Language:         req.Language,
		FallbackLanguage: cfg.Extract.DefaultLanguage,
		Text:             req.Text,
		OutputDir:        cfg.Paths.OutputDir,
		Logger:           req.Logger,
	})
}

type MatchRequest struct {
	Config    *config.Config
	InputPath string
	Logger    *slog.Logger
}

type MatchResult struct {
	InputPath   string
	Characters  int
	CatalogPath string
	Keyboards   int
	Rankings    match.Rankings
	ReportPath  string
}

// RunMatch ranks the catalog keyboards against the inventory at
// req.InputPath and writes the CSV report.
func RunMatch(ctx context.Context, req MatchRequest) (MatchResult, error) {
	cfg := req.Config
	if cfg == nil {
		return MatchResult{}, fmt.Errorf("configuration is required")
	}
	base := logging.WithContext(ctx, req.Logger)
	logger := logging.NewComponentLogger(base, "match")

	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return MatchResult{}, ErrNoInputFile
	}

	language, err := charset.ReadFile(inputPath)
	if err != nil {
		msg, event := "character inventory unreadable", "inventory_unreadable"
		if errors.Is(err, os.ErrNotExist) {
			msg, event = "character inventory not found", "inventory_missing"
		}
		logging.WarnWithContext(logger, msg, event,
			logging.String("path", inputPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "pass the path of a *_unique_characters.txt file"),
		)
		language = charset.New()
	}
	if language.Len() == 0 {
		return MatchResult{}, fmt.Errorf("%w in %s", match.ErrNoCharacters, inputPath)
	}
	logger.Info("character inventory loaded",
		logging.String("path", inputPath),
		logging.Int("characters", language.Len()),
	)

	catalog := keyboard.Load(cfg.Paths.CatalogPath, base)
	results := match.AnalyzeAll(language, catalog.Records())

	topN := cfg.Match.TopN
	if topN <= 0 {
		topN = match.DefaultTopN
	}
	rankings := match.Rank(results, topN)

	reportPath, err := report.WriteFile(cfg.Paths.OutputDir, inputPath, rankings)
	if err != nil {
		return MatchResult{}, err
	}
	logger.Info("keyboard similarity report written",
		logging.String("path", reportPath),
		logging.Int("keyboards", catalog.Len()),
		logging.Int("skipped_rows", catalog.Skipped()),
	)

	return MatchResult{
		InputPath:   inputPath,
		Characters:  language.Len(),
		CatalogPath: catalog.Path(),
		Keyboards:   catalog.Len(),
		Rankings:    rankings,
		ReportPath:  reportPath,
	}, nil
}

// ListCatalog loads the configured keyboard catalog.
func ListCatalog(cfg *config.Config, logger *slog.Logger) (*keyboard.Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	return keyboard.Load(cfg.Paths.CatalogPath, logger), nil
}
