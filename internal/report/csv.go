package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"charkit/internal/fileutil"
	"charkit/internal/match"
)

const (
	fileSuffix = "_most_similar_keyboards.csv"

	CoverageLabel = "Top 10 Keyboards Ranked by Coverage Rate"
	OverlapLabel  = "Top 10 Keyboards Ranked by Overlapping Rate"
)

// Header lists the CSV columns in order.
var Header = []string{
	"rank", "keyboard_id", "keyboard_name", "locale", "source_file",
	"language_char_count", "keyboard_char_count", "overlap_count", "missing_count", "excess_count",
	"coverage_percentage", "overlap_percentage",
	"overlap_chars", "missing_chars", "excess_chars",
}

// FileName returns <input basename without extension>_most_similar_keyboards.csv.
// A leading dot belongs to the name, so ".inventory" keeps its whole base.
func FileName(inputPath string) string {
	base := filepath.Base(strings.TrimSpace(inputPath))
	if ext := filepath.Ext(base); strings.TrimLeft(base, ".") != strings.TrimLeft(ext, ".") {
		base = strings.TrimSuffix(base, ext)
	}
	return base + fileSuffix
}

// WriteCSV writes the header, the coverage ranking and the overlap ranking.
func WriteCSV(w io.Writer, rankings match.Rankings) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	rows := [][]string{Header, labelRow(CoverageLabel)}
	for i, res := range rankings.ByCoverage {
		rows = append(rows, resultRow(i+1, res))
	}
	rows = append(rows, labelRow(OverlapLabel))
	for i, res := range rankings.ByOverlap {
		rows = append(rows, resultRow(i+1, res))
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write report csv: %w", err)
	}
	return nil
}

// WriteFile writes the CSV report for inputPath into dir, replacing any
// previous report, and returns the path written.
func WriteFile(dir, inputPath string, rankings match.Rankings) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, rankings); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(inputPath))
	if err := fileutil.WriteAtomic(path, []byte(b.String())); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// FormatPercentage renders p with the fewest digits that round-trip. Whole
// values keep one decimal place, so 100 is written as 100.0.
func FormatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func labelRow(label string) []string {
	row := make([]string, len(Header))
	row[1] = label
	return row
}

func resultRow(rank int, res match.Result) []string {
	return []string{
		strconv.Itoa(rank),
		res.KeyboardID,
		res.KeyboardName,
		res.Locale,
		res.SourceFile,
		strconv.Itoa(res.LanguageCharCount),
		strconv.Itoa(res.KeyboardCharCount),
		strconv.Itoa(res.OverlapCount),
		strconv.Itoa(res.MissingCount),
		strconv.Itoa(res.ExcessCount),
		FormatPercentage(res.CoveragePercentage),
		FormatPercentage(res.OverlapPercentage),
		res.OverlapChars,
		res.MissingChars,
		res.ExcessChars,
	}
}
