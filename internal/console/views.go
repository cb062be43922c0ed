package console

import (
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"charkit/internal/keyboard"
	"charkit/internal/match"
)

// Keyboard names longer than this wrap inside their cell.
const nameWidth = 32

// RankingTable renders one ranking with the percentages to two decimals.
func RankingTable(results []match.Result) string {
	columns := []Column{
		{Header: "#", Align: AlignRight},
		{Header: "Keyboard"},
		{Header: "Name", MaxWidth: nameWidth},
		{Header: "Locale"},
		{Header: "Coverage", Align: AlignRight},
		{Header: "Overlap", Align: AlignRight},
		{Header: "Missing", Align: AlignRight},
		{Header: "Excess", Align: AlignRight},
	}
	rows := make([][]string, 0, len(results))
	for i, res := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			res.KeyboardID,
			res.KeyboardName,
			res.Locale,
			fmt.Sprintf("%.2f%%", res.CoveragePercentage),
			fmt.Sprintf("%.2f%%", res.OverlapPercentage),
			strconv.Itoa(res.MissingCount),
			strconv.Itoa(res.ExcessCount),
		})
	}
	return RenderTable(columns, rows)
}

// CatalogTable lists catalog keyboards with their character counts.
func CatalogTable(records []keyboard.Record) string {
	columns := []Column{
		{Header: "ID"},
		{Header: "Name", MaxWidth: nameWidth},
		{Header: "Locale"},
		{Header: "Source"},
		{Header: "Characters", Align: AlignRight},
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.ID, rec.Name, rec.Locale, rec.SourceFile, strconv.Itoa(rec.Characters.Len())})
	}
	return RenderTable(columns, rows)
}

// PreviewTable lists extracted characters with their code point and Unicode
// name.
func PreviewTable(chars []rune) string {
	columns := []Column{{Header: "Code point"}, {Header: "Char"}, {Header: "Name"}}
	rows := make([][]string, 0, len(chars))
	for _, r := range chars {
		rows = append(rows, []string{fmt.Sprintf("U+%04X", r), Printable(r), runenames.Name(r)})
	}
	return RenderTable(columns, rows)
}

// Printable returns r as a string, or its Go escape when it would not show.
func Printable(r rune) string {
	if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		return string(r)
	}
	return strconv.QuoteRuneToGraphic(r)
}
