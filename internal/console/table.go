package console

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
)

// dottedCircle is the conventional base for showing a combining mark alone.
const dottedCircle = "◌"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column. Cells wider than MaxWidth display
// columns wrap onto further lines; zero leaves the column unbounded.
type Column struct {
	Header   string
	Align    Alignment
	MaxWidth int
}

// RenderTable draws rows under columns. Missing cells render empty. A cell
// that occupies no display columns on its own, such as a lone combining
// mark, is drawn on a dotted circle so it neither vanishes nor fuses with
// the border.
func RenderTable(columns []Column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.Header
		align := text.AlignLeft
		if col.Align == AlignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
		if col.MaxWidth > 0 {
			configs[i].WidthMax = col.MaxWidth
			configs[i].WidthMaxEnforcer = text.WrapSoft
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = displayCell(row[i])
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func displayCell(cell string) string {
	if cell != "" && runewidth.StringWidth(cell) == 0 {
		return dottedCircle + cell
	}
	return cell
}
