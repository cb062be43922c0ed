package main

import (
	"fmt"
	"io"

	"charkit/internal/console"
	"charkit/internal/match"
)

func renderRanking(out io.Writer, title string, results []match.Result, colorize bool) {
	fmt.Fprintln(out)
	for _, line := range console.SectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No keyboards to rank.")
		return
	}
	fmt.Fprintln(out, console.RankingTable(results))
}
