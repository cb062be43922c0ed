package report

import (
	"encoding/json"
	"fmt"
	"io"

	"charkit/internal/match"
)

// WriteJSON encodes rankings as an indented object with top10ByCoverage and
// top10ByOverlap arrays. Empty rankings encode as [] rather than null.
func WriteJSON(w io.Writer, rankings match.Rankings) error {
	if rankings.ByCoverage == nil {
		rankings.ByCoverage = []match.Result{}
	}
	if rankings.ByOverlap == nil {
		rankings.ByOverlap = []match.Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(rankings); err != nil {
		return fmt.Errorf("encode rankings: %w", err)
	}
	return nil
}
