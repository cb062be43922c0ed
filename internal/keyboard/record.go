package keyboard

import (
	"strings"

	"charkit/internal/charset"
)

// Record is one keyboard layout from the catalog.
type Record struct {
	ID            string
	Name          string
	Locale        string
	SourceFile    string
	AllCharacters string
	Characters    charset.Set
}

// ParseCharacters splits a comma-joined character list. Items are trimmed and
// empty items dropped, so a literal comma or whitespace key cannot be listed.
func ParseCharacters(raw string) charset.Set {
	set := make(charset.Set)
	if raw == "" {
		return set
	}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set.Add(item)
	}
	return set
}
