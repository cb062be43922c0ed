package extract

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Extract returns the distinct non-Cyrillic code points of text in ascending
// code point order. The text is NFC-normalized first so precomposed and
// decomposed spellings yield the same inventory.
func Extract(text string) []rune {
	chars, _ := extract(text)
	return chars
}

func extract(text string) ([]rune, int) {
	normalized := norm.NFC.String(text)
	seen := make(map[rune]struct{})
	chars := make([]rune, 0, 64)
	excluded := 0
	for _, r := range normalized {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if IsCyrillic(r) {
			excluded++
			continue
		}
		chars = append(chars, r)
	}
	slices.Sort(chars)
	return chars, excluded
}
