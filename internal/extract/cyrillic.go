package extract

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// cyrillicBlocks covers the Cyrillic Unicode blocks by block boundary, not by
// script property, so unassigned code points inside a block are excluded too.
var cyrillicBlocks = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0400, Hi: 0x04FF, Stride: 1}}},   // Cyrillic
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0500, Hi: 0x052F, Stride: 1}}},   // Cyrillic Supplement
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x2DE0, Hi: 0x2DFF, Stride: 1}}},   // Cyrillic Extended-A
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xA640, Hi: 0xA69F, Stride: 1}}},   // Cyrillic Extended-B
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x1C80, Hi: 0x1C8F, Stride: 1}}},   // Cyrillic Extended-C
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x1E030, Hi: 0x1E08F, Stride: 1}}}, // Cyrillic Extended-D
)

// IsCyrillic reports whether r falls inside one of the Cyrillic blocks.
func IsCyrillic(r rune) bool {
	return unicode.Is(cyrillicBlocks, r)
}
