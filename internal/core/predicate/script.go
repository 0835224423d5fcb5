package predicate

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Devanagari block, not the Devanagari script: danda (U+0964) counts, U+A8E0.. does not
var devanagari = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0900, Hi: 0x097f, Stride: 1}},
}

// Geometric Shapes block
var geometric = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x25a0, Hi: 0x25ff, Stride: 1}},
}

// emoji blocks, merged so adjacent ranges coalesce
var emoji = rangetable.Merge(
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}}}, // misc symbols and pictographs
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}}}, // emoticons
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}}}, // transport and map
	&unicode.RangeTable{R32: []unicode.Range32{{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}}}, // supplemental symbols
)

// minDevanagari is the smallest count treated as Devanagari text; a lone mark is noise
const minDevanagari = 2

// HasLatinLetter reports whether s contains an ASCII letter
func HasLatinLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20 // fold to lower case
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}

// DevanagariCount counts code points in U+0900..U+097F
func DevanagariCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(devanagari, r) {
			n++
		}
	}
	return n
}

// HasDevanagari reports whether s carries at least two Devanagari code points
func HasDevanagari(s string) bool {
	n := 0
	for _, r := range s {
		if unicode.Is(devanagari, r) {
			n++
			if n >= minDevanagari {
				return true
			}
		}
	}
	return false
}

// HasGeometricShape reports whether s contains a Geometric Shapes character
func HasGeometricShape(s string) bool { return containsIn(s, geometric) }

// HasEmoji reports whether s contains a character from one of the emoji blocks
func HasEmoji(s string) bool { return containsIn(s, emoji) }

func containsIn(s string, tab *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.Is(tab, r) {
			return true
		}
	}
	return false
}
