// Package predicate holds the row quality predicates used by the cleaning pipeline.
//
// Every predicate is a pure function over one raw field. Nothing is normalized first:
// the checks look at exactly the text that would be written to the cleaned file.
//
// Character classes are Unicode aware:
// - whitespace is the Unicode White_Space set plus the ASCII separators (includes U+001C..U+001F and U+0085, excludes U+200B)
// - a word character is any letter, any number, or underscore (combining marks are not)
// - a digit is any decimal digit (Nd), so Devanagari digits count as digits
// - a word boundary sits between a word character and a non-word character (or an edge)
package predicate

import (
	"strings"
	"unicode"
)

// space mirrors spaceClass; keep the two in sync
var space = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0009, Hi: 0x000d, Stride: 1},
		{Lo: 0x001c, Hi: 0x0020, Stride: 1},
		{Lo: 0x0085, Hi: 0x0085, Stride: 1},
		{Lo: 0x00a0, Hi: 0x00a0, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x2000, Hi: 0x200a, Stride: 1},
		{Lo: 0x2028, Hi: 0x2029, Stride: 1},
		{Lo: 0x202f, Hi: 0x202f, Stride: 1},
		{Lo: 0x205f, Hi: 0x205f, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
	},
	LatinOffset: 4,
}

// Regex class bodies (no brackets). Both regexp and regexp2 accept literal runes inside a class.
const (
	spaceClass = "\t\n\v\f\r\x1c-\x1f \u0085\u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000"
	wordClass  = `\p{L}\p{N}_`
)

// wordBoundary matches where a word character meets a non-word character or a text edge
const wordBoundary = `(?:(?<=[` + wordClass + `])(?![` + wordClass + `])|(?<![` + wordClass + `])(?=[` + wordClass + `]))`

// IsSpace reports whether r is whitespace in the sense used by every predicate
func IsSpace(r rune) bool { return unicode.Is(space, r) }

// IsEmpty reports whether s is blank once surrounding whitespace is removed
func IsEmpty(s string) bool {
	return strings.TrimFunc(s, IsSpace) == ""
}
