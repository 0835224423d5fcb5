package predicate

import (
	"regexp"
	"testing"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

type strCase struct {
	name string
	in   string
	want bool
}

func runBool(t *testing.T, fn func(string) bool, cases []strCase) {
	t.Helper()
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := fn(tc.in); got != tc.want {
				t.Fatalf("(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsSpace_MatchesClassAndUnicode(t *testing.T) {
	cls := regexp.MustCompile(`^[` + spaceClass + `]$`)
	for r := rune(0); r <= 0x3100; r++ {
		want := unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
		if got := IsSpace(r); got != want {
			t.Fatalf("IsSpace(%U) = %v, want %v", r, got, want)
		}
		if got := cls.MatchString(string(r)); got != want {
			t.Fatalf("spaceClass match %U = %v, want %v", r, got, want)
		}
	}
	n := 0
	rangetable.Visit(space, func(rune) { n++ })
	if n != 29 {
		t.Fatalf("space table size = %d, want 29", n)
	}
}

func TestIsEmpty(t *testing.T) {
	runBool(t, IsEmpty, []strCase{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"controls", "\t\r\n\v\f", true},
		{"nbsp and ideographic", "\u00a0\u3000", true},
		{"file separators", "\x1c\x1f", true},
		{"next line", "\u0085", true},
		{"zero width space is text", "\u200b", false},
		{"padded text", "  कुछ  ", false},
	})
}

func TestHasLatinLetter(t *testing.T) {
	runBool(t, HasLatinLetter, []strCase{
		{"lower", "abc", true},
		{"upper", "ABC", true},
		{"mixed script", "hello दुनिया", true},
		{"arabic digits", "١٢٣ متن", false},
		{"accented is not ascii", "é", false},
		{"fullwidth", "Ａ", false},
		{"neighbours of letters", "@[`{", false},
		{"trailing z", "123 z", true},
	})
}

func TestDevanagariCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"राम", 3},
		{"hello", 0},
		{"क।", 2},
		{"\ua8f2", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := DevanagariCount(c.in); got != c.want {
			t.Fatalf("DevanagariCount(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHasDevanagari(t *testing.T) {
	runBool(t, HasDevanagari, []strCase{
		{"single letter", "क", false},
		{"single letter with latin", "क x", false},
		{"letter and sign", "कि", true},
		{"word", "राम राम है", true},
		{"empty", "", false},
	})
}

func TestHasGeometricShape(t *testing.T) {
	runBool(t, HasGeometricShape, []strCase{
		{"black square", "■ item", true},
		{"diamond", "◆", true},
		{"last in block", "◿", true},
		{"block element below range", "▟", false},
		{"star", "★", false},
	})
}

func TestHasEmoji(t *testing.T) {
	runBool(t, HasEmoji, []strCase{
		{"globe", "🌍", true},
		{"grinning", "hi 😀", true},
		{"folded hands end of emoticons", "\U0001f64f", true},
		{"ornamental dingbat gap", "\U0001f650", false},
		{"rocket", "🚀", true},
		{"alchemical gap", "\U0001f700", false},
		{"robot", "🤖", true},
		{"smiling bmp symbol", "☺", false},
		{"extended pictographs", "\U0001fae0", false},
	})
}

func TestHasAngleBracket(t *testing.T) {
	runBool(t, HasAngleBracket, []strCase{
		{"less", "a<b", true},
		{"greater", "a>b", true},
		{"guillemets", "‹›«»", false},
	})
}

func TestHasHTMLTag(t *testing.T) {
	runBool(t, HasHTMLTag, []strCase{
		{"bold", "<b>text</b>", true},
		{"spaced closing", "x </ div> y", true},
		{"empty brackets", "<>", false},
		{"lone less", "a < b", false},
		{"unterminated", "a <b", false},
		{"comparison pair", "1 < 2 > 0", true},
	})
}

func TestHasRepeatedPunct(t *testing.T) {
	runBool(t, HasRepeatedPunct, []strCase{
		{"six bangs", "wow!!!!!!", true},
		{"five bangs", "wow!!!!!", false},
		{"seven bangs", "متن!!!!!!!", true},
		{"dots", "wait.......", true},
		{"dashes", "------", true},
		{"mixed run", "!!!!!?!!!!!", false},
		{"underscores", "______", true},
		{"backticks", "``````", true},
		{"backslashes", `\\\\\\`, true},
		{"pipes", "||||||", true},
		{"carets", "^^^^^^", true},
		{"open brackets", "[[[[[[", true},
		{"close brackets", "]]]]]]", true},
		{"danda is not ascii", "।।।।।।", false},
		{"ellipsis is not ascii", "……………", false},
	})
}

func TestHasRepeatedNumbers(t *testing.T) {
	runBool(t, HasRepeatedNumbers, []strCase{
		{"six spaced", "1 2 3 4 5 6", true},
		{"five spaced", "1 2 3 4 5", false},
		{"comma list", "1,2,3,4,5,6", true},
		{"devanagari digits", "१ २ ३ ४ ५ ६", true},
		{"one long number", "123456", false},
		{"brackets", "[1][2][3][4][5][6]", true},
		{"spaced brackets", "[1] [2] [3] [4] [5] [6]", true},
		{"five brackets", "[1] [2] [3] [4] [5]", false},
		{"sentence", "2019 में 3 से 5 बजे", false},
	})
}

func TestHasRepeatedWord(t *testing.T) {
	runBool(t, HasRepeatedWord, []strCase{
		{"three times", "one two two two", true},
		{"case and commas", "Two, two TWO", true},
		{"twice only", "two two", false},
		{"prefix of longer word", "two two twofold", true},
		{"inside a word", "atwo two two", false},
		{"devanagari without signs", "नमक नमक नमक", true},
		{"vowel signs are not word chars", "राम राम राम", false},
		{"comma runs", "ab,,ab, ab", true},
		{"hyphen is not a separator", "ha-ha-ha", false},
		{"digits are word chars", "1 1 1", true},
		{"arabic script", "ایک دو دو دو", true},
		{"clean", "ok fine", false},
	})
}

func TestHasRepeatedPhrase(t *testing.T) {
	runBool(t, HasRepeatedPhrase, []strCase{
		{"word", "abc abc abc", true},
		{"phrase mixed case", "Hello world hello world HELLO WORLD", true},
		{"too short", "ab ab ab", false},
		{"devanagari", "राम राम राम", true},
		{"twice only", "abc abc", false},
		{"no separators", "abcabcabc", false},
		{"newline separators", "abc\nabc\nabc", true},
		{"long whitespace", "abc  abc\tabc", true},
		{"clean", "one two three", false},
	})
}
