package predicate

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// ASCII punctuation, escaped for a character class
const punctClass = `!"#$%&'()*+,\-./:;<=>?@\[\]\\^_` + "`" + `{|}~`

// Backreference patterns need a backtracking engine; RE2 cannot express \1.
// The others stay on regexp for linear time.
var (
	repPunct = regexp2.MustCompile(`([`+punctClass+`])\1{5,}`, regexp2.None)

	// a word followed by two or more copies of itself, separated by commas or whitespace
	repWord = regexp2.MustCompile(
		`(?<![`+wordClass+`])([`+wordClass+`]+)(?:[,`+spaceClass+`]+\1){2,}`,
		regexp2.IgnoreCase,
	)

	// shortest span of 3+ characters repeated three times in a row
	repPhrase = regexp2.MustCompile(
		wordBoundary+`([^\n]{3,}?)[`+spaceClass+`]+\1[`+spaceClass+`]+\1`,
		regexp2.IgnoreCase,
	)

	repNum     = regexp.MustCompile(`\p{Nd}+(?:\P{Nd}+\p{Nd}+){5,}`)
	bracketNum = regexp.MustCompile(`\[\p{Nd}+\](?:[` + spaceClass + `]*\[\p{Nd}+\]){5,}`)
)

// HasRepeatedPunct reports whether one ASCII punctuation character occurs 6+ times in a row
func HasRepeatedPunct(s string) bool { return match2(repPunct, s) }

// HasRepeatedNumbers reports whether s holds a run of 6+ numbers, either separated by
// any non-digit text or written as [n] tokens separated only by whitespace
func HasRepeatedNumbers(s string) bool {
	return repNum.MatchString(s) || bracketNum.MatchString(s)
}

// HasRepeatedWord reports whether a word is immediately repeated at least twice more
// (case-insensitive, separators limited to commas and whitespace)
func HasRepeatedWord(s string) bool { return match2(repWord, s) }

// HasRepeatedPhrase reports whether a span of 3+ characters appears three times in a row,
// separated by whitespace (case-insensitive)
func HasRepeatedPhrase(s string) bool { return match2(repPhrase, s) }

// match2 treats an engine error as no match; errors only come from match timeouts and none is set
func match2(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
