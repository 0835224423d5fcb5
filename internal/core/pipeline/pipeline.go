// Package pipeline validates one sentence pair against the fixed, ordered list of quality checks.
// The first failing check decides the row's reason; later checks are not evaluated
package pipeline

import "bitextclean/internal/core/predicate"

// Outcome is what happened to a row
type Outcome uint8

const (
	// Accepted rows pass every check and go to the cleaned output
	Accepted Outcome = iota
	// Rejected rows failed a check and carry its Reason
	Rejected
	// Malformed rows have fewer than two fields; they have no Reason
	Malformed
)

// String returns a short outcome name for logs
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Verdict is the result of validating one row
// Reason is meaningful only when Outcome is Rejected
type Verdict struct {
	Outcome Outcome
	Reason  Reason
	Src     string
	Tgt     string
}

// Check pairs a failure test with the reason recorded when it fails
type Check struct {
	Reason Reason
	Fails  func(src, tgt string) bool
}

func onSrc(p func(string) bool) func(string, string) bool {
	return func(src, _ string) bool { return p(src) }
}

func onTgt(p func(string) bool) func(string, string) bool {
	return func(_, tgt string) bool { return p(tgt) }
}

func onEither(p func(string) bool) func(string, string) bool {
	return func(src, tgt string) bool { return p(src) || p(tgt) }
}

// Checks is the pipeline in evaluation order. Repeated punctuation is split by field,
// repeated phrases are checked on the target only
var Checks = []Check{
	{EmptySrc, onSrc(predicate.IsEmpty)},
	{EmptyTgt, onTgt(predicate.IsEmpty)},
	{BadSrcEng, onSrc(predicate.HasLatinLetter)},
	{BadSrcHindi, onSrc(predicate.HasDevanagari)},
	{BadTgtHindi, onTgt(predicate.HasDevanagari)},
	{Angle, onEither(predicate.HasAngleBracket)},
	{HTML, onEither(predicate.HasHTMLTag)},
	{RepPunct, onSrc(predicate.HasRepeatedPunct)},
	{RepPunctTgt, onTgt(predicate.HasRepeatedPunct)},
	{Shape, onEither(predicate.HasGeometricShape)},
	{Emoji, onEither(predicate.HasEmoji)},
	{RepNum, onEither(predicate.HasRepeatedNumbers)},
	{RepWord, onEither(predicate.HasRepeatedWord)},
	{RepPhrase, onTgt(predicate.HasRepeatedPhrase)},
}

// Validate runs fields through Checks. Fields past the second are ignored
func Validate(fields []string) Verdict {
	if len(fields) < 2 {
		return Verdict{Outcome: Malformed}
	}
	src, tgt := fields[0], fields[1]
	for _, c := range Checks {
		if c.Fails(src, tgt) {
			return Verdict{Outcome: Rejected, Reason: c.Reason}
		}
	}
	return Verdict{Outcome: Accepted, Src: src, Tgt: tgt}
}
