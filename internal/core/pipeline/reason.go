package pipeline

// Reason identifies the check that rejected a row
// Values are ordered by check position; add new reasons in pipeline order only
type Reason uint8

const (
	// EmptySrc is a blank source field
	EmptySrc Reason = iota
	// EmptyTgt is a blank target field
	EmptyTgt
	// BadSrcEng is Latin letters in the source
	BadSrcEng
	// BadSrcHindi is Devanagari text in the source
	BadSrcHindi
	// BadTgtHindi is Devanagari text in the target
	BadTgtHindi
	// Angle is an angle bracket in either field
	Angle
	// HTML is a tag-like span in either field
	HTML
	// RepPunct is repeated punctuation in the source
	RepPunct
	// RepPunctTgt is repeated punctuation in the target
	RepPunctTgt
	// Shape is a geometric shape in either field
	Shape
	// Emoji is an emoji in either field
	Emoji
	// RepNum is a run of numbers in either field
	RepNum
	// RepWord is a word repeated three times in either field
	RepWord
	// RepPhrase is a phrase repeated three times in the target
	RepPhrase

	// NumReasons is the number of reasons, not a reason
	NumReasons
)

var reasonInfo = [NumReasons]struct{ code, label string }{
	EmptySrc:    {"empty_src", "Empty src"},
	EmptyTgt:    {"empty_tgt", "Empty tgt"},
	BadSrcEng:   {"bad_src_eng", "Src with English letters"},
	BadSrcHindi: {"bad_src_hindi", "Src with Hindi"},
	BadTgtHindi: {"bad_tgt_hindi", "Tgt with Hindi"},
	Angle:       {"angle", "Angle brackets"},
	HTML:        {"html", "HTML tags"},
	RepPunct:    {"rep_punct", "Rep. punct in src"},
	RepPunctTgt: {"rep_punct_tgt", "Rep. punct in tgt"},
	Shape:       {"shape", "Geometric shapes"},
	Emoji:       {"emoji", "Emojis"},
	RepNum:      {"rep_num", "Rep. numbers"},
	RepWord:     {"rep_word", "Rep. single word"},
	RepPhrase:   {"rep_phrase", "Rep. phrase in tgt"},
}

// String returns the stable reason code, e.g. "empty_src"
func (r Reason) String() string {
	if r >= NumReasons {
		return "unknown"
	}
	return reasonInfo[r].code
}

// Label returns the human label used in summaries
func (r Reason) Label() string {
	if r >= NumReasons {
		return "Unknown"
	}
	return reasonInfo[r].label
}

// Reasons returns every reason in pipeline order
func Reasons() []Reason {
	out := make([]Reason, NumReasons)
	for i := range out {
		out[i] = Reason(i)
	}
	return out
}

// ParseReason maps a reason code back to its Reason
func ParseReason(code string) (Reason, bool) {
	for i, ri := range reasonInfo {
		if ri.code == code {
			return Reason(i), true
		}
	}
	return 0, false
}
