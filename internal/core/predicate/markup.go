package predicate

import (
	"regexp"
	"strings"
)

// tag-like span, tag names are not validated
var htmlTag = regexp.MustCompile(`<[^>]+>`)

// HasAngleBracket reports whether s contains < or >
func HasAngleBracket(s string) bool { return strings.ContainsAny(s, "<>") }

// HasHTMLTag reports whether s contains a tag-like span such as <b> or </ div>
func HasHTMLTag(s string) bool { return htmlTag.MatchString(s) }
