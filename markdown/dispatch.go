package markdown

import (
	"regexp"
	"strings"
)

var reLanguage = regexp.MustCompile(`language-(\w+)`)

// Mode is the rendering path chosen for a code element.
type Mode int

const (
	Inline Mode = iota
	Highlighted
)

func (m Mode) String() string {
	if m == Highlighted {
		return "highlighted"
	}
	return "inline"
}

// Dispatch is the outcome of resolving a code element's class annotation.
// Language is set only when Mode is Highlighted.
type Dispatch struct {
	Mode     Mode
	Language string
}

// HighlightedAs returns a highlighted dispatch for language.
func HighlightedAs(language string) Dispatch {
	return Dispatch{Mode: Highlighted, Language: language}
}

// Highlighted reports whether the code goes through the highlighter.
func (d Dispatch) Highlighted() bool {
	return d.Mode == Highlighted
}

// Resolve picks the rendering path for a code element from its class
// annotation. Anything without a language-<id> token renders inline.
func Resolve(annotation string) Dispatch {
	m := reLanguage.FindStringSubmatch(annotation)
	if m == nil {
		return Dispatch{Mode: Inline}
	}
	return HighlightedAs(m[1])
}

// trimFenceNewline drops the single newline parsers leave at the end of a
// fenced block.
func trimFenceNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
