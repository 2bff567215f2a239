package markdown

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightOptions is the fixed visual treatment of highlighted code blocks.
type HighlightOptions struct {
	Style        string // chroma style name
	Padding      string
	BorderRadius string
	Border       string
	TabWidth     int
}

// DefaultHighlightOptions returns the dark theme used across the site.
func DefaultHighlightOptions() HighlightOptions {
	return HighlightOptions{
		Style:        "monokai",
		Padding:      "1.5rem",
		BorderRadius: "0.75rem",
		Border:       "1px solid rgba(255, 255, 255, 0.1)",
		TabWidth:     4,
	}
}

func (o *HighlightOptions) setDefaults() {
	d := DefaultHighlightOptions()
	if o.Style == "" {
		o.Style = d.Style
	}
	if o.Padding == "" {
		o.Padding = d.Padding
	}
	if o.BorderRadius == "" {
		o.BorderRadius = d.BorderRadius
	}
	if o.Border == "" {
		o.Border = d.Border
	}
	if o.TabWidth <= 0 {
		o.TabWidth = d.TabWidth
	}
}

// wrapperStyle is the inline style applied to the block container.
func (o HighlightOptions) wrapperStyle() string {
	return fmt.Sprintf("padding:%s;border-radius:%s;border:%s", o.Padding, o.BorderRadius, o.Border)
}

const (
	highlightedClass = "code-block rounded-xl my-6 overflow-x-auto"
	inlineCodeClass  = "bg-gray-800 text-gray-200 rounded px-1.5 py-0.5 text-sm font-mono"
)

// Highlighter turns code into styled markup with chroma.
type Highlighter struct {
	opts      HighlightOptions
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter builds a Highlighter. Unknown style names use chroma's
// fallback style.
func NewHighlighter(opts HighlightOptions) *Highlighter {
	opts.setDefaults()
	return &Highlighter{
		opts:  opts,
		style: styles.Get(opts.Style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(opts.TabWidth),
		),
	}
}

// Options returns the effective options.
func (h *Highlighter) Options() HighlightOptions {
	return h.opts
}

// lexerFor returns the lexer for language, or a plain-text lexer when chroma
// does not know it.
func lexerFor(language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight returns the highlighted markup for text.
func (h *Highlighter) Highlight(language, text string) (string, error) {
	it, err := lexerFor(language).Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return b.String(), nil
}

// RenderCode renders a code payload along the path chosen by d.
func (h *Highlighter) RenderCode(kind Kind, d Dispatch, raw string) *Node {
	if !d.Highlighted() {
		return &Node{
			Kind:     kind,
			Tag:      "code",
			Attrs:    []Attr{{Key: "class", Val: inlineCodeClass}},
			Children: []*Node{{Kind: KindText, Text: raw}},
			Code:     &CodeInfo{Dispatch: d, Text: raw},
		}
	}

	text := trimFenceNewline(raw)
	body, err := h.Highlight(d.Language, text)
	var inner *Node
	if err != nil {
		// Plain block in the same wrapper.
		inner = &Node{Kind: KindGeneric, Tag: "pre", Children: []*Node{{
			Kind:     KindGeneric,
			Tag:      "code",
			Children: []*Node{{Kind: KindText, Text: text}},
		}}}
	} else {
		inner = RawNode(body)
	}
	return &Node{
		Kind: kind,
		Tag:  "div",
		Attrs: []Attr{
			{Key: "class", Val: highlightedClass},
			{Key: "data-language", Val: d.Language},
			{Key: "style", Val: h.opts.wrapperStyle()},
		},
		Children: []*Node{inner},
		Code:     &CodeInfo{Dispatch: d, Text: text},
	}
}
