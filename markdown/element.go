package markdown

import "sort"

// Kind identifies the markdown construct an Element came from.
type Kind int

const (
	KindGeneric Kind = iota
	KindHeading1
	KindHeading2
	KindHeading3
	KindParagraph
	KindUnorderedList
	KindOrderedList
	KindListItem
	KindBlockquote
	KindInlineCode
	KindFencedCode
	KindImage
	KindLink

	// KindText is a leaf holding literal text.
	KindText
	// KindPre wraps a fenced code block the way parsers emit <pre><code>.
	KindPre
	// KindRaw holds markup that was already rendered upstream.
	KindRaw
)

var kindNames = map[Kind]string{
	KindGeneric:       "Generic",
	KindHeading1:      "Heading1",
	KindHeading2:      "Heading2",
	KindHeading3:      "Heading3",
	KindParagraph:     "Paragraph",
	KindUnorderedList: "UnorderedList",
	KindOrderedList:   "OrderedList",
	KindListItem:      "ListItem",
	KindBlockquote:    "Blockquote",
	KindInlineCode:    "InlineCode",
	KindFencedCode:    "FencedCode",
	KindImage:         "Image",
	KindLink:          "Link",
	KindText:          "Text",
	KindPre:           "Pre",
	KindRaw:           "Raw",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Element is one node of a parsed markdown document.
//
// Tag is the HTML element a Generic node falls back to (em, table, hr...);
// it is ignored for kinds that have a registry rule. For code elements Text
// holds the raw code and Attrs["class"] the language annotation.
type Element struct {
	Kind     Kind
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

// Attr returns the named attribute and whether it was set to a non-empty value.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok && v != ""
}

// SetAttr sets an attribute, allocating the map on first use.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// Append adds children in order and returns e.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// sortedAttrs returns the element attributes ordered by name.
func (e *Element) sortedAttrs() []Attr {
	if len(e.Attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Attr{Key: k, Val: e.Attrs[k]})
	}
	return attrs
}

// Text returns a text leaf.
func Text(s string) *Element {
	return &Element{Kind: KindText, Text: s}
}

// El builds an element of kind k with the given children.
func El(k Kind, children ...*Element) *Element {
	return (&Element{Kind: k}).Append(children...)
}

// FencedCode builds a fenced code element. An empty annotation means the
// fence carried no class at all.
func FencedCode(annotation, raw string) *Element {
	el := &Element{Kind: KindFencedCode, Text: raw}
	if annotation != "" {
		el.SetAttr("class", annotation)
	}
	return el
}
