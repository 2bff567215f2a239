package markdown

import "strings"

const (
	// DefaultAlt is used for images that carry no alternative text.
	DefaultAlt = "Blog Image"
	// DefaultHref is used for links without a usable target.
	DefaultHref = "#"
)

// Rule renders one element kind from its already rendered children.
// Rules must not depend on siblings or shared state.
type Rule struct {
	Tag   string
	Class string
	Apply func(rule Rule, el *Element, children []*Node) *Node
}

func (r Rule) render(el *Element, children []*Node) *Node {
	if r.Apply == nil {
		return wrap(r, el, children)
	}
	return r.Apply(r, el, children)
}

// Registry maps element kinds to rules. Kinds without an entry use the
// generic passthrough rule.
type Registry struct {
	rules       map[Kind]Rule
	highlighter *Highlighter
}

// NewRegistry returns the site's style table with code routed through h.
func NewRegistry(h *Highlighter) *Registry {
	if h == nil {
		h = NewHighlighter(DefaultHighlightOptions())
	}
	reg := &Registry{highlighter: h}
	code := Rule{Apply: reg.applyCode}
	reg.rules = map[Kind]Rule{
		KindHeading1: {
			Tag:   "h1",
			Class: "text-4xl md:text-5xl font-extrabold mt-12 mb-6 tracking-tight bg-clip-text text-transparent bg-gradient-to-r from-blue-400 to-purple-600",
			Apply: heading,
		},
		KindHeading2: {
			Tag:   "h2",
			Class: "text-2xl md:text-3xl font-bold mt-10 mb-4 text-white border-b border-gray-800 pb-2",
			Apply: heading,
		},
		KindHeading3: {
			Tag:   "h3",
			Class: "text-xl md:text-2xl font-semibold mt-8 mb-3 text-gray-200",
			Apply: heading,
		},
		KindParagraph: {
			Tag:   "p",
			Class: "text-lg text-gray-400 leading-relaxed mb-6",
		},
		KindUnorderedList: {
			Tag:   "ul",
			Class: "list-disc list-outside ml-6 space-y-2 text-gray-300 mb-6",
		},
		KindOrderedList: {
			Tag:   "ol",
			Class: "list-decimal list-outside ml-6 space-y-2 text-gray-300 mb-6",
			Apply: orderedList,
		},
		KindListItem: {
			Tag:   "li",
			Class: "pl-2",
		},
		KindBlockquote: {
			Tag:   "blockquote",
			Class: "border-l-4 border-purple-500 pl-4 py-2 my-6 italic text-gray-400 bg-white/5 rounded-r-lg",
		},
		KindLink: {
			Tag:   "a",
			Class: "text-blue-400 hover:text-blue-300 underline underline-offset-4 transition-colors",
			Apply: link,
		},
		KindImage: {
			Tag:   "img",
			Class: "rounded-2xl shadow-2xl w-full border border-white/10 my-8",
			Apply: image,
		},
		KindInlineCode: code,
		KindFencedCode: code,
		KindPre:        {Apply: passthrough},
		KindGeneric:    {Apply: generic},
	}
	return reg
}

// Lookup returns the rule for k, falling back to the generic rule.
func (r *Registry) Lookup(k Kind) Rule {
	if rule, ok := r.rules[k]; ok {
		return rule
	}
	return r.rules[KindGeneric]
}

// Has reports whether k has a dedicated rule.
func (r *Registry) Has(k Kind) bool {
	_, ok := r.rules[k]
	return ok && k != KindGeneric
}

func (r *Registry) applyCode(_ Rule, el *Element, _ []*Node) *Node {
	class, _ := el.Attr("class")
	return r.highlighter.RenderCode(el.Kind, Resolve(class), el.Text)
}

func classAttrs(class string) []Attr {
	if class == "" {
		return nil
	}
	return []Attr{{Key: "class", Val: class}}
}

func wrap(rule Rule, el *Element, children []*Node) *Node {
	return &Node{Kind: el.Kind, Tag: rule.Tag, Attrs: classAttrs(rule.Class), Children: children}
}

func heading(rule Rule, el *Element, children []*Node) *Node {
	n := wrap(rule, el, children)
	if id, ok := el.Attr("id"); ok {
		n.Attrs = append([]Attr{{Key: "id", Val: id}}, n.Attrs...)
	}
	return n
}

func orderedList(rule Rule, el *Element, children []*Node) *Node {
	n := wrap(rule, el, children)
	if start, ok := el.Attr("start"); ok {
		n.Attrs = append(n.Attrs, Attr{Key: "start", Val: start})
	}
	return n
}

func link(rule Rule, el *Element, children []*Node) *Node {
	raw, _ := el.Attr("href")
	href := SafeURL(raw)
	if href == "" {
		href = DefaultHref
	}
	attrs := []Attr{{Key: "href", Val: href}, {Key: "class", Val: rule.Class}}
	if title, ok := el.Attr("title"); ok {
		attrs = append(attrs, Attr{Key: "title", Val: title})
	}
	if isExternal(href) {
		attrs = append(attrs, Attr{Key: "rel", Val: "noopener noreferrer"})
	}
	return &Node{Kind: el.Kind, Tag: rule.Tag, Attrs: attrs, Children: children}
}

func image(rule Rule, el *Element, _ []*Node) *Node {
	alt, ok := el.Attr("alt")
	if !ok {
		alt = DefaultAlt
	}
	var attrs []Attr
	if src := SafeURL(el.Attrs["src"]); src != "" {
		attrs = append(attrs, Attr{Key: "src", Val: src})
	}
	attrs = append(attrs,
		Attr{Key: "alt", Val: alt},
		Attr{Key: "class", Val: rule.Class},
		Attr{Key: "loading", Val: "lazy"},
	)
	if title, ok := el.Attr("title"); ok {
		attrs = append(attrs, Attr{Key: "title", Val: title})
	}
	return &Node{Kind: el.Kind, Tag: rule.Tag, Attrs: attrs}
}

// passthrough emits the children in place of the element.
func passthrough(_ Rule, el *Element, children []*Node) *Node {
	return &Node{Kind: el.Kind, Children: children}
}

// generic keeps the element's own tag and attributes and leaves its
// children untouched. Elements without a tag become fragments.
func generic(_ Rule, el *Element, children []*Node) *Node {
	return &Node{Kind: el.Kind, Tag: el.Tag, Attrs: el.sortedAttrs(), Children: children}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
