package markdown

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single markup attribute. Node attributes keep insertion order so
// output is stable.
type Attr struct {
	Key string
	Val string
}

// CodeInfo records how a code node was dispatched and the text it carries
// after normalization.
type CodeInfo struct {
	Dispatch Dispatch
	Text     string
}

// Node is one node of the rendered markup tree. A node with neither Tag nor
// text is a fragment: its children are emitted in its place.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
	Code     *CodeInfo

	raw string
}

// RawNode wraps markup that is emitted verbatim.
func RawNode(markup string) *Node {
	return &Node{Kind: KindRaw, raw: markup}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// IsFragment reports whether n only groups its children.
func (n *Node) IsFragment() bool {
	return n.Tag == "" && n.Kind != KindText && n.raw == ""
}

// TextContent concatenates all text below n, including code payloads.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		switch {
		case c.Kind == KindText:
			b.WriteString(c.Text)
			return false
		case c.Code != nil && c.Code.Dispatch.Highlighted():
			b.WriteString(c.Code.Text)
			return false
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Blocks returns the nodes that would appear at the top level of the output,
// looking through fragments.
func (n *Node) Blocks() []*Node {
	if !n.IsFragment() {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Blocks()...)
	}
	return out
}

// WriteHTML serializes the tree to w.
func (n *Node) WriteHTML(w io.Writer) error {
	for _, hn := range n.htmlNodes() {
		if err := html.Render(w, hn); err != nil {
			return err
		}
	}
	return nil
}

// HTML returns the serialized tree.
func (n *Node) HTML() string {
	var buf bytes.Buffer
	if err := n.WriteHTML(&buf); err != nil {
		return ""
	}
	return buf.String()
}

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

func (n *Node) htmlNodes() []*html.Node {
	switch {
	case n.Kind == KindText:
		return []*html.Node{{Type: html.TextNode, Data: n.Text}}
	case n.raw != "":
		nodes, err := html.ParseFragment(strings.NewReader(n.raw), fragmentContext)
		if err != nil {
			return []*html.Node{{Type: html.TextNode, Data: n.raw}}
		}
		return nodes
	case n.Tag == "":
		var out []*html.Node
		for _, c := range n.Children {
			out = append(out, c.htmlNodes()...)
		}
		return out
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.Children {
		for _, hc := range c.htmlNodes() {
			el.AppendChild(hc)
		}
	}
	return []*html.Node{el}
}
