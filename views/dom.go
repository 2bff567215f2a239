package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el builds an element node. Nil children are skipped.
func el(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// at builds an attribute list from key/value pairs.
func at(kv ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

func cls(class string) []html.Attribute {
	return at("class", class)
}

func txt(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// raw inserts trusted markup without escaping.
func raw(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: s}
}

// embed renders a templ component so it can sit inside a node tree.
func embed(ctx context.Context, c templ.Component) (*html.Node, error) {
	if c == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return raw(buf.String()), nil
}

// component renders the tree produced by build.
func component(build func(ctx context.Context) (*html.Node, error)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n, err := build(ctx)
		if err != nil {
			return err
		}
		return html.Render(w, n)
	})
}

func static(n func() *html.Node) templ.Component {
	return component(func(context.Context) (*html.Node, error) { return n(), nil })
}
