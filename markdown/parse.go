package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parser converts markdown source into an Element tree using goldmark.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GFM extensions and heading IDs.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Parser{md: md}
}

// Parse returns the document root. The root is a tagless generic element.
// Raw HTML in the source is dropped.
func (p *Parser) Parse(source []byte) *Element {
	doc := p.md.Parser().Parse(text.NewReader(source))
	root := &Element{Kind: KindGeneric}
	c := converter{source: source}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		root.Append(c.convert(n)...)
	}
	return root
}

type converter struct {
	source []byte
}

func (c converter) children(n ast.Node) []*Element {
	var out []*Element
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		out = append(out, c.convert(ch)...)
	}
	return out
}

func (c converter) wrap(k Kind, tag string, n ast.Node) *Element {
	el := &Element{Kind: k, Tag: tag}
	return el.Append(c.children(n)...)
}

func (c converter) convert(n ast.Node) []*Element {
	switch n := n.(type) {
	case *ast.Heading:
		return []*Element{c.heading(n)}
	case *ast.Paragraph:
		return []*Element{c.wrap(KindParagraph, "p", n)}
	case *ast.TextBlock:
		// Tight list items: the text sits directly in the <li>.
		return c.children(n)
	case *ast.List:
		if n.IsOrdered() {
			el := c.wrap(KindOrderedList, "ol", n)
			if n.Start != 1 {
				el.SetAttr("start", strconv.Itoa(n.Start))
			}
			return []*Element{el}
		}
		return []*Element{c.wrap(KindUnorderedList, "ul", n)}
	case *ast.ListItem:
		return []*Element{c.wrap(KindListItem, "li", n)}
	case *ast.Blockquote:
		return []*Element{c.wrap(KindBlockquote, "blockquote", n)}
	case *ast.FencedCodeBlock:
		annotation := ""
		if lang := n.Language(c.source); len(lang) > 0 {
			annotation = "language-" + string(lang)
		}
		return []*Element{El(KindPre, FencedCode(annotation, c.lines(n)))}
	case *ast.CodeBlock:
		return []*Element{El(KindPre, FencedCode("", c.lines(n)))}
	case *ast.CodeSpan:
		return []*Element{{Kind: KindInlineCode, Text: c.plain(n)}}
	case *ast.ThematicBreak:
		return []*Element{{Kind: KindGeneric, Tag: "hr"}}
	case *ast.Emphasis:
		tag := "em"
		if n.Level == 2 {
			tag = "strong"
		}
		return []*Element{c.wrap(KindGeneric, tag, n)}
	case *ast.Link:
		el := c.wrap(KindLink, "a", n)
		el.SetAttr("href", string(n.Destination))
		if len(n.Title) > 0 {
			el.SetAttr("title", string(n.Title))
		}
		return []*Element{el}
	case *ast.AutoLink:
		href := string(n.URL(c.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		el := El(KindLink, Text(string(n.Label(c.source))))
		el.SetAttr("href", href)
		return []*Element{el}
	case *ast.Image:
		el := &Element{Kind: KindImage, Tag: "img"}
		el.SetAttr("src", string(n.Destination))
		if alt := c.plain(n); alt != "" {
			el.SetAttr("alt", alt)
		}
		if len(n.Title) > 0 {
			el.SetAttr("title", string(n.Title))
		}
		return []*Element{el}
	case *ast.Text:
		out := []*Element{Text(c.textValue(n))}
		switch {
		case n.HardLineBreak():
			out = append(out, &Element{Kind: KindGeneric, Tag: "br"})
		case n.SoftLineBreak():
			out[0].Text += "\n"
		}
		return out
	case *ast.String:
		return []*Element{Text(string(n.Value))}
	case *ast.HTMLBlock, *ast.RawHTML:
		return nil
	case *east.Table:
		return []*Element{c.wrap(KindGeneric, "table", n)}
	case *east.TableHeader:
		row := c.wrap(KindGeneric, "tr", n)
		return []*Element{El(KindGeneric, row).withTag("thead")}
	case *east.TableRow:
		return []*Element{c.wrap(KindGeneric, "tr", n)}
	case *east.TableCell:
		tag := "td"
		if _, ok := n.Parent().(*east.TableHeader); ok {
			tag = "th"
		}
		el := c.wrap(KindGeneric, tag, n)
		if n.Alignment != east.AlignNone {
			el.SetAttr("style", "text-align:"+n.Alignment.String())
		}
		return []*Element{el}
	case *east.Strikethrough:
		return []*Element{c.wrap(KindGeneric, "del", n)}
	case *east.TaskCheckBox:
		el := &Element{Kind: KindGeneric, Tag: "input"}
		el.SetAttr("type", "checkbox")
		el.SetAttr("disabled", "")
		if n.IsChecked {
			el.SetAttr("checked", "")
		}
		return []*Element{el}
	default:
		// Unrecognized construct: keep its content.
		return []*Element{c.wrap(KindGeneric, "", n)}
	}
}

func (c converter) heading(n *ast.Heading) *Element {
	var el *Element
	switch n.Level {
	case 1:
		el = c.wrap(KindHeading1, "h1", n)
	case 2:
		el = c.wrap(KindHeading2, "h2", n)
	case 3:
		el = c.wrap(KindHeading3, "h3", n)
	default:
		el = c.wrap(KindGeneric, "h"+strconv.Itoa(n.Level), n)
	}
	if id, ok := n.AttributeString("id"); ok {
		if b, ok := id.([]byte); ok {
			el.SetAttr("id", string(b))
		}
	}
	return el
}

// textValue resolves backslash escapes and entity references the way
// goldmark's own HTML writer does. Raw segments (code spans) are kept.
func (c converter) textValue(t *ast.Text) string {
	v := t.Segment.Value(c.source)
	if t.IsRaw() {
		return string(v)
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}

// lines joins the raw lines of a code block, trailing newline included.
func (c converter) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

// plain returns the text below n without markup.
func (c converter) plain(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(ch ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := ch.(type) {
		case *ast.Text:
			b.WriteString(c.textValue(t))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func (e *Element) withTag(tag string) *Element {
	e.Tag = tag
	return e
}
