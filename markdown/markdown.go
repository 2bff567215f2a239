// Package markdown renders blog sources into styled markup.
//
// goldmark parses the source into an Element tree; a Renderer then applies a
// Registry of per-kind style rules. Code elements are dispatched on their
// language-<id> class annotation: annotated blocks are highlighted with
// chroma, everything else renders as inline code.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// ErrHTMLConversion indicates a markdown source could not be converted.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Pipeline parses and renders documents with a fixed style registry.
// It is safe for concurrent use.
type Pipeline struct {
	parser   *Parser
	renderer *Renderer
	feed     goldmark.Markdown
}

// New creates a Pipeline whose code blocks use opts.
func New(opts HighlightOptions) *Pipeline {
	h := NewHighlighter(opts)
	return &Pipeline{
		parser:   NewParser(),
		renderer: NewRenderer(NewRegistry(h)),
		feed: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(h.Options().Style),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(false), // feed readers get no stylesheet
					),
				),
			),
		),
	}
}

// Parse exposes the parse step.
func (p *Pipeline) Parse(source string) *Element {
	return p.parser.Parse([]byte(source))
}

// Render parses and renders source. goldmark has no context support, so
// cancellation is honored with a goroutine + select.
func (p *Pipeline) Render(ctx context.Context, source string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan *Node, 1)
	go func() {
		done <- p.renderer.Render(p.Parse(source))
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case n := <-done:
		return n, nil
	}
}

// RenderHTML renders source to an HTML fragment.
func (p *Pipeline) RenderHTML(ctx context.Context, source string) (string, error) {
	n, err := p.Render(ctx, source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := n.WriteHTML(&buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// Component returns a templ.Component that renders source.
func (p *Pipeline) Component(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n, err := p.Render(ctx, source)
		if err != nil {
			return err
		}
		return n.WriteHTML(w)
	})
}

// NodeComponent wraps an already rendered tree.
func NodeComponent(n *Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.WriteHTML(w)
	})
}

// FeedHTML converts source to plain goldmark HTML with inline-styled code,
// for feed readers that ignore the site stylesheet.
func (p *Pipeline) FeedHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := p.feed.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
