package markdown

// Renderer turns an Element tree into a markup tree using a Registry.
type Renderer struct {
	registry *Registry
}

// NewRenderer returns a Renderer over reg. A nil registry uses the defaults.
func NewRenderer(reg *Registry) *Renderer {
	if reg == nil {
		reg = NewRegistry(nil)
	}
	return &Renderer{registry: reg}
}

// Render walks root depth-first, keeping sibling order, and applies the
// registry to every element. It never fails: unknown kinds pass through.
func (r *Renderer) Render(root *Element) *Node {
	if root == nil {
		return &Node{}
	}
	return r.render(root)
}

func (r *Renderer) render(el *Element) *Node {
	switch el.Kind {
	case KindText:
		return &Node{Kind: KindText, Text: el.Text}
	case KindRaw:
		return RawNode(el.Text)
	}

	children := make([]*Node, 0, len(el.Children))
	for _, c := range el.Children {
		if c == nil {
			continue
		}
		children = append(children, r.render(c))
	}
	return r.registry.Lookup(el.Kind).render(el, children)
}
