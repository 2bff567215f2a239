package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func newTestPipeline() *Pipeline {
	return New(DefaultHighlightOptions())
}

func mustDoc(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func renderSource(t *testing.T, p *Pipeline, source string) *Node {
	t.Helper()
	n, err := p.Render(context.Background(), source)
	if err != nil {
		t.Fatalf("Render(%q) failed: %v", source, err)
	}
	return n
}

func TestResolve(t *testing.T) {
	tests := []struct {
		annotation string
		expected   Dispatch
	}{
		{"language-go", HighlightedAs("go")},
		{"language-python", HighlightedAs("python")},
		{"hljs language-rust", HighlightedAs("rust")},
		{"language-ts extra", HighlightedAs("ts")},
		{"language-c++", HighlightedAs("c")},
		{"", Dispatch{Mode: Inline}},
		{"language-", Dispatch{Mode: Inline}},
		{"lang-go", Dispatch{Mode: Inline}},
		{"python", Dispatch{Mode: Inline}},
	}
	for _, tt := range tests {
		got := Resolve(tt.annotation)
		if got != tt.expected {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.annotation, got, tt.expected)
		}
	}
}

func TestHighlightedTextStripsOneTrailingNewline(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"print(1)\n", "print(1)"},
		{"print(1)", "print(1)"},
		{"a\n\n", "a\n"},
		{"\n", ""},
	}
	r := NewRenderer(nil)
	for _, tt := range tests {
		n := r.Render(FencedCode("language-python", tt.raw))
		if n.Code == nil {
			t.Fatalf("Render(%q) has no code info", tt.raw)
		}
		if n.Code.Text != tt.expected {
			t.Errorf("highlighted text for %q = %q, want %q", tt.raw, n.Code.Text, tt.expected)
		}
	}
}

func TestInlineTextUnchanged(t *testing.T) {
	r := NewRenderer(nil)
	n := r.Render(El(KindPre, FencedCode("", "x=1")))
	blocks := n.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	code := blocks[0]
	if code.Code == nil || code.Code.Dispatch.Mode != Inline {
		t.Fatalf("expected inline dispatch, got %+v", code.Code)
	}
	if code.Code.Text != "x=1" {
		t.Errorf("inline text = %q, want %q", code.Code.Text, "x=1")
	}
	want := `<code class="` + inlineCodeClass + `">x=1</code>`
	if got := n.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestImageWithoutAltUsesFallback(t *testing.T) {
	r := NewRenderer(nil)
	tests := []*Element{
		{Kind: KindImage, Attrs: map[string]string{"src": "/images/a.png"}},
		{Kind: KindImage, Attrs: map[string]string{"src": "/images/a.png", "alt": ""}},
		{Kind: KindImage},
	}
	for i, el := range tests {
		n := r.Render(el)
		alt, ok := n.Attr("alt")
		if !ok || alt != DefaultAlt {
			t.Errorf("case %d: alt = %q (%v), want %q", i, alt, ok, DefaultAlt)
		}
	}

	n := r.Render(&Element{Kind: KindImage, Attrs: map[string]string{"src": "/a.png", "alt": "Diagram"}})
	if alt, _ := n.Attr("alt"); alt != "Diagram" {
		t.Errorf("explicit alt = %q, want %q", alt, "Diagram")
	}
}

func TestLinkWithoutHrefUsesPlaceholder(t *testing.T) {
	r := NewRenderer(nil)
	tests := []struct {
		href     string
		expected string
	}{
		{"", "#"},
		{"   ", "#"},
		{"javascript:alert(1)", "#"},
		{"/blog/antigravity-guide/", "/blog/antigravity-guide/"},
		{"https://github.com/Sh0ckWaveZero", "https://github.com/Sh0ckWaveZero"},
		{"#section", "#section"},
	}
	for _, tt := range tests {
		el := El(KindLink, Text("label"))
		if tt.href != "" {
			el.SetAttr("href", tt.href)
		}
		n := r.Render(el)
		if got, _ := n.Attr("href"); got != tt.expected {
			t.Errorf("href for %q = %q, want %q", tt.href, got, tt.expected)
		}
	}

	n := r.Render(El(KindLink, Text("no attrs")))
	if got, _ := n.Attr("href"); got != DefaultHref {
		t.Errorf("link with nil attrs href = %q, want %q", got, DefaultHref)
	}
}

func TestUnknownKindPassesChildrenThrough(t *testing.T) {
	r := NewRenderer(nil)
	for _, k := range []Kind{Kind(99), Kind(-1), KindGeneric} {
		el := El(k, Text("one "), El(KindParagraph, Text("two")))
		n := r.Render(el)
		if !n.IsFragment() {
			t.Errorf("kind %v: expected fragment, got tag %q", k, n.Tag)
		}
		if len(n.Children) != 2 {
			t.Fatalf("kind %v: children = %d, want 2", k, len(n.Children))
		}
		if got := n.TextContent(); got != "one two" {
			t.Errorf("kind %v: text = %q, want %q", k, got, "one two")
		}
	}
}

func TestGenericKeepsDefaultTag(t *testing.T) {
	p := newTestPipeline()
	got := renderSource(t, p, "*soft* and **strong** and ~~gone~~").HTML()
	for _, want := range []string{"<em>soft</em>", "<strong>strong</strong>", "<del>gone</del>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestEndToEndHeadingParagraphCode(t *testing.T) {
	p := newTestPipeline()
	n := renderSource(t, p, "# Title\n\nBody text.\n\n```python\nprint(1)\n```\n")

	blocks := n.Blocks()
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %q", len(blocks), n.HTML())
	}
	if blocks[0].Kind != KindHeading1 || blocks[0].TextContent() != "Title" {
		t.Errorf("block 0 = %v %q, want Heading1 %q", blocks[0].Kind, blocks[0].TextContent(), "Title")
	}
	if blocks[1].Kind != KindParagraph || blocks[1].TextContent() != "Body text." {
		t.Errorf("block 1 = %v %q, want Paragraph %q", blocks[1].Kind, blocks[1].TextContent(), "Body text.")
	}
	code := blocks[2]
	if code.Kind != KindFencedCode || code.Code == nil {
		t.Fatalf("block 2 = %v, want FencedCode with code info", code.Kind)
	}
	if code.Code.Dispatch != HighlightedAs("python") {
		t.Errorf("dispatch = %+v, want highlighted python", code.Code.Dispatch)
	}
	if code.Code.Text != "print(1)" {
		t.Errorf("code text = %q, want %q", code.Code.Text, "print(1)")
	}

	doc := mustDoc(t, n.HTML())
	if doc.Find(`div[data-language="python"]`).Length() != 1 {
		t.Errorf("expected one highlighted python block: %q", n.HTML())
	}
	if doc.Find("pre pre").Length() != 0 {
		t.Errorf("highlighted block should not be double wrapped: %q", n.HTML())
	}
}

func TestEndToEndFenceWithoutLanguage(t *testing.T) {
	p := newTestPipeline()
	n := renderSource(t, p, "```\nx=1\n```")
	blocks := n.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Code == nil || blocks[0].Code.Dispatch.Highlighted() {
		t.Fatalf("expected inline path, got %+v", blocks[0].Code)
	}
	// Raw text is left as the parser produced it.
	if blocks[0].Code.Text != "x=1\n" {
		t.Errorf("inline text = %q, want %q", blocks[0].Code.Text, "x=1\n")
	}
	if blocks[0].Tag != "code" {
		t.Errorf("inline tag = %q, want code", blocks[0].Tag)
	}
}

func TestUnknownLanguageStillRenders(t *testing.T) {
	p := newTestPipeline()
	n := renderSource(t, p, "```klingon\nqapla batlh\n```")
	code := n.Blocks()[0]
	if code.Code == nil || code.Code.Dispatch != HighlightedAs("klingon") {
		t.Fatalf("expected highlighted klingon dispatch, got %+v", code.Code)
	}
	if !strings.Contains(n.HTML(), "qapla batlh") {
		t.Errorf("raw text missing from output: %q", n.HTML())
	}
}

func TestEmptyCodeBlock(t *testing.T) {
	r := NewRenderer(nil)
	for _, annotation := range []string{"language-go", ""} {
		n := r.Render(FencedCode(annotation, ""))
		if n.Code == nil {
			t.Fatalf("annotation %q: missing code info", annotation)
		}
		if n.Code.Text != "" {
			t.Errorf("annotation %q: text = %q, want empty", annotation, n.Code.Text)
		}
		if n.Tag == "" {
			t.Errorf("annotation %q: expected a styled element", annotation)
		}
	}
}

func TestPreWrapperIsIdentity(t *testing.T) {
	r := NewRenderer(nil)
	raw := `<div class="highlighted">done</div>`
	n := r.Render(El(KindPre, &Element{Kind: KindRaw, Text: raw}))
	if got := n.HTML(); got != raw {
		t.Errorf("HTML() = %q, want %q", got, raw)
	}
}

func TestHeadingWeightTiers(t *testing.T) {
	p := newTestPipeline()
	doc := mustDoc(t, renderSource(t, p, "# One\n\n## Two\n\n### Three\n\n#### Four").HTML())
	tests := []struct {
		selector string
		class    string
	}{
		{"h1", "font-extrabold"},
		{"h2", "font-bold"},
		{"h3", "font-semibold"},
	}
	for _, tt := range tests {
		sel := doc.Find(tt.selector)
		if sel.Length() != 1 || !sel.HasClass(tt.class) {
			t.Errorf("%s should carry %s", tt.selector, tt.class)
		}
		if _, ok := sel.Attr("id"); !ok {
			t.Errorf("%s should have an id for anchors", tt.selector)
		}
	}
	if h4 := doc.Find("h4"); h4.Length() != 1 || h4.Text() != "Four" {
		t.Errorf("h4 should pass through unchanged")
	}
}

func TestStructuralContainers(t *testing.T) {
	p := newTestPipeline()
	source := "- a\n- b\n\n1. one\n2. two\n\n> quoted\n\nRun `go test` now."
	doc := mustDoc(t, renderSource(t, p, source).HTML())

	if got := doc.Find("ul.list-disc > li.pl-2").Length(); got != 2 {
		t.Errorf("ul items = %d, want 2", got)
	}
	if got := doc.Find("ol.list-decimal > li").Length(); got != 2 {
		t.Errorf("ol items = %d, want 2", got)
	}
	if got := strings.TrimSpace(doc.Find("blockquote p").Text()); got != "quoted" {
		t.Errorf("blockquote text = %q, want %q", got, "quoted")
	}
	code := doc.Find("p code")
	if code.Text() != "go test" || !code.HasClass("font-mono") {
		t.Errorf("inline code = %q, want styled %q", code.Text(), "go test")
	}
}

func TestOrderedListStart(t *testing.T) {
	p := newTestPipeline()
	doc := mustDoc(t, renderSource(t, p, "3. three\n4. four").HTML())
	if start, _ := doc.Find("ol").Attr("start"); start != "3" {
		t.Errorf("ol start = %q, want 3", start)
	}
}

func TestMarkdownLinksAndImages(t *testing.T) {
	p := newTestPipeline()
	source := "[site](https://example.com/a_b) and [local](/blog/) and ![](/img.png) and ![Hero](/hero.png)"
	doc := mustDoc(t, renderSource(t, p, source).HTML())

	ext := doc.Find(`a[href="https://example.com/a_b"]`)
	if ext.Length() != 1 {
		t.Fatalf("external link missing")
	}
	if rel, _ := ext.Attr("rel"); rel != "noopener noreferrer" {
		t.Errorf("external rel = %q", rel)
	}
	if _, ok := doc.Find(`a[href="/blog/"]`).Attr("rel"); ok {
		t.Errorf("internal link should not have rel")
	}
	imgs := doc.Find("img")
	if imgs.Length() != 2 {
		t.Fatalf("img count = %d, want 2", imgs.Length())
	}
	if alt, _ := imgs.Eq(0).Attr("alt"); alt != DefaultAlt {
		t.Errorf("first alt = %q, want %q", alt, DefaultAlt)
	}
	if alt, _ := imgs.Eq(1).Attr("alt"); alt != "Hero" {
		t.Errorf("second alt = %q, want %q", alt, "Hero")
	}
}

func TestRawHTMLIsDropped(t *testing.T) {
	p := newTestPipeline()
	got := renderSource(t, p, "<script>alert(1)</script>\n\ntext <b>inline</b>").HTML()
	if strings.Contains(got, "<script") || strings.Contains(got, "<b>") {
		t.Errorf("raw html leaked: %q", got)
	}
}

func TestTextIsEscaped(t *testing.T) {
	p := newTestPipeline()
	got := renderSource(t, p, "a &lt; b and `<tag>`").HTML()
	if strings.Contains(got, "<tag>") {
		t.Errorf("inline code should be escaped: %q", got)
	}
}

func TestTablePassesThrough(t *testing.T) {
	p := newTestPipeline()
	doc := mustDoc(t, renderSource(t, p, "| A | B |\n|---|:-:|\n| 1 | 2 |").HTML())
	if doc.Find("table thead th").Length() != 2 {
		t.Errorf("expected 2 header cells")
	}
	if doc.Find("table td").Length() != 2 {
		t.Errorf("expected 2 body cells")
	}
}

func TestRenderHonorsCancelledContext(t *testing.T) {
	p := newTestPipeline()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Render(ctx, "# x"); err != context.Canceled {
		t.Errorf("Render with cancelled context err = %v, want context.Canceled", err)
	}
}

func TestComponentWritesMarkup(t *testing.T) {
	p := newTestPipeline()
	var b strings.Builder
	if err := p.Component("## Hello").Render(context.Background(), &b); err != nil {
		t.Fatalf("Component render failed: %v", err)
	}
	if !strings.Contains(b.String(), "<h2") || !strings.Contains(b.String(), "Hello") {
		t.Errorf("component output = %q", b.String())
	}
}

func TestNodeComponentReusesTree(t *testing.T) {
	n := renderSource(t, newTestPipeline(), "Hello *there*")
	c := NodeComponent(n)
	var first, second strings.Builder
	if err := c.Render(context.Background(), &first); err != nil {
		t.Fatal(err)
	}
	if err := c.Render(context.Background(), &second); err != nil {
		t.Fatal(err)
	}
	if first.String() != n.HTML() || second.String() != first.String() {
		t.Errorf("outputs differ: %q / %q / %q", first.String(), second.String(), n.HTML())
	}
}

func TestWalkSkipsChildrenWhenAsked(t *testing.T) {
	n := renderSource(t, newTestPipeline(), "# Title\n\n- a\n- b\n")

	var kinds []Kind
	n.Walk(func(c *Node) bool {
		kinds = append(kinds, c.Kind)
		return c.Kind != KindUnorderedList
	})
	for _, k := range kinds {
		if k == KindListItem {
			t.Fatal("visited a list item below a skipped list")
		}
	}

	items := 0
	n.Walk(func(c *Node) bool {
		if c.Kind == KindListItem {
			items++
		}
		return true
	})
	if items != 2 {
		t.Errorf("visited %d list items, want 2", items)
	}
}

func TestFeedHTMLHighlightsInline(t *testing.T) {
	p := newTestPipeline()
	got, err := p.FeedHTML("# T\n\n```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("FeedHTML failed: %v", err)
	}
	for _, want := range []string{"<h1", "<pre", "style="} {
		if !strings.Contains(got, want) {
			t.Errorf("FeedHTML output missing %q: %q", want, got)
		}
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/images/a.png", "/images/a.png"},
		{"#top", "#top"},
		{"https://example.com", "https://example.com"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html;base64,xx", ""},
		{"relative/path.png", "relative/path.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRegistryHasOverridesOnly(t *testing.T) {
	reg := NewRegistry(nil)
	for _, k := range []Kind{KindHeading1, KindHeading2, KindHeading3, KindParagraph, KindUnorderedList,
		KindOrderedList, KindListItem, KindBlockquote, KindInlineCode, KindFencedCode, KindImage, KindLink} {
		if !reg.Has(k) {
			t.Errorf("registry missing rule for %v", k)
		}
	}
	if reg.Has(KindGeneric) || reg.Has(Kind(42)) {
		t.Errorf("generic and unknown kinds should not report dedicated rules")
	}
}
