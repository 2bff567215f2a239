package views

import (
	"context"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/sh0ckwavezero/folio/content"
)

// BlogIndex renders one card per post, in the given order.
func BlogIndex(posts []content.PostSummary) templ.Component {
	return static(func() *html.Node {
		grid := el("div", at("id", "posts", "class", "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"))
		for _, p := range posts {
			grid.AppendChild(PostCard(p))
		}
		if len(posts) == 0 {
			grid.AppendChild(el("p", cls("text-gray-500"), txt("ยังไม่มีบทความ")))
		}
		return el("div", cls("max-w-5xl mx-auto py-12 px-6"),
			el("header", cls("mb-12 text-center"),
				el("h1", cls("text-4xl font-bold mb-4"), txt("Blog")),
				el("p", cls("text-xl text-gray-400"), txt("บทความล่าสุด")),
			),
			grid,
		)
	})
}

// PostCard links to a post. The card is keyed by slug through data-slug.
func PostCard(p content.PostSummary) *html.Node {
	card := el("a", at(
		"href", p.Link(),
		"data-slug", p.Slug,
		"class", "post-card group block border border-gray-800 rounded-2xl overflow-hidden hover:border-gray-600 transition-colors bg-white/5",
	))
	if p.ImagePath != "" {
		card.AppendChild(el("div", cls("relative aspect-video w-full"),
			el("img", at(
				"src", ThumbnailURL(p.ImagePath, CardWidth),
				"alt", p.Title,
				"loading", "lazy",
				"class", "w-full h-full object-cover group-hover:scale-105 transition-transform duration-300",
			)),
		))
	}
	body := el("div", cls("p-6"))
	if d := p.Date(); d != "" {
		body.AppendChild(el("time", at("datetime", d, "class", "block text-sm text-gray-500 mb-2"), txt(d)))
	}
	body.AppendChild(el("h2", cls("text-xl font-semibold mb-2 group-hover:text-blue-400 transition-colors"), txt(p.Title)))
	if p.Description != "" {
		body.AppendChild(el("p", cls("text-gray-400 line-clamp-2"), txt(p.Description)))
	}
	card.AppendChild(body)
	return card
}

// Post renders an article page around the already styled body.
func Post(p content.PostSummary, body templ.Component) templ.Component {
	return component(func(ctx context.Context) (*html.Node, error) {
		inner, err := embed(ctx, body)
		if err != nil {
			return nil, err
		}
		header := el("header", cls("mb-10"),
			el("a", at("href", "/blog/", "class", "text-sm text-gray-500 hover:text-gray-300"), txt("← Blog")),
			el("h1", cls("text-4xl md:text-5xl font-extrabold mt-4 mb-4"), txt(p.Title)),
		)
		if d := p.Date(); d != "" {
			header.AppendChild(el("time", at("datetime", d, "class", "text-sm text-gray-500"), txt(d)))
		}
		if p.Description != "" {
			header.AppendChild(el("p", cls("text-lg text-gray-400 mt-4"), txt(p.Description)))
		}
		if p.ImagePath != "" {
			header.AppendChild(el("img", at("src", p.ImagePath, "alt", p.Title, "class", "rounded-2xl mt-8 w-full")))
		}
		return el("article", at("class", "max-w-3xl mx-auto py-12 px-6", "data-slug", p.Slug),
			header,
			el("div", cls("prose prose-invert"), inner),
		), nil
	})
}
