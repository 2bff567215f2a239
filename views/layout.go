package views

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

const bodyClass = "min-h-screen w-full relative overflow-x-hidden bg-black text-white font-sans selection:bg-purple-500/30"

// Layout wraps body in the full HTML document. jsonLD may be empty.
func Layout(site SiteConfig, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(ctx context.Context) (*html.Node, error) {
		inner, err := embed(ctx, body)
		if err != nil {
			return nil, err
		}
		lang := site.Lang
		if lang == "" {
			lang = "th"
		}
		doc := &html.Node{Type: html.DocumentNode}
		doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
		doc.AppendChild(el("html", at("lang", lang),
			head(site, meta, jsonLD),
			el("body", cls(bodyClass),
				Gradient(true),
				el("div", cls("relative z-10 w-full"),
					nav(site),
					el("main", nil, inner),
					footer(site),
				),
			),
		))
		return doc, nil
	})
}

func head(site SiteConfig, meta PageMeta, jsonLD string) *html.Node {
	title := site.Name
	if meta.Title != "" && meta.Title != site.Name {
		title = meta.Title + " | " + site.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	h := el("head", nil,
		el("meta", at("charset", "utf-8")),
		el("meta", at("name", "viewport", "content", "width=device-width, initial-scale=1")),
		el("title", nil, txt(title)),
		el("meta", at("name", "description", "content", desc)),
		el("meta", at("property", "og:title", "content", title)),
		el("meta", at("property", "og:description", "content", desc)),
		el("meta", at("property", "og:type", "content", ogType)),
		el("link", at("rel", "alternate", "type", "application/rss+xml", "title", site.Name, "href", "/feed.xml")),
		el("link", at("rel", "stylesheet", "href", "/public/site.css")),
	)
	if meta.URL != "" {
		h.AppendChild(el("link", at("rel", "canonical", "href", meta.URL)))
		h.AppendChild(el("meta", at("property", "og:url", "content", meta.URL)))
	}
	if meta.Image != "" {
		h.AppendChild(el("meta", at("property", "og:image", "content", AbsoluteURL(site.URL, meta.Image))))
	}
	if jsonLD != "" {
		h.AppendChild(el("script", at("type", "application/ld+json"), raw(jsonLD)))
	}
	return h
}

func nav(site SiteConfig) *html.Node {
	return el("nav", cls("w-full max-w-5xl mx-auto px-4 py-6 flex items-center justify-between text-sm"),
		el("a", at("href", "/", "class", "font-mono font-bold text-gray-200 hover:text-white"), txt(site.Name)),
		el("div", cls("flex gap-6 text-gray-400"),
			el("a", at("href", "/", "class", "hover:text-white"), txt("Home")),
			el("a", at("href", "/blog/", "class", "hover:text-white"), txt("Blog")),
		),
	)
}

func footer(site SiteConfig) *html.Node {
	owner := site.Author
	if owner == "" {
		owner = site.Name
	}
	return el("footer", cls("w-full text-center py-8 text-gray-600 text-sm border-t border-white/5 mt-20"),
		el("p", nil, txt("© "+strconv.Itoa(time.Now().Year())+" "+owner+". Built with Go & templ.")),
	)
}
