package views

import (
	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// NotFound renders the 404 page body.
func NotFound() templ.Component {
	return errorPage("404", "ไม่พบหน้าที่คุณต้องการ", "The page you were looking for does not exist.")
}

// ServerError renders the 500 page body.
func ServerError() templ.Component {
	return errorPage("500", "เกิดข้อผิดพลาด", "Something went wrong on our side. Please try again later.")
}

func errorPage(code, title, detail string) templ.Component {
	return static(func() *html.Node {
		return el("section", at("class", "max-w-xl mx-auto py-32 px-6 text-center", "data-status", code),
			el("p", cls("font-mono text-7xl font-bold text-gray-700"), txt(code)),
			el("h1", cls("text-2xl font-semibold mt-6"), txt(title)),
			el("p", cls("text-gray-400 mt-2"), txt(detail)),
			el("a", at("href", "/", "class", "inline-block mt-8 px-6 py-3 rounded-xl bg-white/10 border border-white/20 hover:bg-white/20"), txt("Home")),
		)
	})
}
