package views

import (
	"golang.org/x/net/html"
)

// GradientScript is the path of the script driving Gradient components.
const GradientScript = "/public/gradient.js"

// Gradient renders the animated background. Each instance owns its hue loop:
// gradient.js starts it when the element is attached and stops it on
// pagehide, so no state leaks between pages or instances.
func Gradient(animate bool) *html.Node {
	state := "false"
	if animate {
		state = "true"
	}
	return el("div", at(
		"class", "fixed inset-0 -z-0 pointer-events-none overflow-hidden",
		"data-gradient", "",
		"data-animate", state,
		"aria-hidden", "true",
	),
		el("div", at(
			"class", "gradient-glow absolute inset-0 opacity-30 blur-[100px] transition-all duration-1000 ease-in-out",
			"style", "--hue: 0deg",
		)),
		el("div", cls("absolute inset-0 bg-black/90")),
		el("script", at("src", GradientScript, "defer", "")),
	)
}
