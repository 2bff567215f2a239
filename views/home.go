package views

import (
	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/sh0ckwavezero/folio/github"
)

// HomeData is everything the landing page shows.
type HomeData struct {
	Profile Profile
	Stats   github.Stats
	Skills  []Skill
}

// Home renders the landing page body: hero with status card, then the
// technology stack.
func Home(site SiteConfig, d HomeData) templ.Component {
	return static(func() *html.Node {
		return el("div", cls("w-full"),
			Hero(d.Profile, HeroStats(d.Stats), githubProfile(site.GitHubUser)),
			TechStack(d.Skills),
		)
	})
}

// Hero renders the biography block and the floating status card.
func Hero(p Profile, stats []StatBox, githubURL string) *html.Node {
	roles := el("div", cls("text-lg text-gray-300/80 space-y-1 font-mono"))
	for _, r := range p.Roles {
		roles.AppendChild(el("p", nil, txt(r)))
	}

	grid := el("div", cls("grid grid-cols-2 gap-4"))
	for _, s := range stats {
		grid.AppendChild(statBox(s))
	}

	return el("section", at("id", "hero", "class", "relative z-10 w-full max-w-5xl mx-auto pt-20 pb-32 px-4 flex flex-col md:flex-row items-center justify-between gap-12"),
		el("div", cls("flex-1 text-center md:text-left space-y-6"),
			el("div", cls("inline-block px-3 py-1 rounded-full bg-blue-500/10 border border-blue-500/20 text-blue-400 text-xs font-mono mb-4"), txt(p.Greeting)),
			el("h1", cls("text-6xl md:text-8xl font-bold tracking-tighter"),
				el("span", cls("bg-clip-text text-transparent bg-gradient-to-r from-blue-400 via-purple-500 to-pink-500"), txt(p.Name)),
			),
			el("p", cls("text-xl md:text-2xl text-gray-400 font-light tracking-wide"), txt("("+p.Handle+")")),
			roles,
			el("div", cls("flex flex-col sm:flex-row gap-4 pt-6 justify-center md:justify-start"),
				el("a", at("href", "/blog/", "class", "px-6 py-3 rounded-xl bg-white/10 border border-white/20 hover:bg-white/20 transition-all text-white flex items-center gap-2"),
					el("span", nil, txt("Read Blog")),
				),
				el("a", at("href", githubURL, "target", "_blank", "rel", "noopener noreferrer",
					"class", "px-6 py-3 rounded-xl bg-black/40 border border-white/10 hover:border-white/30 transition-all text-gray-300 flex items-center gap-2"),
					el("span", nil, txt("GitHub")),
				),
			),
		),
		el("div", cls("relative"),
			el("div", at("id", "status-card", "class", "w-80 p-6 rounded-3xl bg-slate-900/60 border border-white/10 shadow-2xl relative overflow-hidden"),
				el("div", cls("relative z-10 space-y-6"),
					el("div", cls("flex items-center justify-between"),
						el("div", cls("h-3 w-3 rounded-full bg-red-500")),
						el("div", cls("h-3 w-3 rounded-full bg-yellow-500")),
						el("div", cls("h-3 w-3 rounded-full bg-green-500")),
					),
					el("h3", cls("text-gray-400 font-mono text-xs uppercase tracking-[0.2em] border-b border-white/5 pb-2"), txt("System Status")),
					grid,
				),
			),
		),
	)
}

func statBox(s StatBox) *html.Node {
	return el("div", at("class", "stat-box bg-black/20 rounded-lg p-3 border border-white/5", "data-label", s.Label),
		el("p", cls("text-gray-500 text-[10px] uppercase font-bold mb-1"), txt(s.Label)),
		el("p", cls("stat-value font-mono font-bold text-lg "+s.Color), txt(s.Value)),
	)
}

// TechStack renders one card per skill category.
func TechStack(skills []Skill) *html.Node {
	grid := el("div", cls("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"))
	for _, s := range skills {
		items := el("div", cls("flex flex-wrap gap-2"))
		for _, tech := range s.Items {
			items.AppendChild(el("span", cls("tech px-2.5 py-1 rounded-md text-xs font-medium border "+s.Color+" "+s.Bg+" "+s.Border), txt(tech)))
		}
		grid.AppendChild(el("div", at("class", "skill p-6 rounded-2xl bg-white/[0.03] border border-white/[0.05] hover:bg-white/[0.06] transition-all duration-300", "data-category", s.Category),
			el("h3", cls("text-lg font-semibold mb-4 "+s.Color), txt(s.Category)),
			items,
		))
	}
	return el("section", at("id", "tech-stack", "class", "relative z-10 w-full max-w-6xl mx-auto px-4 py-20"),
		el("div", cls("text-center mb-16"),
			el("h2", cls("text-3xl md:text-5xl font-bold bg-clip-text text-transparent bg-gradient-to-r from-gray-100 to-gray-500 mb-4"), txt("Technologies")),
			el("p", cls("text-gray-400 max-w-2xl mx-auto"), txt("The arsenal I use to craft digital experiences.")),
		),
		grid,
	)
}
