package views

// SiteConfig holds site-wide settings. Every handler passes this to views so
// nothing is hardcoded.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
	Lang        string
	GitHubUser  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// Profile is the landing page hero.
type Profile struct {
	Name     string
	Handle   string
	Greeting string
	Roles    []string
}

// StatBox is one cell of the hero status card.
type StatBox struct {
	Label string
	Value string
	Color string
}

// Skill is one technology category.
type Skill struct {
	Category string
	Color    string
	Bg       string
	Border   string
	Items    []string
}

// DefaultProfile is the site owner's hero content.
var DefaultProfile = Profile{
	Name:     "MidSeeLee",
	Handle:   "Sh0ckWaveZero",
	Greeting: "Welcome to my digital space",
	Roles:    []string{"Full Stack Developer </>", "Creative Builder 🚀"},
}

// DefaultSkills is the technology stack section.
var DefaultSkills = []Skill{
	{Category: "Frontend", Color: "text-blue-400", Bg: "bg-blue-500/10", Border: "border-blue-500/20",
		Items: []string{"React", "Next.js", "Angular", "TailwindCSS", "Framer Motion", "Three.js"}},
	{Category: "Backend", Color: "text-green-400", Bg: "bg-green-500/10", Border: "border-green-500/20",
		Items: []string{"Node.js", "NestJS", "Express", "Python", "Go", "Docker"}},
	{Category: "Database", Color: "text-orange-400", Bg: "bg-orange-500/10", Border: "border-orange-500/20",
		Items: []string{"PostgreSQL", "MongoDB", "Prisma", "Redis", "Supabase"}},
	{Category: "Mobile & Tools", Color: "text-purple-400", Bg: "bg-purple-500/10", Border: "border-purple-500/20",
		Items: []string{"Flutter", "React Native", "Git", "Figma", "Vercel"}},
}
