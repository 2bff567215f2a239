package content

import (
	"embed"
)

//go:embed builtin/*.md
var builtinFS embed.FS

// Default returns the site's built-in post list.
func Default() *Static {
	body, err := builtinFS.ReadFile("builtin/antigravity-guide.md")
	if err != nil {
		panic(err)
	}
	s, err := NewStatic(Post{
		PostSummary: PostSummary{
			Slug:        "antigravity-guide",
			Title:       "คู่มือการใช้งาน Antigravity AI",
			Description: "เรียนรู้วิธีการใช้งาน Antigravity AI เพื่อเพิ่มประสิทธิภาพการทำงานของคุณ พร้อมเทคนิคการเขียนโค้ดและ SEO ขั้นเทพ",
			ImagePath:   "/images/antigravity-hero.png",
			PublishDate: mustDate("2026-01-31"),
		},
		Body: string(body),
	})
	if err != nil {
		panic(err)
	}
	return s
}
