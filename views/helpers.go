package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/github"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if (len(pathSegments) > 0 || u.Path == "") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AbsoluteURL resolves a site path against base without adding a trailing
// slash. Absolute URLs are returned unchanged.
func AbsoluteURL(base, p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

// CardWidth is the thumbnail width requested for blog cards.
const CardWidth = 640

// ThumbnailURL maps a local image path to its resized variant. Remote and
// empty paths are returned unchanged.
func ThumbnailURL(src string, width int) string {
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return src
	}
	return "/img/" + strconv.Itoa(width) + src
}

// HeroStats turns fetched statistics into the four status boxes.
func HeroStats(st github.Stats) []StatBox {
	return []StatBox{
		{Label: "Repos", Value: strconv.Itoa(st.PublicRepoCount), Color: "text-green-400"},
		{Label: "Followers", Value: strconv.Itoa(st.FollowerCount), Color: "text-purple-400"},
		{Label: "Experience", Value: "5+ Yrs", Color: "text-blue-400"},
		{Label: "Status", Value: "Online", Color: "text-orange-400"},
	}
}

func githubProfile(user string) string {
	if user == "" {
		user = github.DefaultUser
	}
	return "https://github.com/" + url.PathEscape(user)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post content.PostSummary) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Description,
		"url":         postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if d := post.Date(); d != "" {
		data["datePublished"] = d
	}
	if post.ImagePath != "" {
		data["image"] = AbsoluteURL(cfg.URL, post.ImagePath)
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
