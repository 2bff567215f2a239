package folio

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/markdown"
	"github.com/sh0ckwavezero/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	site := a.Config.view()
	stats := a.Stats.Stats(c.Request().Context())
	meta := views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         views.BuildURL(a.Config.URL),
		OGType:      "website",
	}
	body := a.Views.Home(site, views.HomeData{
		Profile: views.DefaultProfile,
		Stats:   stats,
		Skills:  views.DefaultSkills,
	})
	return a.renderPage(c, http.StatusOK, meta, views.WebsiteJsonLD(site), body)
}

func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:       "Blog",
		Description: "รวมบทความที่น่าสนใจเกี่ยวกับการเขียนโปรแกรมและ AI",
		URL:         views.BuildURL(a.Config.URL, "blog"),
		OGType:      "website",
	}
	return a.renderPage(c, http.StatusOK, meta, "", a.Views.BlogIndex(posts))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if errors.Is(err, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	body, err := a.Cache.Rendered(c.Request().Context(), post)
	if err != nil {
		return err
	}
	meta := views.PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         views.BuildURL(a.Config.URL, "blog", post.Slug),
		OGType:      "article",
		Image:       post.ImagePath,
	}
	jsonLD := views.BlogPostingJsonLD(a.Config.view(), post.PostSummary)
	return a.renderPage(c, http.StatusOK, meta, jsonLD, a.Views.Post(post.PostSummary, markdown.NodeComponent(body)))
}

func (a *App) handleStats(c echo.Context) error {
	st := a.Stats.Stats(c.Request().Context())
	return c.JSON(http.StatusOK, st)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	p := filepath.Join(a.staticDir, "robots.txt")
	if _, err := os.Stat(p); err == nil {
		return c.File(p)
	}
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\nSitemap: "+views.AbsoluteURL(a.Config.URL, "sitemap.xml")+"\n")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderPage(c, http.StatusNotFound, views.PageMeta{Title: "404"}, "", a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = a.renderPage(c, code, views.PageMeta{Title: "500"}, "", a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
