package folio

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sh0ckwavezero/folio/content"
	"github.com/sh0ckwavezero/folio/views"
)

type rssXML struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	Content     cdata   `xml:"content:encoded"`
	PubDate     string  `xml:"pubDate,omitempty"`
	GUID        string  `xml:"guid"`
	Enclosure   *rssEnc `xml:"enclosure,omitempty"`
}

type rssEnc struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

type cdata struct {
	Value string `xml:",cdata"`
}

func (a *App) renderRSS(c echo.Context, posts []content.PostSummary) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	var latest time.Time
	for _, p := range posts {
		postURL := views.BuildURL(base, "blog", p.Slug)
		item := rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			GUID:        postURL,
		}
		if !p.PublishDate.IsZero() {
			item.PubDate = p.PublishDate.Format(time.RFC1123Z)
			if p.PublishDate.After(latest) {
				latest = p.PublishDate
			}
		}
		if p.ImagePath != "" {
			item.Enclosure = &rssEnc{URL: views.AbsoluteURL(base, p.ImagePath), Type: imageMIME(p.ImagePath)}
		}
		if full, err := a.Cache.GetPost(p.Slug); err == nil {
			body, err := a.Pipeline.FeedHTML(full.Body)
			if err != nil {
				c.Logger().Warnf("feed body for %s: %v", p.Slug, err)
			} else {
				item.Content = cdata{Value: body}
			}
		}
		items = append(items, item)
	}
	ch := rssChannel{
		Title:       a.Config.Name,
		Link:        views.BuildURL(base),
		Description: a.Config.Description,
		Language:    a.Config.Lang,
		Items:       items,
	}
	if !latest.IsZero() {
		ch.LastBuildDate = latest.Format(time.RFC1123Z)
	}
	feed := rssXML{
		Version:   "2.0",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel:   ch,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
