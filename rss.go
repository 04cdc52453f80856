package folio

import (
	"encoding/xml"
	"mime"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	Category    string        `xml:"category,omitempty"`
	GUID        string        `xml:"guid"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int    `xml:"length,attr"`
}

// renderRSS lists projects as feed items. Projects carry a year rather than a
// publication date, so items have no pubDate; the landscape cover is attached
// as an enclosure.
func (a *App) renderRSS(c echo.Context, projects []content.Project) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		link := BuildURL(base, "projects", p.Slug)
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Summary(),
			Category:    p.Category,
			GUID:        link,
		}
		if cover := a.Images.Resolve(p.CoverImage, false); cover.Source != imagery.SourcePlaceholder {
			item.Enclosure = &rssEnclosure{
				URL:  AbsoluteURL(base, cover.URL),
				Type: mime.TypeByExtension(path.Ext(cover.Path)),
			}
		}
		items = append(items, item)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
