package folio

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
)

const (
	featuredCount = 6
	relatedCount  = 3
)

func (a *App) handleHome(c echo.Context) error {
	featured := content.SortProjects(a.Projects.All(), "year")
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	cards := a.cards(featured)
	var preload imagery.PreloadSet
	if len(cards) > 0 {
		preload.Add(cards[0].Cover.Landscape)
		preload.Add(cards[0].Cover.Portrait)
	}
	return Render(c, a.Views.Home(a.Config, cards, preload.URLs()))
}

func (a *App) handleProjects(c echo.Context) error {
	category := c.QueryParam("category")
	sortBy := c.QueryParam("sort")
	all := a.Projects.All()
	projects := content.SortProjects(content.FilterByCategory(all, category), sortBy)
	cards := a.cards(projects)
	if isHTMX(c) && c.QueryParam("partial") == "grid" {
		return Render(c, a.Views.ProjectsGrid(cards))
	}
	return Render(c, a.Views.Projects(a.Config, cards, content.Categories(all), category, sortBy))
}

func (a *App) handleProject(c echo.Context) error {
	slug := c.Param("slug")
	project, err := a.Projects.Get(slug)
	a.Metrics.IncLookup(err == nil)
	if err != nil {
		if errors.Is(err, content.ErrProjectNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		}
		return err
	}
	return Render(c, a.Views.Project(a.Config, a.projectPage(project)))
}

func (a *App) handleFAQ(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items := a.FAQ.Search(query)
	if isHTMX(c) && c.QueryParam("partial") == "results" {
		return Render(c, a.Views.FAQResults(items, query))
	}
	return Render(c, a.Views.FAQ(a.Config, items, a.FAQ.Categories(), query))
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Projects.All())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, content.SortProjects(a.Projects.All(), "year"))
}

// resolve resolves a logical image for both orientations and counts the
// outcome.
func (a *App) resolve(name string) imagery.Pair {
	pair := a.Images.ResolveBoth(name)
	a.Metrics.IncResolution(string(pair.Portrait.Source))
	a.Metrics.IncResolution(string(pair.Landscape.Source))
	return pair
}

func (a *App) cards(projects []content.Project) []ProjectCard {
	out := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectCard{Project: p, Cover: a.resolve(p.CoverImage)})
	}
	return out
}

func (a *App) images(entries []content.ProjectImage) []ProjectImage {
	out := make([]ProjectImage, 0, len(entries))
	for _, e := range entries {
		out = append(out, ProjectImage{
			Name:    e.Image,
			Caption: e.Caption,
			PDF:     e.PDF,
			Image:   a.resolve(e.Image),
		})
	}
	return out
}

// projectPage resolves every image of a project. The cover and the first
// gallery image are preloaded.
func (a *App) projectPage(p content.Project) ProjectPage {
	page := ProjectPage{
		Project:    p,
		Cover:      a.resolve(p.CoverImage),
		Gallery:    a.images(p.Gallery),
		FloorPlans: a.images(p.FloorPlans),
		Related:    a.cards(content.Related(p, a.Projects.All(), relatedCount)),
	}
	var preload imagery.PreloadSet
	preload.Add(page.Cover.Landscape)
	preload.Add(page.Cover.Portrait)
	if len(page.Gallery) > 0 {
		preload.Add(page.Gallery[0].Image.Landscape)
	}
	page.Preload = preload.URLs()

	page.Meta = PageMeta{
		Title:       p.Title + " | " + a.Config.Name,
		Description: p.Summary(),
		URL:         BuildURL(a.Config.URL, "projects", p.Slug),
		OGType:      "article",
		Image:       a.Config.URL + page.Cover.Landscape.URL,
	}
	return page
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !isAPI(c) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		if isAPI(c) {
			_ = c.JSON(code, apiError{Error: http.StatusText(code)})
			return
		}
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}
