package folio

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
)

type apiError struct {
	Error string `json:"error"`
}

type fallbackResponse struct {
	Next  *string  `json:"next"`
	Chain []string `json:"chain"`
}

func (a *App) handleAPIProjects(c echo.Context) error {
	projects := content.FilterByCategory(a.Projects.All(), c.QueryParam("category"))
	projects = content.SortProjects(projects, c.QueryParam("sort"))
	if projects == nil {
		projects = []content.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

func (a *App) handleAPIProject(c echo.Context) error {
	project, err := a.Projects.Get(c.Param("slug"))
	a.Metrics.IncLookup(err == nil)
	if err != nil {
		if errors.Is(err, content.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, apiError{Error: "Project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// handleAPIResolve resolves ?name= for the viewport described either by
// ?portrait=true|false or by ?w= and ?h=. Without either, landscape is assumed.
func (a *App) handleAPIResolve(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, apiError{Error: "name is required"})
	}
	res := a.Images.Resolve(name, viewportFromQuery(c).IsPortrait())
	a.Metrics.IncResolution(string(res.Source))
	return c.JSON(http.StatusOK, res)
}

// handleAPIFallback answers a client's report that ?url= failed to load with
// the next URL to try, or null once the chain is exhausted.
func (a *App) handleAPIFallback(c echo.Context) error {
	failed := c.QueryParam("url")
	if failed == "" {
		return c.JSON(http.StatusBadRequest, apiError{Error: "url is required"})
	}
	resp := fallbackResponse{Chain: a.Images.FallbackChain(failed)}
	if resp.Chain == nil {
		resp.Chain = []string{}
	}
	if next, ok := a.Images.Fallback(failed); ok {
		resp.Next = &next
		a.Metrics.IncFallback("next")
	} else {
		a.Metrics.IncFallback("exhausted")
		a.Logger.Warn("image fallback exhausted", "url", failed)
	}
	return c.JSON(http.StatusOK, resp)
}

func viewportFromQuery(c echo.Context) imagery.Viewport {
	if p := c.QueryParam("portrait"); p != "" {
		if portrait, err := strconv.ParseBool(p); err == nil && portrait {
			return imagery.Viewport{Width: 1, Height: 2}
		}
		return imagery.Viewport{Width: 2, Height: 1}
	}
	w, _ := strconv.Atoi(c.QueryParam("w"))
	h, _ := strconv.Atoi(c.QueryParam("h"))
	return imagery.Viewport{Width: w, Height: h}
}
