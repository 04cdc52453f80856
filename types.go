package folio

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/imagery"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, an absolute URL
}

// ProjectCard is a project as shown in listings: the record plus its
// resolved cover image.
type ProjectCard struct {
	Project content.Project
	Cover   imagery.Pair
}

// ProjectImage is a gallery or floor-plan entry with its image resolved for
// both viewport orientations.
type ProjectImage struct {
	Name    string
	Caption string
	PDF     string
	Image   imagery.Pair
}

// ProjectPage is everything the project template needs.
type ProjectPage struct {
	Project    content.Project
	Meta       PageMeta
	Cover      imagery.Pair
	Gallery    []ProjectImage
	FloorPlans []ProjectImage
	Related    []ProjectCard
	Preload    []string
}
