// Package content loads the studio's authored content: portfolio project
// records and the FAQ. Content is read once at startup and never mutated.
package content

// ProjectImage is one gallery or floor-plan entry. Image is a logical image
// name handed to the image resolver; PDF optionally links a drawing set.
type ProjectImage struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
	PDF     string `json:"pdf,omitempty"`
}

// AdditionalInfo holds the free-text credits shown under a project.
type AdditionalInfo struct {
	Client       string `json:"Client,omitempty"`
	Contractor   string `json:"Contractor,omitempty"`
	Photographer string `json:"Photographer,omitempty"`
}

// Empty reports whether no credit is filled in.
func (a AdditionalInfo) Empty() bool {
	return a.Client == "" && a.Contractor == "" && a.Photographer == ""
}

// Project is one portfolio project as authored in content/projects/*.json.
type Project struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Category       string         `json:"category"`
	Location       string         `json:"location"`
	Year           string         `json:"year"`
	Size           string         `json:"size"`
	Status         string         `json:"status"`
	Services       []string       `json:"services"`
	CoverImage     string         `json:"coverImage"`
	Description    []string       `json:"description"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo"`
	FloorPlans     []ProjectImage `json:"floorPlans"`
	Gallery        []ProjectImage `json:"gallery"`
}

// Link returns the site path of the project page.
func (p Project) Link() string {
	return "/projects/" + p.Slug + "/"
}

// Summary returns the first description paragraph, if any.
func (p Project) Summary() string {
	if len(p.Description) == 0 {
		return ""
	}
	return p.Description[0]
}
