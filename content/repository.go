package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

// ErrProjectNotFound is returned when no record matches a slug.
var ErrProjectNotFound = errors.New("project not found")

// Rejection describes a content file skipped during loading.
type Rejection struct {
	File   string
	Reason string
}

// Repository is the read-only project collection. It is safe for concurrent
// use once constructed.
type Repository struct {
	projects []Project
	byKey    map[string]int
	rejected []Rejection
}

// NewRepository builds a repository from in-memory records, keyed by slug.
// Records without a slug or with a slug already taken are dropped.
func NewRepository(projects ...Project) *Repository {
	r := &Repository{byKey: make(map[string]int, len(projects))}
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if p.Slug == "" || seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		r.byKey[p.Slug] = len(r.projects)
		r.projects = append(r.projects, p)
	}
	return r
}

// Load reads every *.json file in dir, in filename order. A file that fails
// to parse or validate, or repeats an earlier slug, is skipped and logged;
// only an unreadable directory is an error.
func Load(fsys fs.FS, dir string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	r := &Repository{byKey: make(map[string]int, len(entries))}
	slugs := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".json") {
			continue
		}
		file := path.Join(dir, e.Name())
		p, err := readProject(fsys, file)
		if err != nil {
			r.reject(logger, e.Name(), err.Error())
			continue
		}
		if prev, dup := slugs[p.Slug]; dup {
			r.reject(logger, e.Name(), fmt.Sprintf("duplicate slug %q (already defined by %s)", p.Slug, prev))
			continue
		}
		slugs[p.Slug] = e.Name()
		r.byKey[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = len(r.projects)
		r.projects = append(r.projects, p)
	}
	logger.Info("content: projects loaded", "dir", dir, "projects", len(r.projects), "rejected", len(r.rejected))
	return r, nil
}

func readProject(fsys fs.FS, file string) (Project, error) {
	raw, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Project{}, err
	}
	if err := ValidateProject(raw); err != nil {
		return Project{}, err
	}
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}

func (r *Repository) reject(logger *slog.Logger, file, reason string) {
	logger.Warn("content: skipping malformed project", "file", file, "reason", reason)
	r.rejected = append(r.rejected, Rejection{File: file, Reason: reason})
}

// Get returns the project with the given slug. The direct index (file name
// without extension) is tried first; a hit there only counts when the
// record's own slug agrees, because the slug field is authoritative. Then
// every record is scanned by slug.
func (r *Repository) Get(slug string) (Project, error) {
	if r == nil || slug == "" {
		return Project{}, ErrProjectNotFound
	}
	if i, ok := r.byKey[slug]; ok && r.projects[i].Slug == slug {
		return r.projects[i], nil
	}
	for _, p := range r.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// All returns every loaded project in load order.
func (r *Repository) All() []Project {
	if r == nil {
		return nil
	}
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// Len returns the number of loaded projects.
func (r *Repository) Len() int {
	if r == nil {
		return 0
	}
	return len(r.projects)
}

// Rejected returns the files skipped during Load.
func (r *Repository) Rejected() []Rejection {
	if r == nil {
		return nil
	}
	return append([]Rejection(nil), r.rejected...)
}

// Categories returns the distinct categories of projects, sorted.
func Categories(projects []Project) []string {
	set := make(map[string]struct{})
	for _, p := range projects {
		if c := strings.TrimSpace(p.Category); c != "" {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FilterByCategory keeps projects whose category matches, ignoring case.
// An empty or "all" category keeps everything.
func FilterByCategory(projects []Project, category string) []Project {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return projects
	}
	var out []Project
	for _, p := range projects {
		if strings.EqualFold(strings.TrimSpace(p.Category), category) {
			out = append(out, p)
		}
	}
	return out
}

// SortProjects returns a sorted copy. by is "year" (newest first), "title",
// "category", or empty for load order. Ties keep load order.
func SortProjects(projects []Project, by string) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	switch by {
	case "year":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case "title":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case "category":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Category) < strings.ToLower(out[j].Category)
		})
	}
	return out
}

// Related returns up to n other projects sharing current's category.
func Related(current Project, projects []Project, n int) []Project {
	var out []Project
	for _, p := range projects {
		if len(out) >= n {
			break
		}
		if p.Slug == current.Slug {
			continue
		}
		if strings.EqualFold(p.Category, current.Category) {
			out = append(out, p)
		}
	}
	return out
}
