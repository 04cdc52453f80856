package imagery

import (
	"net/url"
	"path"
	"strings"
)

const (
	// DefaultContentRoot prefixes logical names that are not already rooted.
	DefaultContentRoot = "/projects/"
	// DefaultPlaceholder is the always-present terminal fallback asset.
	DefaultPlaceholder = "/placeholder.jpg"
	// MaxFallbackSteps bounds how many URLs follow a failed one.
	MaxFallbackSteps = 3
)

// Source records which strategy produced a Resolution.
type Source string

const (
	SourceManifest    Source = "manifest"
	SourceHeuristic   Source = "heuristic"
	SourcePlaceholder Source = "placeholder"
)

// Resolution is the outcome of resolving one logical image.
type Resolution struct {
	URL         string      `json:"url"`
	Path        string      `json:"path"`
	Orientation Orientation `json:"orientation"`
	Blur        string      `json:"blurPreview,omitempty"`
	Source      Source      `json:"source"`
}

// Pair holds both orientations of one logical image, for markup that lets
// the browser switch on an orientation media query.
type Pair struct {
	Portrait  Resolution `json:"portrait"`
	Landscape Resolution `json:"landscape"`
}

// Resolver turns logical image names into asset URLs. It never touches the
// filesystem and is safe for concurrent use; all of its inputs are
// read-only after construction.
type Resolver struct {
	manifest    *Manifest
	blur        BlurMap
	root        string
	placeholder string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithContentRoot sets the prefix applied to unrooted logical names.
func WithContentRoot(root string) Option {
	return func(r *Resolver) {
		if root == "" {
			return
		}
		if !strings.HasPrefix(root, "/") {
			root = "/" + root
		}
		if !strings.HasSuffix(root, "/") {
			root += "/"
		}
		r.root = root
	}
}

// WithPlaceholder sets the terminal fallback asset.
func WithPlaceholder(p string) Option {
	return func(r *Resolver) {
		if p != "" {
			r.placeholder = p
		}
	}
}

// NewResolver builds a Resolver. A nil manifest puts every lookup in
// heuristic mode; a nil blur map simply yields no previews.
func NewResolver(m *Manifest, blur BlurMap, opts ...Option) *Resolver {
	r := &Resolver{
		manifest:    m,
		blur:        blur,
		root:        DefaultContentRoot,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Heuristic reports whether the resolver runs without a manifest.
func (r *Resolver) Heuristic() bool {
	return r.manifest.Len() == 0
}

// Placeholder returns the resolution of the fixed placeholder asset.
func (r *Resolver) Placeholder() Resolution {
	return r.finish(r.placeholder, Landscape, SourcePlaceholder)
}

// SearchKey normalizes a logical name into a rooted manifest key.
func (r *Resolver) SearchKey(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "/") {
		return name
	}
	return r.root + strings.TrimPrefix(name, "./")
}

// Resolve picks the asset for name on a portrait or landscape viewport.
func (r *Resolver) Resolve(name string, portrait bool) Resolution {
	if strings.TrimSpace(name) == "" {
		return r.Placeholder()
	}
	key := r.SearchKey(name)
	want := OrientationFor(portrait)
	if e, ok := r.manifest.Lookup(key); ok {
		if v, ok := e.pick(want); ok {
			return r.finish(v.Path, v.Orientation, SourceManifest)
		}
	}
	p, o := heuristicPath(key, want)
	return r.finish(p, o, SourceHeuristic)
}

// ResolveBoth resolves name for both viewport orientations.
func (r *Resolver) ResolveBoth(name string) Pair {
	return Pair{
		Portrait:  r.Resolve(name, true),
		Landscape: r.Resolve(name, false),
	}
}

func (r *Resolver) finish(p string, o Orientation, src Source) Resolution {
	res := Resolution{
		URL:         EncodePath(p),
		Path:        p,
		Orientation: o,
		Source:      src,
	}
	if b, ok := r.blur.Lookup(p); ok {
		res.Blur = b
	}
	return res
}

// heuristicPath builds a conventional filename for key. Keys that already
// name a concrete file are returned as-is.
func heuristicPath(key string, want Orientation) (string, Orientation) {
	dir, file := path.Split(key)
	stem, ext := splitExt(file)
	if ext != "" {
		return key, DetectOrientation(file)
	}
	base, _, style, _ := parseMarker(stem)
	return dir + base + style.suffix(want) + defaultExt, want
}

// EncodePath percent-encodes p for use as a URL path, leaving slashes intact.
func EncodePath(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}

// DecodePath reverses EncodePath. Absolute URLs are reduced to their path;
// undecodable input is returned unchanged.
func DecodePath(u string) string {
	if strings.Contains(u, "://") {
		if parsed, err := url.Parse(u); err == nil {
			return parsed.Path
		}
	}
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	p, err := url.PathUnescape(u)
	if err != nil {
		return u
	}
	return p
}
