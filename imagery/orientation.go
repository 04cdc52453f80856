// Package imagery maps logical image names onto physical asset URLs. It picks
// the orientation variant that suits the current viewport, falls back to
// filename conventions when no manifest entry exists, and walks a bounded
// fallback chain when a resolved asset fails to load.
package imagery

import (
	"path"
	"regexp"
	"strings"
)

// Orientation tags a physical variant of a logical image.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// OrientationFor returns Portrait for a portrait viewport, Landscape otherwise.
func OrientationFor(portrait bool) Orientation {
	if portrait {
		return Portrait
	}
	return Landscape
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Portrait {
		return Landscape
	}
	return Portrait
}

// Valid reports whether o is one of the two known orientations.
func (o Orientation) Valid() bool {
	return o == Portrait || o == Landscape
}

var (
	reKnownExt = regexp.MustCompile(`(?i)\.(jpe?g|png|webp|avif|gif)$`)
	reMarker   = regexp.MustCompile(`([-_])(portrait|landscape|P|L)$`)
)

// defaultExt is appended to heuristic paths that carry no extension.
const defaultExt = ".jpg"

// splitExt separates a known image extension from name. Unknown extensions
// are left in place and ext is empty.
func splitExt(name string) (stem, ext string) {
	loc := reKnownExt.FindStringIndex(name)
	if loc == nil {
		return name, ""
	}
	return name[:loc[0]], name[loc[0]:]
}

// HasImageExt reports whether name ends in a known image extension, in any case.
func HasImageExt(name string) bool {
	return reKnownExt.MatchString(name)
}

// suffixStyle is one orientation naming convention. An empty landscape
// suffix means the landscape file carries no marker at all.
type suffixStyle struct {
	portrait  string
	landscape string
}

func (s suffixStyle) suffix(o Orientation) string {
	if o == Portrait {
		return s.portrait
	}
	return s.landscape
}

var defaultStyle = suffixStyle{portrait: "-P", landscape: "-L"}

// parseMarker splits a trailing orientation marker off stem. When no marker
// is present, base is stem, ok is false and the default -P/-L style is
// returned.
func parseMarker(stem string) (base string, o Orientation, style suffixStyle, ok bool) {
	m := reMarker.FindStringSubmatchIndex(stem)
	if m == nil {
		return stem, Landscape, defaultStyle, false
	}
	sep := stem[m[2]:m[3]]
	word := stem[m[4]:m[5]]
	base = stem[:m[0]]
	switch word {
	case "P":
		return base, Portrait, suffixStyle{sep + "P", sep + "L"}, true
	case "L":
		return base, Landscape, suffixStyle{sep + "P", sep + "L"}, true
	case "landscape":
		return base, Landscape, suffixStyle{sep + "portrait", sep + "landscape"}, true
	default:
		// A lone -portrait marker pairs with an unmarked landscape file.
		return base, Portrait, suffixStyle{sep + "portrait", ""}, true
	}
}

// DetectOrientation classifies a filename the way the manifest scanner does:
// portrait markers win, everything else is landscape.
func DetectOrientation(filename string) Orientation {
	switch {
	case strings.Contains(filename, "-portrait"),
		strings.Contains(filename, "_portrait"),
		strings.Contains(filename, "-P."),
		strings.Contains(filename, "_P."):
		return Portrait
	}
	stem, _ := splitExt(filename)
	if _, o, _, ok := parseMarker(stem); ok {
		return o
	}
	return Landscape
}

// BaseKey returns the manifest key for a physical path: directory plus file
// stem with extension and orientation marker removed.
func BaseKey(p string) string {
	dir, file := path.Split(p)
	stem, _ := splitExt(file)
	base, _, _, _ := parseMarker(stem)
	return dir + base
}

// swapToLandscape rewrites every portrait marker in filename to its
// landscape counterpart.
func swapToLandscape(filename string) string {
	stem, ext := splitExt(filename)
	if base, o, style, ok := parseMarker(stem); ok && o == Portrait {
		stem = base + style.landscape
	}
	r := strings.NewReplacer(
		"-portrait", "",
		"_portrait", "",
	)
	stem = r.Replace(stem)
	out := stem + ext
	out = strings.ReplaceAll(out, "-P.", "-L.")
	out = strings.ReplaceAll(out, "_P.", "_L.")
	return out
}
