package imagery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureManifest() *Manifest {
	return NewManifest(map[string]Entry{
		"/projects/bel-air/Bel Air 1": {
			Base: "/projects/bel-air/Bel Air 1",
			Variants: []Variant{
				{Path: "/projects/bel-air/Bel Air 1-L.jpg", Orientation: Landscape, Filename: "Bel Air 1-L.jpg"},
			},
		},
		"/projects/malibu/Front": {
			Variants: []Variant{
				{Path: "/projects/malibu/Front-L.jpg", Orientation: Landscape},
				{Path: "/projects/malibu/Front-P.jpg", Orientation: Portrait},
			},
		},
		"/projects/malibu/Pool": {
			Variants: []Variant{
				{Path: "/projects/malibu/Pool-portrait.jpg", Orientation: Portrait},
				{Path: "/projects/malibu/Pool.jpg", Orientation: Landscape},
			},
		},
		"/projects/tall/Stair": {
			Variants: []Variant{
				{Path: "/projects/tall/Stair-P.jpg", Orientation: Portrait},
			},
		},
		"/projects/dup/Hall": {
			Variants: []Variant{
				{Path: "/projects/dup/m.jpg", Orientation: Landscape},
				{Path: "/projects/dup/z.jpg", Orientation: Portrait},
				{Path: "/projects/dup/a.jpg", Orientation: Portrait},
			},
		},
		"/projects/ext/Roof.JPG": {
			Variants: []Variant{
				{Path: "/projects/ext/Roof.JPG", Orientation: Landscape},
			},
		},
	})
}

func TestResolvePicksViewportOrientation(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil)

	portrait := r.Resolve("malibu/Front", true)
	assert.Equal(t, "/projects/malibu/Front-P.jpg", portrait.URL)
	assert.Equal(t, Portrait, portrait.Orientation)
	assert.Equal(t, SourceManifest, portrait.Source)

	landscape := r.Resolve("malibu/Front", false)
	assert.Equal(t, "/projects/malibu/Front-L.jpg", landscape.URL)
	assert.Equal(t, Landscape, landscape.Orientation)

	pool := r.ResolveBoth("malibu/Pool")
	assert.Equal(t, "/projects/malibu/Pool-portrait.jpg", pool.Portrait.Path)
	assert.Equal(t, "/projects/malibu/Pool.jpg", pool.Landscape.Path)
}

func TestResolveSingleOrientationDegrades(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil)

	res := r.Resolve("bel-air/Bel Air 1", true)
	assert.Equal(t, "/projects/bel-air/Bel%20Air%201-L.jpg", res.URL)
	assert.Equal(t, "/projects/bel-air/Bel Air 1-L.jpg", res.Path)
	assert.Equal(t, Landscape, res.Orientation)

	for _, portrait := range []bool{true, false} {
		res := r.Resolve("tall/Stair", portrait)
		assert.Equal(t, "/projects/tall/Stair-P.jpg", res.Path)
	}
}

func TestResolveDuplicateOrientationUsesSmallestFilename(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil)
	assert.Equal(t, "/projects/dup/a.jpg", r.Resolve("dup/Hall", true).Path)
	assert.Equal(t, "/projects/dup/m.jpg", r.Resolve("dup/Hall", false).Path)
}

func TestResolveRecoversExtensionAndMarker(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil)

	res := r.Resolve("ext/Roof.jpg", false)
	assert.Equal(t, SourceManifest, res.Source)
	assert.Equal(t, "/projects/ext/Roof.JPG", res.Path)

	res = r.Resolve("malibu/Front-P", false)
	assert.Equal(t, SourceManifest, res.Source)
	assert.Equal(t, "/projects/malibu/Front-L.jpg", res.Path)

	res = r.Resolve("/projects/malibu/Front", true)
	assert.Equal(t, "/projects/malibu/Front-P.jpg", res.Path)
}

func TestResolveHeuristicWithoutManifest(t *testing.T) {
	r := NewResolver(nil, nil)
	require.True(t, r.Heuristic())

	cases := []struct {
		name     string
		portrait bool
		want     string
	}{
		{"bel-air/Bel Air 2", true, "/projects/bel-air/Bel%20Air%202-P.jpg"},
		{"bel-air/Bel Air 2", false, "/projects/bel-air/Bel%20Air%202-L.jpg"},
		{"site/Hall_P", false, "/projects/site/Hall_L.jpg"},
		{"site/Hall_L", true, "/projects/site/Hall_P.jpg"},
		{"site/Deck-portrait", false, "/projects/site/Deck.jpg"},
		{"site/Deck-portrait", true, "/projects/site/Deck-portrait.jpg"},
		{"site/Deck_landscape", true, "/projects/site/Deck_portrait.jpg"},
		{"/hero.jpg", true, "/hero.jpg"},
		{"site/Plan #2.png", false, "/projects/site/Plan%20%232.png"},
	}
	for _, tc := range cases {
		res := r.Resolve(tc.name, tc.portrait)
		assert.Equal(t, tc.want, res.URL, tc.name)
		assert.Equal(t, SourceHeuristic, res.Source, tc.name)
		assert.True(t, HasImageExt(res.Path), tc.name)
	}
}

func TestResolveMissingFromManifestFallsBackToHeuristic(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil)
	res := r.Resolve("unknown/Facade", true)
	assert.Equal(t, SourceHeuristic, res.Source)
	assert.Equal(t, "/projects/unknown/Facade-P.jpg", res.Path)
}

func TestResolveAttachesBlurPreview(t *testing.T) {
	blur := BlurMap{"/projects/malibu/Front-L.jpg": "data:image/jpeg;base64,AAAA"}
	r := NewResolver(fixtureManifest(), blur)

	assert.Equal(t, "data:image/jpeg;base64,AAAA", r.Resolve("malibu/Front", false).Blur)
	assert.Empty(t, r.Resolve("malibu/Front", true).Blur)
}

func TestResolveEmptyNameIsPlaceholder(t *testing.T) {
	r := NewResolver(fixtureManifest(), nil, WithPlaceholder("/img/fallback.jpg"))
	res := r.Resolve("  ", true)
	assert.Equal(t, SourcePlaceholder, res.Source)
	assert.Equal(t, "/img/fallback.jpg", res.URL)
}

func TestSearchKey(t *testing.T) {
	r := NewResolver(nil, nil, WithContentRoot("media"))
	assert.Equal(t, "/media/a/b", r.SearchKey("a/b"))
	assert.Equal(t, "/media/a/b", r.SearchKey("./a/b"))
	assert.Equal(t, "/a/b.jpg", r.SearchKey("/a/b.jpg"))
}
