package imagery

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
)

// Variant is one physical asset backing a logical image.
type Variant struct {
	Path        string      `json:"path"`
	Orientation Orientation `json:"orientation"`
	Filename    string      `json:"filename"`
}

// Entry groups every variant of one logical image under its base key.
type Entry struct {
	Base     string    `json:"base"`
	Variants []Variant `json:"variants"`
}

// pick returns the variant for o. Duplicates of one orientation resolve to
// the lexicographically smallest filename; when o is missing entirely the
// first variant in manifest order is used.
func (e Entry) pick(o Orientation) (Variant, bool) {
	v, ok := e.exact(o)
	if ok {
		return v, true
	}
	if len(e.Variants) > 0 {
		return e.Variants[0], true
	}
	return Variant{}, false
}

func (e Entry) exact(o Orientation) (Variant, bool) {
	var best Variant
	found := false
	for _, v := range e.Variants {
		if v.Orientation != o {
			continue
		}
		if !found || v.Filename < best.Filename {
			best = v
			found = true
		}
	}
	return best, found
}

type variantRef struct {
	key     string
	variant Variant
}

// Manifest is the read-only index of logical images. The zero value and a
// nil *Manifest are both empty, which puts the resolver in heuristic mode.
type Manifest struct {
	entries map[string]Entry
	byStem  map[string]string
	byBase  map[string]string
	byPath  map[string]variantRef
}

// NewManifest indexes entries keyed by their logical base path. Variants with
// a missing orientation default to landscape and missing filenames are
// derived from the path.
func NewManifest(entries map[string]Entry) *Manifest {
	m := &Manifest{
		entries: make(map[string]Entry, len(entries)),
		byStem:  make(map[string]string, len(entries)),
		byBase:  make(map[string]string, len(entries)),
		byPath:  make(map[string]variantRef),
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e := entries[k]
		variants := make([]Variant, 0, len(e.Variants))
		for _, v := range e.Variants {
			if v.Path == "" {
				continue
			}
			if v.Filename == "" {
				v.Filename = path.Base(v.Path)
			}
			if !v.Orientation.Valid() {
				v.Orientation = Landscape
			}
			variants = append(variants, v)
			if _, dup := m.byPath[v.Path]; !dup {
				m.byPath[v.Path] = variantRef{key: k, variant: v}
			}
		}
		if e.Base == "" {
			e.Base = k
		}
		e.Variants = variants
		m.entries[k] = e

		stem, _ := splitExt(k)
		if _, taken := m.byStem[stem]; !taken {
			m.byStem[stem] = k
		}
		base := BaseKey(k)
		if _, taken := m.byBase[base]; !taken {
			m.byBase[base] = k
		}
	}
	return m
}

// LoadManifest decodes a JSON manifest of base path to entry.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var entries map[string]Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode image manifest: %w", err)
	}
	return NewManifest(entries), nil
}

// ReadManifestFile loads the manifest at path.
func ReadManifestFile(p string) (*Manifest, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open image manifest: %w", err)
	}
	defer f.Close()
	return LoadManifest(f)
}

// Len returns the number of logical images in the manifest.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Lookup finds the group for key: first by exact key, then by key with its
// extension stripped, then with its orientation marker stripped as well.
func (m *Manifest) Lookup(key string) (Entry, bool) {
	if m.Len() == 0 {
		return Entry{}, false
	}
	if e, ok := m.entries[key]; ok && len(e.Variants) > 0 {
		return e, true
	}
	stem, _ := splitExt(key)
	if k, ok := m.byStem[stem]; ok {
		if e := m.entries[k]; len(e.Variants) > 0 {
			return e, true
		}
	}
	if k, ok := m.byBase[BaseKey(key)]; ok {
		if e := m.entries[k]; len(e.Variants) > 0 {
			return e, true
		}
	}
	return Entry{}, false
}

// variantAt reports the manifest variant whose physical path is p.
func (m *Manifest) variantAt(p string) (Entry, Variant, bool) {
	if m.Len() == 0 {
		return Entry{}, Variant{}, false
	}
	ref, ok := m.byPath[p]
	if !ok {
		return Entry{}, Variant{}, false
	}
	return m.entries[ref.key], ref.variant, true
}
