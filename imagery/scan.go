package imagery

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
)

// ScanStats summarizes a manifest build.
type ScanStats struct {
	Groups    int
	Images    int
	Portrait  int
	Landscape int
}

// BuildManifest walks the image files under root in fsys and groups them by
// base key. Paths are rooted ("/" + path within fsys) and variants within a
// group are ordered by filename.
func BuildManifest(fsys fs.FS, root string) (map[string]Entry, ScanStats, error) {
	entries := make(map[string]Entry)
	var stats ScanStats
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !HasImageExt(d.Name()) {
			return nil
		}
		full := path.Join("/", p)
		key := BaseKey(full)
		o := DetectOrientation(d.Name())
		e := entries[key]
		e.Base = key
		e.Variants = append(e.Variants, Variant{
			Path:        full,
			Orientation: o,
			Filename:    d.Name(),
		})
		entries[key] = e

		stats.Images++
		if o == Portrait {
			stats.Portrait++
		} else {
			stats.Landscape++
		}
		return nil
	})
	if err != nil {
		return nil, ScanStats{}, fmt.Errorf("walk %s: %w", root, err)
	}
	for k, e := range entries {
		sort.SliceStable(e.Variants, func(i, j int) bool {
			return e.Variants[i].Filename < e.Variants[j].Filename
		})
		entries[k] = e
	}
	stats.Groups = len(entries)
	return entries, stats, nil
}

// WriteManifest writes entries as indented JSON in the format LoadManifest
// reads.
func WriteManifest(w io.Writer, entries map[string]Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries)
}
