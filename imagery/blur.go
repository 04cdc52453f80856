package imagery

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	blurWidth   = 10
	blurQuality = 50
)

// BlurMap maps a physical asset path to a base64 data-URI preview. Entries
// may be missing for any path.
type BlurMap map[string]string

// Lookup returns the preview for p, if one was generated.
func (b BlurMap) Lookup(p string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b[p]
	return v, ok && v != ""
}

// LoadBlurMap decodes a JSON object of path to data URI.
func LoadBlurMap(r io.Reader) (BlurMap, error) {
	var m BlurMap
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode blur placeholders: %w", err)
	}
	return m, nil
}

// ReadBlurMapFile loads the blur map stored at p.
func ReadBlurMapFile(p string) (BlurMap, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open blur placeholders: %w", err)
	}
	defer f.Close()
	return LoadBlurMap(f)
}

// GenerateBlur decodes an image and returns a tiny JPEG data URI of it. The
// image is downsampled to blurWidth pixels wide, which is blur enough for a
// placeholder that the browser stretches over the full frame.
func GenerateBlur(src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return "", fmt.Errorf("decode image: empty bounds")
	}
	newH := (h*blurWidth + w/2) / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, blurWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: blurQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// BuildBlurMap generates previews for every image under root in fsys. Keys
// are rooted paths ("/" + path within fsys). Images that fail to decode are
// logged and skipped.
func BuildBlurMap(fsys fs.FS, root string, logger *slog.Logger) (BlurMap, error) {
	if logger == nil {
		logger = slog.Default()
	}
	out := make(BlurMap)
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !HasImageExt(d.Name()) {
			return nil
		}
		f, err := fsys.Open(p)
		if err != nil {
			logger.Warn("blur: open image", "path", p, "error", err)
			return nil
		}
		defer f.Close()
		uri, err := GenerateBlur(f)
		if err != nil {
			logger.Warn("blur: skip image", "path", p, "error", err)
			return nil
		}
		out[path.Join("/", p)] = uri
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return out, nil
}

// WriteBlurMap writes m as indented JSON.
func WriteBlurMap(w io.Writer, m BlurMap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
