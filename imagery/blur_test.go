package imagery

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGenerateBlur(t *testing.T) {
	uri, err := GenerateBlur(bytes.NewReader(pngBytes(t, 40, 20)))
	require.NoError(t, err)

	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
}

func TestGenerateBlurRejectsNonImage(t *testing.T) {
	_, err := GenerateBlur(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

func TestBuildBlurMapSkipsBrokenFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"projects/a/x.png":   {Data: pngBytes(t, 30, 60)},
		"projects/a/bad.jpg": {Data: []byte("broken")},
		"projects/a/doc.pdf": {Data: []byte("%PDF")},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := BuildBlurMap(fsys, "projects", logger)
	require.NoError(t, err)
	assert.Len(t, m, 1)

	uri, ok := m.Lookup("/projects/a/x.png")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	_, ok = m.Lookup("/projects/a/bad.jpg")
	assert.False(t, ok)
}

func TestBlurMapRoundTripThroughJSON(t *testing.T) {
	in := BlurMap{"/projects/a/x.jpg": "data:image/jpeg;base64,QUJD"}
	var buf bytes.Buffer
	require.NoError(t, WriteBlurMap(&buf, in))
	out, err := LoadBlurMap(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	var empty BlurMap
	_, ok := empty.Lookup("/projects/a/x.jpg")
	assert.False(t, ok)
}
