package archive

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string][]byte) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return r
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func scanAll(s *Scanner) map[string]Entry {
	out := make(map[string]Entry)
	for {
		e, ok := s.Next()
		if !ok {
			return out
		}
		out[e.Name] = e
	}
}

func TestScannerClassifications(t *testing.T) {
	r := buildZip(t, map[string][]byte{
		"photos/":            nil,
		"__MACOSX/photo.jpg": {1, 2, 3},
		"photos/._photo.jpg": {1, 2, 3},
		"photos/notes.txt":   []byte("hello"),
		"photos/empty.jpg":   {},
		"photos/good.png":    tinyPNG(t),
		"photos/broken.jpg":  []byte("not an image"),
	})

	s := NewScanner(r)
	entries := scanAll(s)

	assert.Equal(t, ClassDirectory, entries["photos/"].Class)
	assert.Equal(t, ClassMacJunk, entries["__MACOSX/photo.jpg"].Class)
	assert.Equal(t, ClassHiddenFork, entries["photos/._photo.jpg"].Class)
	assert.Equal(t, ClassBadExtension, entries["photos/notes.txt"].Class)
	assert.Equal(t, ClassEmpty, entries["photos/empty.jpg"].Class)

	good := entries["photos/good.png"]
	assert.Equal(t, ClassAccepted, good.Class)
	assert.False(t, good.DecodeFailed)
	assert.NotEmpty(t, good.Data)

	broken := entries["photos/broken.jpg"]
	assert.Equal(t, ClassAccepted, broken.Class)
	assert.True(t, broken.DecodeFailed)

	stats := s.Stats()
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 1, stats.Directories)
	assert.Equal(t, 1, stats.MacJunk)
	assert.Equal(t, 1, stats.HiddenFork)
	assert.Equal(t, 1, stats.BadExtension)
	assert.Equal(t, 1, stats.Empty)
	assert.Equal(t, 1, stats.DecodeFailed)
}

func TestScannerExtensionCaseInsensitive(t *testing.T) {
	r := buildZip(t, map[string][]byte{
		"photo.JPG":  []byte("x"),
		"photo.Webp": []byte("x"),
		"photo.GIF":  []byte("x"),
	})

	s := NewScanner(r)
	entries := scanAll(s)

	assert.Equal(t, ClassAccepted, entries["photo.JPG"].Class)
	assert.Equal(t, ClassAccepted, entries["photo.Webp"].Class)
	assert.Equal(t, ClassBadExtension, entries["photo.GIF"].Class)
}

func TestScannerSinglePass(t *testing.T) {
	r := buildZip(t, map[string][]byte{"a.jpg": []byte("x")})
	s := NewScanner(r)

	_, ok := s.Next()
	assert.True(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}
