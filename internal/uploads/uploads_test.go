package uploads

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// buildForm assembles a parsed multipart form with one file per entry.
type testFile struct {
	field       string
	filename    string
	contentType string
	content     string
}

func buildForm(t *testing.T, files ...testFile) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	publicDir := t.TempDir()
	m := New(publicDir, zap.NewNop())
	require.NoError(t, m.Init())
	return m, filepath.Join(publicDir, "uploads")
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names
}

func TestSaveAcceptedFile(t *testing.T) {
	m, dir := newTestManager(t)
	form := buildForm(t, testFile{"image", "photo.PNG", "image/png", "png-bytes"})

	url, err := m.Save(form.File["image"][0])
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is kept lowercased: %q", url)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveRejectsDisallowedFiles(t *testing.T) {
	tests := []struct {
		name string
		file testFile
		want error
	}{
		{
			name: "disallowed extension",
			file: testFile{"image", "payload.exe", "image/png", "MZ"},
			want: ErrUnsupportedMedia,
		},
		{
			name: "disallowed declared type",
			file: testFile{"image", "photo.png", "application/octet-stream", "data"},
			want: ErrUnsupportedMedia,
		},
		{
			name: "no extension",
			file: testFile{"image", "photo", "image/png", "data"},
			want: ErrUnsupportedMedia,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, dir := newTestManager(t)
			form := buildForm(t, tt.file)

			_, err := m.Save(form.File["image"][0])
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, listDir(t, dir), "rejected upload must not write a file")
		})
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	m, dir := newTestManager(t)

	// the size check runs on the declared header before any bytes move
	fh := &multipart.FileHeader{
		Filename: "big.mp4",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"video/mp4"}},
		Size:     MaxFileSize + 1,
	}
	_, err := m.Save(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, listDir(t, dir))
}

func TestSaveAllCleansUpOnFailure(t *testing.T) {
	m, dir := newTestManager(t)
	form := buildForm(t,
		testFile{"image", "ok.jpg", "image/jpeg", "jpg-bytes"},
		testFile{"video", "bad.exe", "video/mp4", "MZ"},
	)

	_, err := m.SaveAll(form.File, "image", "video")
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
	assert.Empty(t, listDir(t, dir), "files stored before the failure must be removed")
}

func TestSaveAllSkipsAbsentFields(t *testing.T) {
	m, _ := newTestManager(t)
	form := buildForm(t, testFile{"image", "ok.gif", "image/gif", "gif-bytes"})

	urls, err := m.SaveAll(form.File, "image", "video")
	require.NoError(t, err)
	assert.Len(t, urls, 1)
	assert.Contains(t, urls, "image")
}

func TestRemoveIsBestEffort(t *testing.T) {
	m, dir := newTestManager(t)

	// unknown file: logged, no error surfaced
	m.Remove("/uploads/missing.png")

	// anything outside /uploads is refused
	seed := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(seed, []byte("x"), 0o644))
	m.Remove("/etc/passwd")
	m.Remove("/uploads/../keep.png")
	assert.Equal(t, []string{"keep.png"}, listDir(t, dir))

	m.Remove("/uploads/keep.png")
	assert.Empty(t, listDir(t, dir))
}

func TestFilenameCollisionResistance(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := newFilename("photo.png")
		assert.False(t, seen[name], "filename %s repeated", name)
		seen[name] = true
		assert.True(t, strings.HasSuffix(name, ".png"))
	}
}
