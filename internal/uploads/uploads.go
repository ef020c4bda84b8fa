// Package uploads validates and persists user-submitted media files.
package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxFileSize is the per-file upload ceiling (50 MiB), matching the
// server-wide body limit.
const MaxFileSize = 50 * 1024 * 1024

// Rejection reasons surfaced to the client as 400 responses.
var (
	ErrUnsupportedMedia = errors.New("Only image and video files are allowed!")
	ErrFileTooLarge     = errors.New("File exceeds the 50MB upload limit")
)

// allowedTypes lists the accepted file extensions and MIME subtypes. Both
// the extension and the declared content-type must match: the declared type
// can be spoofed, so the extension cross-check is a deliberate defense.
var allowedTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"mp4":  true,
	"webm": true,
	"mov":  true,
	// standard MIME name for .mov containers
	"quicktime": true,
}

// Manager writes accepted files into the public uploads directory and hands
// back the relative URL to store in the owning record.
type Manager struct {
	dir    string
	logger *zap.Logger
}

// New creates a manager writing under <publicDir>/uploads.
func New(publicDir string, logger *zap.Logger) *Manager {
	return &Manager{dir: filepath.Join(publicDir, "uploads"), logger: logger}
}

// Init ensures the uploads directory exists.
func (m *Manager) Init() error {
	return os.MkdirAll(m.dir, 0o755)
}

// Save validates and persists one uploaded file, returning its relative URL
// ("/uploads/<name>"). Nothing is written when validation fails.
func (m *Manager) Save(fh *multipart.FileHeader) (string, error) {
	if err := validate(fh); err != nil {
		return "", err
	}
	if err := m.Init(); err != nil {
		return "", err
	}

	name := newFilename(fh.Filename)
	dst := filepath.Join(m.dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// write to a temp name first so a failed copy never leaves a partial
	// file at the final path
	tmp, err := os.CreateTemp(m.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return "/uploads/" + name, nil
}

// SaveAll persists the first file of each named field present in the form.
// On any failure the files already written for this request are removed, so
// a rejected request stores nothing.
func (m *Manager) SaveAll(files map[string][]*multipart.FileHeader, fields ...string) (map[string]string, error) {
	urls := make(map[string]string)
	for _, field := range fields {
		fhs := files[field]
		if len(fhs) == 0 {
			continue
		}
		url, err := m.Save(fhs[0])
		if err != nil {
			for _, stored := range urls {
				m.Remove(stored)
			}
			return nil, err
		}
		urls[field] = url
	}
	return urls, nil
}

// Remove deletes a stored file given its relative URL. Best-effort: a
// failure is logged, never returned, so cleanup cannot fail the operation
// that triggered it.
func (m *Manager) Remove(relURL string) {
	name := strings.TrimPrefix(relURL, "/uploads/")
	if name == "" || name == relURL || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		m.logger.Warn("skipping removal of unexpected media url", zap.String("url", relURL))
		return
	}
	if err := os.Remove(filepath.Join(m.dir, name)); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("failed to delete media file", zap.String("url", relURL), zap.Error(err))
	}
}

func validate(fh *multipart.FileHeader) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	if !allowedTypes[ext] {
		return ErrUnsupportedMedia
	}

	declared := strings.ToLower(fh.Header.Get("Content-Type"))
	if i := strings.IndexByte(declared, '/'); i >= 0 {
		declared = declared[i+1:]
	}
	if !allowedTypes[declared] {
		return ErrUnsupportedMedia
	}

	if fh.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// newFilename builds a collision-resistant name: timestamp, random suffix,
// original extension.
func newFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix + ext
}
