// Package store - Handles all interaction with the flat-JSON data files.
//
// Each entity type (works, settings, users) lives in its own JSON document
// under the data directory; the file is the database. Every operation
// re-reads the file, mutates in memory, and rewrites the whole document.
// A per-file mutex serializes the read-modify-write cycle so concurrent
// admin requests cannot interleave writes, and documents are written to a
// temp file and renamed into place so a crash never leaves a partial file.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = InitLogger() // setup the logger

// Error kinds the HTTP layer maps onto status codes.
var (
	// ErrValidation marks a bad-request failure (missing required field).
	ErrValidation = errors.New("validation failed")
	// ErrWorkNotFound marks an unknown work id.
	ErrWorkNotFound = errors.New("work not found")
	// ErrUserNotFound marks an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// MediaRemover deletes a previously stored media file given its relative
// URL. Removal is best-effort: implementations log failures and never
// propagate them, so stale-media cleanup cannot fail a store operation.
type MediaRemover interface {
	Remove(relURL string)
}

// Store reads and writes the JSON data files.
type Store struct {
	dataDir string
	media   MediaRemover

	worksMu    sync.Mutex
	settingsMu sync.Mutex
	usersMu    sync.Mutex
}

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// New creates a store rooted at dataDir. media handles cleanup of orphaned
// upload files when a record's media is replaced or deleted.
func New(dataDir string, media MediaRemover) *Store {
	return &Store{dataDir: dataDir, media: media}
}

// Init ensures the data directory exists.
func (s *Store) Init() error {
	return os.MkdirAll(s.dataDir, 0o755)
}

func (s *Store) worksPath() string    { return filepath.Join(s.dataDir, "works.json") }
func (s *Store) usersPath() string    { return filepath.Join(s.dataDir, "users.json") }
func (s *Store) settingsPath() string { return filepath.Join(s.dataDir, "settings.json") }

// readJSON loads a document into v. Returns os.ErrNotExist (wrapped) when
// the file is absent; callers decide whether that is an error.
func (s *Store) readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON persists a document atomically: marshal, write a temp file in
// the same directory, fsync-free rename over the target.
func (s *Store) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// removeMedia deletes the file behind a stored relative URL, if any.
// Failures are logged and swallowed.
func (s *Store) removeMedia(relURL string) {
	if relURL == "" || s.media == nil {
		return
	}
	if !strings.HasPrefix(relURL, "/uploads/") {
		logger.Warn("refusing to delete media outside uploads", zap.String("url", relURL))
		return
	}
	s.media.Remove(relURL)
}
