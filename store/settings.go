package store

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/abhid/portfolio-backend/model"
)

// SettingsInput carries the form fields of a settings update. Nil pointers
// mean the field was absent. AvailableFor arrives as a JSON object encoded
// into a form field; a value that fails to parse keeps the old flags.
// LogoURL is set when the upload step stored a new logo for the request.
type SettingsInput struct {
	Status        *string
	StatusMessage *string
	HeroTagline   *string
	AvailableFor  *string
	LogoURL       string
}

// GetSettings returns the stored settings, falling back to the in-code
// defaults when the file is missing or unreadable. The fallback is not
// persisted.
func (s *Store) GetSettings() model.Settings {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	return s.loadSettings()
}

func (s *Store) loadSettings() model.Settings {
	var settings model.Settings
	if err := s.readJSON(s.settingsPath(), &settings); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("settings file unreadable, using defaults", zap.Error(err))
		}
		return model.DefaultSettings()
	}
	if settings.AvailableFor == nil {
		settings.AvailableFor = model.DefaultSettings().AvailableFor
	}
	return settings
}

// UpdateSettings merges the provided fields into the current settings
// (defaults if none are stored yet) and persists the whole object. A new
// logo replaces the stored file, deleting the old one best-effort.
func (s *Store) UpdateSettings(in SettingsInput) (model.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	settings := s.loadSettings()

	if strVal(in.Status) != "" {
		settings.Status = *in.Status
	}
	if in.StatusMessage != nil {
		settings.StatusMessage = *in.StatusMessage
	}
	if in.HeroTagline != nil {
		settings.HeroTagline = *in.HeroTagline
	}
	if in.AvailableFor != nil {
		var flags map[string]bool
		if err := json.Unmarshal([]byte(*in.AvailableFor), &flags); err != nil {
			logger.Warn("ignoring malformed availableFor", zap.Error(err))
		} else {
			settings.AvailableFor = flags
		}
	}
	if in.LogoURL != "" {
		if settings.LogoURL != nil {
			s.removeMedia(*settings.LogoURL)
		}
		logo := in.LogoURL
		settings.LogoURL = &logo
	}

	if err := s.writeJSON(s.settingsPath(), settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
