package model

// Settings is the singleton site-configuration record.
type Settings struct {
	Status        string          `json:"status"`
	AvailableFor  map[string]bool `json:"availableFor"`
	StatusMessage string          `json:"statusMessage"`
	LogoURL       *string         `json:"logoUrl"`
	HeroTagline   string          `json:"heroTagline"`
}

// DefaultSettings returns the in-code fallback used whenever the settings
// file is missing or unreadable. It is never persisted on its own.
func DefaultSettings() Settings {
	return Settings{
		Status: "available",
		AvailableFor: map[string]bool{
			"freelance":     true,
			"collaboration": true,
			"mentorship":    true,
		},
		StatusMessage: "Open for projects & conversations.",
		LogoURL:       nil,
		HeroTagline:   "IoT Builder · Founder · Designer",
	}
}
