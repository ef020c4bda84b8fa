// Package settings provides the site-settings handlers.
package settings

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/abhid/portfolio-backend/internal/uploads"
	"github.com/abhid/portfolio-backend/store"
)

// Get returns the current settings. It always succeeds: a missing or
// corrupt settings file falls back to the in-code defaults.
func Get(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "settings": st.GetSettings()})
	}
}

// Update merges the posted fields into the stored settings. The multipart
// form may carry an optional logo file that replaces the current one.
func Update(st *store.Store, media *uploads.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		urls, err := media.SaveAll(form.File, "logo")
		if err != nil {
			if errors.Is(err, uploads.ErrUnsupportedMedia) || errors.Is(err, uploads.ErrFileTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store uploaded file"})
		}

		settings, err := st.UpdateSettings(store.SettingsInput{
			Status:        formValue(form, "status"),
			StatusMessage: formValue(form, "statusMessage"),
			HeroTagline:   formValue(form, "heroTagline"),
			AvailableFor:  formValue(form, "availableFor"),
			LogoURL:       urls["logo"],
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
		}

		return c.JSON(fiber.Map{"success": true, "settings": settings})
	}
}

func formValue(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
