// Package works provides the portfolio works CRUD handlers.
package works

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/abhid/portfolio-backend/internal/uploads"
	"github.com/abhid/portfolio-backend/store"
)

// List returns the stored works, newest first. Served both publicly and on
// the admin surface.
func List(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		works, err := st.ListWorks()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch works"})
		}
		return c.JSON(fiber.Map{"success": true, "works": works})
	}
}

// Create adds a new work from a multipart form with optional image/video
// files.
func Create(st *store.Store, media *uploads.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		urls, err := media.SaveAll(form.File, "image", "video")
		if err != nil {
			return uploadError(c, err)
		}

		work, err := st.CreateWork(workInput(form, urls))
		if err != nil {
			if errors.Is(err, store.ErrValidation) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and description are required"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add work"})
		}

		return c.JSON(fiber.Map{"success": true, "work": work})
	}
}

// Update applies a partial multipart update to the work at :id.
func Update(st *store.Store, media *uploads.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		urls, err := media.SaveAll(form.File, "image", "video")
		if err != nil {
			return uploadError(c, err)
		}

		work, err := st.UpdateWork(c.Params("id"), workInput(form, urls))
		if err != nil {
			if errors.Is(err, store.ErrWorkNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update work"})
		}

		return c.JSON(fiber.Map{"success": true, "work": work})
	}
}

// Delete removes the work at :id together with its media files.
func Delete(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteWork(c.Params("id")); err != nil {
			if errors.Is(err, store.ErrWorkNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete work"})
		}
		return c.JSON(fiber.Map{"success": true, "message": "Work deleted successfully"})
	}
}

func workInput(form *multipart.Form, urls map[string]string) store.WorkInput {
	return store.WorkInput{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		Category:    formValue(form, "category"),
		Tags:        formValue(form, "tags"),
		Link:        formValue(form, "link"),
		ImageURL:    urls["image"],
		VideoURL:    urls["video"],
	}
}

// formValue distinguishes an absent form field (nil) from a present-but-
// empty one, which partial updates rely on.
func formValue(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

func uploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, uploads.ErrUnsupportedMedia) || errors.Is(err, uploads.ErrFileTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store uploaded file"})
}
