package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	helper "haskenrayuwa_backend/internals/helpers"
	"haskenrayuwa_backend/internals/helpers/oss"
)

type MediaController struct {
	OSS *oss.OSSService
}

func NewMediaController(svc *oss.OSSService) *MediaController {
	return &MediaController{OSS: svc}
}

func (ctrl *MediaController) available() error {
	if ctrl.OSS == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Image storage is not configured")
	}
	return nil
}

// =============================
// 📤 Upload Image
// =============================
// Every upload is re-encoded to webp before it is stored, so the bucket
// never serves an original the browser has to download at camera size.
func (ctrl *MediaController) UploadImage(c *fiber.Ctx) error {
	if err := ctrl.available(); err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing file")
	}

	url, thumbURL, err := ctrl.OSS.UploadImage(c.Context(), fh, oss.DefaultWebPOptions())
	if err != nil {
		if errors.Is(err, oss.ErrUnsupportedFormat) {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload image")
	}

	return c.JSON(fiber.Map{"url": url, "thumbnail_url": thumbURL})
}

// =============================
// 📄 List Images
// =============================
func (ctrl *MediaController) GetImages(c *fiber.Ctx) error {
	if err := ctrl.available(); err != nil {
		return err
	}

	urls, next, err := ctrl.OSS.ListImages(c.Context(), c.Query("next_cursor"), 30)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch images")
	}

	return c.JSON(fiber.Map{"images": urls, "next_cursor": next})
}

// =============================
// 🗑️ Delete Image
// =============================
func (ctrl *MediaController) DeleteImage(c *fiber.Ctx) error {
	if err := ctrl.available(); err != nil {
		return err
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil || body.URL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing image URL")
	}

	if err := ctrl.OSS.DeleteByPublicURL(c.Context(), body.URL); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete image")
	}

	return helper.Success(c, "Image deleted successfully", fiber.Map{"url": body.URL})
}
