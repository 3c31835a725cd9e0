package route

import (
	"github.com/gofiber/fiber/v2"

	"haskenrayuwa_backend/internals/features/media/controller"
	"haskenrayuwa_backend/internals/helpers/oss"
	"haskenrayuwa_backend/internals/middlewares"
)

func MediaUserRoutes(api fiber.Router, svc *oss.OSSService) {
	ctrl := controller.NewMediaController(svc)

	// === USER ROUTES ===
	api.Get("/images", ctrl.GetImages) // 📄 Hosted image listing
}

func MediaAdminRoutes(api fiber.Router, svc *oss.OSSService) {
	ctrl := controller.NewMediaController(svc)

	// === ADMIN ROUTES ===
	api.Post("/images", middlewares.UploadRateLimiter(), ctrl.UploadImage) // 📤 Upload image
	api.Delete("/images", ctrl.DeleteImage)                                // 🗑️ Delete image
}
