package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/home/links/controller"
)

func LinkUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLinkController(db)

	// === USER ROUTES ===
	links := api.Group("/links")
	links.Get("/", ctrl.GetAllLinks)    // 📄 List links
	links.Get("/:id", ctrl.GetLinkByID) // 🔍 Link detail
}

func LinkAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLinkController(db)

	// === ADMIN ROUTES ===
	links := api.Group("/links")
	links.Post("/", ctrl.CreateLink)      // ➕ Create link (metadata auto-fetch)
	links.Put("/:id", ctrl.UpdateLink)    // 🔄 Replace URL
	links.Delete("/:id", ctrl.DeleteLink) // 🗑️ Delete link
}
