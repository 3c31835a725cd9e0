package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/filmshow/controller"
	"haskenrayuwa_backend/internals/middlewares"
)

func FilmShowUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFilmShowController(db)

	// === USER ROUTES ===
	reports := api.Group("/film-show-reports")
	reports.Get("/", ctrl.GetAllFilmShowReports)                // 📄 List reports
	reports.Get("/month/:month", ctrl.GetFilmShowReportsByMonth) // 📅 Reports for one month
	reports.Get("/:id", ctrl.GetFilmShowReportByID)             // 🔍 Report detail
}

func FilmShowAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFilmShowController(db)

	// === ADMIN ROUTES ===
	reports := api.Group("/film-show-reports")
	reports.Post("/upload", middlewares.UploadRateLimiter(), ctrl.UploadFilmShowWorkbooks) // 📤 Spreadsheet ingestion
	reports.Post("/", ctrl.CreateFilmShowReport)                                           // ➕ Manual entry
	reports.Patch("/:id", ctrl.UpdateFilmShowReport)                                       // 🔄 Partial update
	reports.Delete("/month/:month", ctrl.DeleteFilmShowReportsByMonth)                     // 🗑️ Bulk delete by month
	reports.Delete("/:id", ctrl.DeleteFilmShowReport)                                      // 🗑️ Delete report
}
