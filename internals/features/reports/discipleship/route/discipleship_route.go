package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/discipleship/controller"
	"haskenrayuwa_backend/internals/middlewares"
)

func DiscipleshipUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscipleshipController(db)

	// === USER ROUTES ===
	reports := api.Group("/discipleship-reports")
	reports.Get("/", ctrl.GetAllDiscipleshipReports)                  // 📄 List reports
	reports.Get("/month/:month", ctrl.GetDiscipleshipReportsByMonth) // 📅 Reports for one month
	reports.Get("/:id", ctrl.GetDiscipleshipReportByID)              // 🔍 Report detail
}

func DiscipleshipAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscipleshipController(db)

	// === ADMIN ROUTES ===
	reports := api.Group("/discipleship-reports")
	reports.Post("/upload", middlewares.UploadRateLimiter(), ctrl.UploadDiscipleshipWorkbooks) // 📤 Spreadsheet ingestion
	reports.Post("/", ctrl.CreateDiscipleshipReport)                                           // ➕ Manual entry
	reports.Patch("/:id", ctrl.UpdateDiscipleshipReport)                                       // 🔄 Partial update
	reports.Delete("/month/:month", ctrl.DeleteDiscipleshipReportsByMonth)                     // 🗑️ Bulk delete by month
	reports.Delete("/:id", ctrl.DeleteDiscipleshipReport)                                      // 🗑️ Delete report
}
