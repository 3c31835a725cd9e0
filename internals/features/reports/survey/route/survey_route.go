package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/survey/controller"
	"haskenrayuwa_backend/internals/middlewares"
)

func SurveyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSurveyController(db)

	// === USER ROUTES ===
	surveys := api.Group("/survey-records")
	surveys.Get("/", ctrl.GetSurveyRecords)        // 📄 List records with totals
	surveys.Get("/states", ctrl.GetSurveyedStates) // 📄 Distinct surveyed states
	surveys.Get("/:id", ctrl.GetSurveyRecordByID)  // 🔍 Record detail
}

func SurveyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSurveyController(db)

	// === ADMIN ROUTES ===
	surveys := api.Group("/survey-records")
	surveys.Post("/upload", middlewares.UploadRateLimiter(), ctrl.UploadSurveyWorkbooks) // 📤 Spreadsheet ingestion
	surveys.Post("/", ctrl.CreateSurveyRecord)                                           // ➕ Manual entry
	surveys.Patch("/:id", ctrl.UpdateSurveyRecord)                                       // 🔄 Partial update
	surveys.Delete("/:id", ctrl.DeleteSurveyRecord)                                      // 🗑️ Delete record
}
