package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blogRoute "haskenrayuwa_backend/internals/features/home/blogs/route"
	linkRoute "haskenrayuwa_backend/internals/features/home/links/route"
	mediaRoute "haskenrayuwa_backend/internals/features/media/route"
	discipleshipRoute "haskenrayuwa_backend/internals/features/reports/discipleship/route"
	filmshowRoute "haskenrayuwa_backend/internals/features/reports/filmshow/route"
	surveyRoute "haskenrayuwa_backend/internals/features/reports/survey/route"
	userRoute "haskenrayuwa_backend/internals/features/users/route"
	"haskenrayuwa_backend/internals/helpers/oss"
	"haskenrayuwa_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes registers the whole HTTP surface. Reads and public form
// submissions live on the open group; everything that mutates records
// requires admin credentials on every request.
func SetupRoutes(app *fiber.App, db *gorm.DB, ossSvc *oss.OSSService) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/v1")
	surveyRoute.SurveyUserRoutes(public, db)
	filmshowRoute.FilmShowUserRoutes(public, db)
	discipleshipRoute.DiscipleshipUserRoutes(public, db)
	blogRoute.BlogUserRoutes(public, db)
	linkRoute.LinkUserRoutes(public, db)
	userRoute.UserPublicRoutes(public, db)
	mediaRoute.MediaUserRoutes(public, ossSvc)

	// ===================== ADMIN =====================
	// Registered after the public routes: open endpoints match first, so
	// the auth gate only sees requests for the mutating surface.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/v1", auth.AdminAuth())
	surveyRoute.SurveyAdminRoutes(admin, db)
	filmshowRoute.FilmShowAdminRoutes(admin, db)
	discipleshipRoute.DiscipleshipAdminRoutes(admin, db)
	blogRoute.BlogAdminRoutes(admin, db)
	linkRoute.LinkAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	mediaRoute.MediaAdminRoutes(admin, ossSvc)
}
