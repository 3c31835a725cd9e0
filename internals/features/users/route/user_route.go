package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/users/controller"
	"haskenrayuwa_backend/internals/middlewares"
)

func UserPublicRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	authCtrl := controller.NewAuthController()

	// === PUBLIC ROUTES ===
	users := api.Group("/users")
	users.Post("/contact", userCtrl.CreateContact)     // ➕ Contact form
	users.Post("/volunteer", userCtrl.CreateVolunteer) // ➕ Volunteer sign-up

	api.Post("/auth/login", middlewares.LoginRateLimiter(), authCtrl.Login) // 🔑 Admin token
	api.Post("/auth/logout", authCtrl.Logout)                               // 🔑 Stateless logout
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	// === ADMIN ROUTES ===
	api.Get("/users", userCtrl.GetUsers) // 📄 Grouped user listing
}
