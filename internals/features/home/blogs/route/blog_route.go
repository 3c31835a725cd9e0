package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/home/blogs/controller"
)

func BlogUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlogController(db)

	// === USER ROUTES ===
	blogs := api.Group("/blogs")
	blogs.Get("/", ctrl.GetAllBlogs)    // 📄 List posts
	blogs.Get("/:id", ctrl.GetBlogByID) // 🔍 Post detail
}

func BlogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlogController(db)

	// === ADMIN ROUTES ===
	blogs := api.Group("/blogs")
	blogs.Post("/", ctrl.CreateBlog)      // ➕ Create post
	blogs.Patch("/:id", ctrl.UpdateBlog)  // 🔄 Partial update
	blogs.Delete("/:id", ctrl.DeleteBlog) // 🗑️ Delete post
}
