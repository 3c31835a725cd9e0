package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/home/blogs/dto"
	"haskenrayuwa_backend/internals/features/home/blogs/model"
	"haskenrayuwa_backend/internals/features/home/blogs/service"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateBlog = validator.New()

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// =============================
// ➕ Create Blog
// =============================
func (ctrl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var body dto.CreateBlogRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBlog.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	post := model.Blog{
		BlogTitle:   body.BlogTitle,
		BlogAuthor:  body.BlogAuthor,
		BlogContent: body.BlogContent,
		BlogDate:    time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create blog")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToBlogDTO(post))
}

// =============================
// 📄 Get All Blogs
// =============================
func (ctrl *BlogController) GetAllBlogs(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	var posts []model.Blog
	if err := ctrl.DB.
		Order("blog_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&posts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve blogs")
	}

	return c.JSON(dto.ToBlogDTOs(posts))
}

// =============================
// 🔍 Get Blog By ID
// =============================
func (ctrl *BlogController) GetBlogByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var post model.Blog
	if err := ctrl.DB.First(&post, "blog_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Blog not found")
	}

	return c.JSON(dto.ToBlogDTO(post))
}

// =============================
// 🔄 Partial Update
// =============================
func (ctrl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var post model.Blog
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "blog_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Blog not found")
			}
			return err
		}
		if err := service.ApplyUpdates(&post, updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return tx.Save(&post).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return c.JSON(dto.ToBlogDTO(post))
}

// =============================
// 🗑️ Delete Blog
// =============================
func (ctrl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.Blog{}, "blog_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete blog")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Blog not found")
	}

	return helper.Success(c, "Blog deleted successfully", fiber.Map{"blog_id": id})
}
