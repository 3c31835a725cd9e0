package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/home/links/dto"
	"haskenrayuwa_backend/internals/features/home/links/model"
	"haskenrayuwa_backend/internals/features/home/links/service"
	"haskenrayuwa_backend/internals/features/reports/ingest"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateLink = validator.New()

type LinkController struct {
	DB       *gorm.DB
	Resolver *service.Resolver
}

func NewLinkController(db *gorm.DB) *LinkController {
	return &LinkController{DB: db, Resolver: service.NewResolver()}
}

// =============================
// ➕ Create Link
// =============================
// Metadata is resolved before the insert so a bad URL never reaches the
// table. The unique index on the URL is the real duplicate guard; the
// pre-check only gives a friendlier message in the common case.
func (ctrl *LinkController) CreateLink(c *fiber.Ctx) error {
	var body dto.CreateLinkRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLink.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.Link
	if err := ctrl.DB.First(&existing, "link_url = ?", body.LinkURL).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Link already exists")
	}

	meta, err := ctrl.Resolver.Resolve(body.LinkURL)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedURL) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid URL format")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Error accessing video details")
	}

	link := model.Link{
		LinkURL:         body.LinkURL,
		LinkMediaType:   meta.MediaType,
		LinkTitle:       meta.Title,
		LinkDescription: meta.Description,
	}
	if err := ctrl.DB.Create(&link).Error; err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Link already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create link")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToLinkDTO(link))
}

// =============================
// 📄 Get All Links
// =============================
func (ctrl *LinkController) GetAllLinks(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.Link{})
	if mediaType := c.Query("media_type"); mediaType != "" {
		q = q.Where("link_media_type = ?", mediaType)
	}

	var links []model.Link
	if err := q.
		Order("link_created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&links).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve links")
	}

	return c.JSON(dto.ToLinkDTOs(links))
}

// =============================
// 🔍 Get Link By ID
// =============================
func (ctrl *LinkController) GetLinkByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var link model.Link
	if err := ctrl.DB.First(&link, "link_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Link not found")
	}

	return c.JSON(dto.ToLinkDTO(link))
}

// =============================
// 🔄 Replace Link URL
// =============================
// Changing the URL re-resolves the metadata, so the stored title always
// matches the stored URL.
func (ctrl *LinkController) UpdateLink(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.CreateLinkRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLink.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	meta, err := ctrl.Resolver.Resolve(body.LinkURL)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedURL) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid URL format")
		}
		return fiber.NewError(fiber.StatusBadRequest, "Error accessing video details")
	}

	var link model.Link
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&link, "link_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Link not found")
			}
			return err
		}
		link.LinkURL = body.LinkURL
		link.LinkMediaType = meta.MediaType
		link.LinkTitle = meta.Title
		link.LinkDescription = meta.Description
		return tx.Save(&link).Error
	})
	if txErr != nil {
		if ingest.IsDuplicateKey(txErr) {
			return fiber.NewError(fiber.StatusConflict, "Link already exists")
		}
		return helper.FromFiberError(c, txErr)
	}

	return c.JSON(dto.ToLinkDTO(link))
}

// =============================
// 🗑️ Delete Link
// =============================
func (ctrl *LinkController) DeleteLink(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.Link{}, "link_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete link")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Link not found")
	}

	return helper.Success(c, "Link deleted successfully", fiber.Map{"link_id": id})
}
