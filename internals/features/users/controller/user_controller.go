package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/users/dto"
	"haskenrayuwa_backend/internals/features/users/model"
	"haskenrayuwa_backend/internals/features/users/service"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// ➕ Contact Submission
// =============================
func (ctrl *UserController) CreateContact(c *fiber.Ctx) error {
	var body dto.ContactRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.EnsureUser(tx, body.FullName, body.Email); err != nil {
			return err
		}
		contact := model.ContactUser{
			ContactFullName: body.FullName,
			ContactEmail:    body.Email,
			ContactMessage:  body.Message,
		}
		return tx.Create(&contact).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save contact submission")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contact User created", nil)
}

// =============================
// ➕ Volunteer Sign-up
// =============================
func (ctrl *UserController) CreateVolunteer(c *fiber.Ctx) error {
	var body dto.VolunteerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.EnsureUser(tx, body.FullName, body.Email); err != nil {
			return err
		}
		volunteer := model.VolunteerUser{
			VolunteerFullName:    body.FullName,
			VolunteerEmail:       body.Email,
			VolunteerPhoneNumber: body.PhoneNumber,
			VolunteerAddress:     body.Address,
		}
		return tx.Create(&volunteer).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save volunteer sign-up")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Volunteer User created", nil)
}

// =============================
// 📄 Get Users (grouped)
// =============================
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	group := c.Query("group")
	switch group {
	case "", service.GroupContact, service.GroupVolunteer, service.GroupBoth:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group: "+group)
	}

	var users []model.User
	if err := ctrl.DB.
		Order("user_created_at ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var contactEmails, volunteerEmails []string
	if err := ctrl.DB.Model(&model.ContactUser{}).Distinct("contact_email").
		Pluck("contact_email", &contactEmails).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve contact users")
	}
	if err := ctrl.DB.Model(&model.VolunteerUser{}).Distinct("volunteer_email").
		Pluck("volunteer_email", &volunteerEmails).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve volunteer users")
	}

	grouped := service.GroupUsers(users, toSet(contactEmails), toSet(volunteerEmails), group)

	out := make([]dto.UserGroupDTO, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, dto.UserGroupDTO{Email: g.Email, Group: g.Group})
	}
	return c.JSON(out)
}

func toSet(emails []string) map[string]bool {
	set := make(map[string]bool, len(emails))
	for _, e := range emails {
		set[e] = true
	}
	return set
}
