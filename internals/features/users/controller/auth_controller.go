package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"haskenrayuwa_backend/internals/features/users/dto"
	helper "haskenrayuwa_backend/internals/helpers"
	"haskenrayuwa_backend/internals/middlewares/auth"
)

const adminTokenTTL = 12 * time.Hour

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =============================
// 🔑 Admin Login
// =============================
// Exchanges the admin credentials for a bearer token. The token is the
// only thing the server hands out; it keeps no session state, so there is
// nothing to invalidate on logout beyond the client dropping the token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if !auth.CheckAdminCredentials(body.Username, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect username or password")
	}

	token, err := auth.IssueAdminToken(body.Username, adminTokenTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(adminTokenTTL.Seconds()),
	})
}

// =============================
// 🔑 Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return helper.Success(c, "user logged out successfully", nil)
}
