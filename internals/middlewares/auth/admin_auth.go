// internals/middlewares/auth/admin_auth.go
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"haskenrayuwa_backend/internals/configs"
)

// AdminAuth guards the admin surface. Every request carries its own
// credential proof and is validated statelessly: either HTTP Basic against
// the configured admin credentials, or a Bearer token issued by /auth/login.
// There is no server-side session.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		switch {
		case strings.HasPrefix(header, "Basic "):
			username, password, ok := decodeBasic(header)
			if !ok || !CheckAdminCredentials(username, password) {
				c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
				return fiber.NewError(fiber.StatusUnauthorized, "Incorrect username or password")
			}
			c.Locals("admin_user", username)
			return c.Next()

		case strings.HasPrefix(header, "Bearer "):
			token := strings.TrimPrefix(header, "Bearer ")
			username, err := ValidateAdminToken(token)
			if err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
			}
			c.Locals("admin_user", username)
			return c.Next()

		default:
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
			return fiber.NewError(fiber.StatusUnauthorized, "Missing credentials")
		}
	}
}

// CheckAdminCredentials compares the username in constant time and the
// password against the stored bcrypt hash.
func CheckAdminCredentials(username, password string) bool {
	if configs.AdminUsername == "" || configs.AdminPasswordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(username)),
		[]byte(strings.ToLower(configs.AdminUsername)),
	) == 1
	passOK := bcrypt.CompareHashAndPassword(
		[]byte(configs.AdminPasswordHash),
		[]byte(password),
	) == nil
	return userOK && passOK
}

// IssueAdminToken creates a short-lived bearer token for the admin user.
func IssueAdminToken(username string, ttl time.Duration) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	claims := jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ValidateAdminToken parses and verifies a bearer token, returning the
// subject username.
func ValidateAdminToken(tokenString string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return "", errors.New("token parse error")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing subject")
	}
	return sub, nil
}

func decodeBasic(header string) (username, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
