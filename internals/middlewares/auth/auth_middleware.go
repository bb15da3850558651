// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/configs"
	helper "bimbelku_backend/internals/helpers"
)

const (
	LocalsAdminID  = "admin_id"
	LocalsUsername = "admin_username"
)

// AuthMiddleware menjaga semua route non-auth. Verifikasi stateless:
// cukup signature + exp, tanpa blacklist/revocation list.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Konfigurasi server tidak lengkap")
		}

		claims, err := helper.ParseAdminToken(tokenString, secret)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
		}

		c.Locals(LocalsAdminID, claims.AdminID.String())
		c.Locals(LocalsUsername, claims.Username)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header tidak ditemukan")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Format Authorization harus 'Bearer <token>'")
	}
	return parts[1], nil
}
