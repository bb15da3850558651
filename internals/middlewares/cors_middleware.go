// middlewares/cors_middleware.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"bimbelku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Origin frontend disuplai lewat env CORS_ALLOW_ORIGIN.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     configs.CORSAllowOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
