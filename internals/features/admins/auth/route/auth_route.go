package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/admins/auth/controller"
	"bimbelku_backend/internals/middlewares"
	authMW "bimbelku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang route autentikasi.
// Login & register publik (dengan rate limiter ketat), /auth/me dijaga JWT.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Get("/me", authMW.AuthMiddleware(), ctrl.Me)
}
