package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/admins/auth/dto"
	adminModel "bimbelku_backend/internals/features/admins/auth/model"
	"bimbelku_backend/internals/features/admins/auth/service"
	helper "bimbelku_backend/internals/helpers"
	authMW "bimbelku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// GET /auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	idStr, ok := c.Locals(authMW.LocalsAdminID).(string)
	if !ok || idStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin adminModel.AdminModel
	if err := ac.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&admin))
}
