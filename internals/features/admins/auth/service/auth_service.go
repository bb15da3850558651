// internals/features/admins/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/admins/auth/dto"
	adminModel "bimbelku_backend/internals/features/admins/auth/model"
	helper "bimbelku_backend/internals/helpers"
)

// Pesan tunggal untuk username tak dikenal maupun password salah,
// supaya username tidak bisa dienumerasi dari response.
const msgBadCredentials = "Username atau password salah"

// ========================== REGISTER ==========================
// POST /auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	// Tolak username ATAU email yang sudah terdaftar
	var count int64
	if err := db.Model(&adminModel.AdminModel{}).
		Where("admin_username = ? OR admin_email = ?", req.Username, req.Email).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] register: cek duplikat: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] register: hash password: %v", err)
		return helper.JsonServerError(c, "Gagal memproses password", configs.IsProduction())
	}

	admin := adminModel.AdminModel{
		AdminUsername: req.Username,
		AdminPassword: hashed,
		AdminEmail:    req.Email,
	}
	if err := db.Create(&admin).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
		}
		log.Printf("[ERROR] register: insert admin: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromModel(&admin))
}

// ========================== LOGIN ==========================
// POST /auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	req.Username = strings.TrimSpace(req.Username)

	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var admin adminModel.AdminModel
	if err := db.Where("admin_username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
		}
		log.Printf("[ERROR] login: cari admin: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	if err := CheckPasswordHash(admin.AdminPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}

	token, err := helper.IssueAdminToken(admin.AdminID, admin.AdminUsername, configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		log.Printf("[ERROR] login: issue token: %v", err)
		return helper.JsonServerError(c, "Gagal menerbitkan token", configs.IsProduction())
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Admin: dto.FromModel(&admin),
	})
}
