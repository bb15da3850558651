// internals/features/admins/auth/dto/auth_dto.go
package dto

import (
	"time"

	adminModel "bimbelku_backend/internals/features/admins/auth/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email" validate:"required,email,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type AdminResponse struct {
	AdminID       uuid.UUID `json:"admin_id"`
	AdminUsername string    `json:"admin_username"`
	AdminEmail    string    `json:"admin_email"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModel(m *adminModel.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:       m.AdminID,
		AdminUsername: m.AdminUsername,
		AdminEmail:    m.AdminEmail,
		CreatedAt:     m.CreatedAt,
	}
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
