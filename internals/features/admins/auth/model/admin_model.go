// internals/features/admins/auth/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"type:uuid;primaryKey;column:admin_id" json:"admin_id"`

	AdminUsername string `gorm:"type:varchar(50);unique;not null;column:admin_username" json:"admin_username"`
	// Hanya hash bcrypt yang tersimpan; plaintext tidak pernah dicatat.
	AdminPassword string `gorm:"type:varchar(100);not null;column:admin_password" json:"-"`
	AdminEmail    string `gorm:"type:varchar(100);unique;not null;column:admin_email" json:"admin_email"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
