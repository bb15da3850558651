// internals/features/academics/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID uuid.UUID `gorm:"type:uuid;primaryKey;column:group_id" json:"group_id"`

	GroupName        string  `gorm:"type:varchar(150);not null;column:group_name" json:"group_name"`
	GroupTeacherName *string `gorm:"type:varchar(100);column:group_teacher_name" json:"group_teacher_name,omitempty"`
	GroupMonthlyFee  float64 `gorm:"type:numeric(12,2);not null;column:group_monthly_fee" json:"group_monthly_fee"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupID == uuid.Nil {
		m.GroupID = uuid.New()
	}
	return nil
}
