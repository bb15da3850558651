// internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status pembayaran (sesuai ENUM di DB):
- "paid"
- "unpaid"
*/
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentGroupID *uuid.UUID `gorm:"type:uuid;column:student_group_id" json:"student_group_id,omitempty"`

	StudentFullName    string  `gorm:"type:varchar(150);not null;column:student_full_name" json:"student_full_name"`
	StudentPhoneNumber *string `gorm:"type:varchar(30);column:student_phone_number" json:"student_phone_number,omitempty"`
	StudentParentPhone *string `gorm:"type:varchar(30);column:student_parent_phone" json:"student_parent_phone,omitempty"`

	StudentJoinDate      time.Time     `gorm:"type:date;not null;column:student_join_date" json:"student_join_date"`
	StudentPaymentStatus PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid';column:student_payment_status" json:"student_payment_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	if m.StudentPaymentStatus == "" {
		m.StudentPaymentStatus = PaymentStatusUnpaid
	}
	return nil
}
