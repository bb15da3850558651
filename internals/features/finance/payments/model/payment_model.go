// internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Metode pembayaran (sesuai ENUM di DB):
- "cash"
- "card"
- "transfer"
*/
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"type:uuid;primaryKey;column:payment_id" json:"payment_id"`

	PaymentStudentID uuid.UUID `gorm:"type:uuid;not null;column:payment_student_id" json:"payment_student_id"`
	// Salinan group siswa saat pembayaran dibuat. Tidak dihitung ulang bila
	// siswa pindah group (stale-copy memang disengaja).
	PaymentGroupID *uuid.UUID `gorm:"type:uuid;column:payment_group_id" json:"payment_group_id,omitempty"`

	PaymentAmount float64       `gorm:"type:numeric(12,2);not null;column:payment_amount" json:"payment_amount"`
	PaymentMonth  string        `gorm:"type:varchar(7);not null;column:payment_month" json:"payment_month"`
	PaymentDate   time.Time     `gorm:"type:date;not null;column:payment_date" json:"payment_date"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null;column:payment_method" json:"payment_method"`
	PaymentNotes  *string       `gorm:"column:payment_notes" json:"payment_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
