// internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseModel struct {
	ExpenseID uuid.UUID `gorm:"type:uuid;primaryKey;column:expense_id" json:"expense_id"`

	ExpenseTitle    string  `gorm:"type:varchar(150);not null;column:expense_title" json:"expense_title"`
	ExpenseAmount   float64 `gorm:"type:numeric(12,2);not null;column:expense_amount" json:"expense_amount"`
	ExpenseCategory *string `gorm:"type:varchar(100);column:expense_category" json:"expense_category,omitempty"`

	ExpenseDate time.Time `gorm:"type:date;not null;column:expense_date" json:"expense_date"`
	// Selalu 7 karakter pertama dari expense_date; dihitung server-side,
	// ikut dihitung ulang setiap expense_date berubah.
	ExpenseMonth string  `gorm:"type:varchar(7);not null;column:expense_month" json:"expense_month"`
	ExpenseNotes *string `gorm:"column:expense_notes" json:"expense_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	return nil
}
