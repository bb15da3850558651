// internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	helper "bimbelku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// expense_month tidak pernah diterima dari input; selalu diturunkan
// dari expense_date.
type CreateExpenseRequest struct {
	ExpenseTitle    string   `json:"expense_title" validate:"required,min=2,max=150"`
	ExpenseAmount   *float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseCategory *string  `json:"expense_category" validate:"omitempty,max=100"`
	ExpenseDate     string   `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpenseNotes    *string  `json:"expense_notes" validate:"omitempty,max=500"`
}

func (r *CreateExpenseRequest) ToModel() (*eModel.ExpenseModel, error) {
	expenseDate, err := helper.ParseDate(r.ExpenseDate)
	if err != nil {
		return nil, err
	}
	return &eModel.ExpenseModel{
		ExpenseTitle:    r.ExpenseTitle,
		ExpenseAmount:   *r.ExpenseAmount,
		ExpenseCategory: r.ExpenseCategory,
		ExpenseDate:     expenseDate,
		ExpenseMonth:    helper.MonthOfDate(r.ExpenseDate),
		ExpenseNotes:    r.ExpenseNotes,
	}, nil
}

// UpdateExpenseRequest: semantik replace. expense_month dihitung ulang
// dari expense_date yang baru.
type UpdateExpenseRequest struct {
	ExpenseTitle    string   `json:"expense_title" validate:"required,min=2,max=150"`
	ExpenseAmount   *float64 `json:"expense_amount" validate:"required,gt=0"`
	ExpenseCategory *string  `json:"expense_category" validate:"omitempty,max=100"`
	ExpenseDate     string   `json:"expense_date" validate:"required,datetime=2006-01-02"`
	ExpenseNotes    *string  `json:"expense_notes" validate:"omitempty,max=500"`
}

func (r *UpdateExpenseRequest) ApplyToModel(m *eModel.ExpenseModel) error {
	expenseDate, err := helper.ParseDate(r.ExpenseDate)
	if err != nil {
		return err
	}
	m.ExpenseTitle = r.ExpenseTitle
	m.ExpenseAmount = *r.ExpenseAmount
	m.ExpenseCategory = r.ExpenseCategory
	m.ExpenseDate = expenseDate
	m.ExpenseMonth = helper.MonthOfDate(r.ExpenseDate)
	m.ExpenseNotes = r.ExpenseNotes
	return nil
}

/* ===================== RESPONSES ===================== */

type ExpenseResponse struct {
	ExpenseID       uuid.UUID `json:"expense_id"`
	ExpenseTitle    string    `json:"expense_title"`
	ExpenseAmount   float64   `json:"expense_amount"`
	ExpenseCategory *string   `json:"expense_category,omitempty"`
	ExpenseDate     string    `json:"expense_date"`
	ExpenseMonth    string    `json:"expense_month"`
	ExpenseNotes    *string   `json:"expense_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromModel(m *eModel.ExpenseModel) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       m.ExpenseID,
		ExpenseTitle:    m.ExpenseTitle,
		ExpenseAmount:   m.ExpenseAmount,
		ExpenseCategory: m.ExpenseCategory,
		ExpenseDate:     m.ExpenseDate.Format(helper.DateLayout),
		ExpenseMonth:    m.ExpenseMonth,
		ExpenseNotes:    m.ExpenseNotes,
		CreatedAt:       m.CreatedAt,
	}
}

func FromModels(ms []eModel.ExpenseModel) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
