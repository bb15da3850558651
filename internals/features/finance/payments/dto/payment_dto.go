// internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	pModel "bimbelku_backend/internals/features/finance/payments/model"
	helper "bimbelku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

// Pembayaran immutable: hanya ada create, tidak ada update.
type CreatePaymentRequest struct {
	PaymentStudentID uuid.UUID `json:"payment_student_id" validate:"required"`
	PaymentAmount    *float64  `json:"payment_amount" validate:"required,gt=0"`
	PaymentMonth     string    `json:"payment_month" validate:"required"`
	PaymentDate      string    `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod    string    `json:"payment_method" validate:"required,oneof=cash card transfer"`
	PaymentNotes     *string   `json:"payment_notes" validate:"omitempty,max=500"`
}

func (r *CreatePaymentRequest) ToModel(groupID *uuid.UUID) (*pModel.PaymentModel, error) {
	paymentDate, err := helper.ParseDate(r.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &pModel.PaymentModel{
		PaymentStudentID: r.PaymentStudentID,
		PaymentGroupID:   groupID,
		PaymentAmount:    *r.PaymentAmount,
		PaymentMonth:     r.PaymentMonth,
		PaymentDate:      paymentDate,
		PaymentMethod:    pModel.PaymentMethod(r.PaymentMethod),
		PaymentNotes:     r.PaymentNotes,
	}, nil
}

/* ===================== RESPONSES ===================== */

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	PaymentGroupID   *uuid.UUID `json:"payment_group_id,omitempty"`
	PaymentAmount    float64    `json:"payment_amount"`
	PaymentMonth     string     `json:"payment_month"`
	PaymentDate      string     `json:"payment_date"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentNotes     *string    `json:"payment_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromModel(m *pModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentStudentID: m.PaymentStudentID,
		PaymentGroupID:   m.PaymentGroupID,
		PaymentAmount:    m.PaymentAmount,
		PaymentMonth:     m.PaymentMonth,
		PaymentDate:      m.PaymentDate.Format(helper.DateLayout),
		PaymentMethod:    string(m.PaymentMethod),
		PaymentNotes:     m.PaymentNotes,
		CreatedAt:        m.CreatedAt,
	}
}

func FromModels(ms []pModel.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
