// internals/features/academics/students/dto/student_dto.go
package dto

import (
	"time"

	sModel "bimbelku_backend/internals/features/academics/students/model"
	helper "bimbelku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentGroupID     *uuid.UUID `json:"student_group_id" validate:"omitempty"`
	StudentFullName    string     `json:"student_full_name" validate:"required,min=2,max=150"`
	StudentPhoneNumber *string    `json:"student_phone_number" validate:"omitempty,max=30"`
	StudentParentPhone *string    `json:"student_parent_phone" validate:"omitempty,max=30"`
	StudentJoinDate    string     `json:"student_join_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateStudentRequest) ToModel() (*sModel.StudentModel, error) {
	joinDate, err := helper.ParseDate(r.StudentJoinDate)
	if err != nil {
		return nil, err
	}
	return &sModel.StudentModel{
		StudentGroupID:       r.StudentGroupID,
		StudentFullName:      r.StudentFullName,
		StudentPhoneNumber:   r.StudentPhoneNumber,
		StudentParentPhone:   r.StudentParentPhone,
		StudentJoinDate:      joinDate,
		StudentPaymentStatus: sModel.PaymentStatusUnpaid,
	}, nil
}

// UpdateStudentRequest: semantik replace. Field opsional yang tidak dikirim
// di-reset ke NULL. payment_status dikelola reconciler; bila tidak dikirim,
// nilai lama dipertahankan.
type UpdateStudentRequest struct {
	StudentGroupID       *uuid.UUID `json:"student_group_id" validate:"omitempty"`
	StudentFullName      string     `json:"student_full_name" validate:"required,min=2,max=150"`
	StudentPhoneNumber   *string    `json:"student_phone_number" validate:"omitempty,max=30"`
	StudentParentPhone   *string    `json:"student_parent_phone" validate:"omitempty,max=30"`
	StudentJoinDate      string     `json:"student_join_date" validate:"required,datetime=2006-01-02"`
	StudentPaymentStatus *string    `json:"student_payment_status" validate:"omitempty,oneof=paid unpaid"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *sModel.StudentModel) error {
	joinDate, err := helper.ParseDate(r.StudentJoinDate)
	if err != nil {
		return err
	}
	m.StudentGroupID = r.StudentGroupID
	m.StudentFullName = r.StudentFullName
	m.StudentPhoneNumber = r.StudentPhoneNumber
	m.StudentParentPhone = r.StudentParentPhone
	m.StudentJoinDate = joinDate
	if r.StudentPaymentStatus != nil {
		m.StudentPaymentStatus = sModel.PaymentStatus(*r.StudentPaymentStatus)
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentGroupID       *uuid.UUID `json:"student_group_id,omitempty"`
	StudentFullName      string     `json:"student_full_name"`
	StudentPhoneNumber   *string    `json:"student_phone_number,omitempty"`
	StudentParentPhone   *string    `json:"student_parent_phone,omitempty"`
	StudentJoinDate      string     `json:"student_join_date"`
	StudentPaymentStatus string     `json:"student_payment_status"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromModel(m *sModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentGroupID:       m.StudentGroupID,
		StudentFullName:      m.StudentFullName,
		StudentPhoneNumber:   m.StudentPhoneNumber,
		StudentParentPhone:   m.StudentParentPhone,
		StudentJoinDate:      m.StudentJoinDate.Format(helper.DateLayout),
		StudentPaymentStatus: string(m.StudentPaymentStatus),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func FromModels(ms []sModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
