// internals/features/academics/groups/dto/group_dto.go
package dto

import (
	"time"

	gModel "bimbelku_backend/internals/features/academics/groups/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateGroupRequest struct {
	GroupName        string   `json:"group_name" validate:"required,min=2,max=150"`
	GroupTeacherName *string  `json:"group_teacher_name" validate:"omitempty,max=100"`
	GroupMonthlyFee  *float64 `json:"group_monthly_fee" validate:"required,gte=0"`
}

func (r *CreateGroupRequest) ToModel() *gModel.GroupModel {
	return &gModel.GroupModel{
		GroupName:        r.GroupName,
		GroupTeacherName: r.GroupTeacherName,
		GroupMonthlyFee:  *r.GroupMonthlyFee,
	}
}

// UpdateGroupRequest: semantik replace, bukan patch. Seluruh field kontrak
// dikirim ulang; field opsional yang tidak dikirim di-reset ke NULL.
type UpdateGroupRequest struct {
	GroupName        string   `json:"group_name" validate:"required,min=2,max=150"`
	GroupTeacherName *string  `json:"group_teacher_name" validate:"omitempty,max=100"`
	GroupMonthlyFee  *float64 `json:"group_monthly_fee" validate:"required,gte=0"`
}

func (r *UpdateGroupRequest) ApplyToModel(m *gModel.GroupModel) {
	m.GroupName = r.GroupName
	m.GroupTeacherName = r.GroupTeacherName
	m.GroupMonthlyFee = *r.GroupMonthlyFee
}

/* ===================== RESPONSES ===================== */

type GroupResponse struct {
	GroupID          uuid.UUID `json:"group_id"`
	GroupName        string    `json:"group_name"`
	GroupTeacherName *string   `json:"group_teacher_name,omitempty"`
	GroupMonthlyFee  float64   `json:"group_monthly_fee"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromModel(m *gModel.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:          m.GroupID,
		GroupName:        m.GroupName,
		GroupTeacherName: m.GroupTeacherName,
		GroupMonthlyFee:  m.GroupMonthlyFee,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModels(ms []gModel.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
