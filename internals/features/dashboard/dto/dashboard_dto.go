// internals/features/dashboard/dto/dashboard_dto.go
package dto

import "github.com/google/uuid"

type StatsResponse struct {
	Month          string  `json:"month"`
	TotalIncome    float64 `json:"total_income"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
	TotalGroups    int64   `json:"total_groups"`
	TotalStudents  int64   `json:"total_students"`
	PaidStudents   int64   `json:"paid_students"`
	UnpaidStudents int64   `json:"unpaid_students"`
}

// MonthlyChartItem: satu bucket bulan kalender. Chart selalu berisi
// 12 entri Januari→Desember, nol untuk bulan tanpa data.
type MonthlyChartItem struct {
	Month    string  `json:"month"` // YYYY-MM
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type UnpaidStudentItem struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentFullName    string    `json:"student_full_name"`
	StudentPhoneNumber *string   `json:"student_phone_number,omitempty"`
	StudentParentPhone *string   `json:"student_parent_phone,omitempty"`
	StudentJoinDate    string    `json:"student_join_date"`
	GroupName          *string   `json:"group_name,omitempty"`
	GroupMonthlyFee    *float64  `json:"group_monthly_fee,omitempty"`
}

type TopGroupItem struct {
	GroupID         uuid.UUID `json:"group_id"`
	GroupName       string    `json:"group_name"`
	GroupMonthlyFee float64   `json:"group_monthly_fee"`
	TotalStudents   int64     `json:"total_students"`
	PaidStudents    int64     `json:"paid_students"`
	// paid/total × 100, dibulatkan 2 desimal; 0 untuk group tanpa siswa.
	PaymentRate float64 `json:"payment_rate"`
}
