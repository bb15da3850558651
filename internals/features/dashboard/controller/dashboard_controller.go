package controller

import (
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	gModel "bimbelku_backend/internals/features/academics/groups/model"
	sModel "bimbelku_backend/internals/features/academics/students/model"
	"bimbelku_backend/internals/features/dashboard/dto"
	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
	helper "bimbelku_backend/internals/helpers"
)

// DashboardController: rollup read-only, tanpa mutasi.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* ======================= STATS ======================= */
// GET /dashboard/stats?month= (default: bulan berjalan)
func (h *DashboardController) Stats(c *fiber.Ctx) error {
	month := c.Query("month", helper.CurrentMonth())
	if !helper.ValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
	}

	var income float64
	if err := h.DB.Model(&pModel.PaymentModel{}).
		Where("payment_month = ?", month).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&income).Error; err != nil {
		log.Printf("[ERROR] dashboard stats: income: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var expenses float64
	if err := h.DB.Model(&eModel.ExpenseModel{}).
		Where("expense_month = ?", month).
		Select("COALESCE(SUM(expense_amount), 0)").
		Scan(&expenses).Error; err != nil {
		log.Printf("[ERROR] dashboard stats: expenses: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var totalGroups, totalStudents, paidStudents, unpaidStudents int64
	if err := h.DB.Model(&gModel.GroupModel{}).Count(&totalGroups).Error; err != nil {
		log.Printf("[ERROR] dashboard stats: groups: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}
	if err := h.DB.Model(&sModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		log.Printf("[ERROR] dashboard stats: students: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}
	if err := h.DB.Model(&sModel.StudentModel{}).
		Where("student_payment_status = ?", sModel.PaymentStatusPaid).
		Count(&paidStudents).Error; err != nil {
		log.Printf("[ERROR] dashboard stats: paid: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}
	unpaidStudents = totalStudents - paidStudents

	return helper.JsonOK(c, "ok", dto.StatsResponse{
		Month:          month,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetProfit:      income - expenses,
		TotalGroups:    totalGroups,
		TotalStudents:  totalStudents,
		PaidStudents:   paidStudents,
		UnpaidStudents: unpaidStudents,
	})
}

/* ======================= MONTHLY CHART ======================= */
// GET /dashboard/monthly-chart?year= (default: tahun berjalan)
// Selalu 12 bucket Januari→Desember, nol untuk bulan tanpa baris.
func (h *DashboardController) MonthlyChart(c *fiber.Ctx) error {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1000 || y > 9999 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format year harus 4 digit")
		}
		year = y
	}

	type monthTotal struct {
		Month string
		Total float64
	}

	yearPrefix := helper.MonthToken(year, 1)[:4] + "-%"

	var incomeRows []monthTotal
	if err := h.DB.Model(&pModel.PaymentModel{}).
		Select("payment_month AS month, COALESCE(SUM(payment_amount), 0) AS total").
		Where("payment_month LIKE ?", yearPrefix).
		Group("payment_month").
		Scan(&incomeRows).Error; err != nil {
		log.Printf("[ERROR] monthly chart: income: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var expenseRows []monthTotal
	if err := h.DB.Model(&eModel.ExpenseModel{}).
		Select("expense_month AS month, COALESCE(SUM(expense_amount), 0) AS total").
		Where("expense_month LIKE ?", yearPrefix).
		Group("expense_month").
		Scan(&expenseRows).Error; err != nil {
		log.Printf("[ERROR] monthly chart: expenses: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	incomeByMonth := make(map[string]float64, len(incomeRows))
	for _, r := range incomeRows {
		incomeByMonth[r.Month] = r.Total
	}
	expenseByMonth := make(map[string]float64, len(expenseRows))
	for _, r := range expenseRows {
		expenseByMonth[r.Month] = r.Total
	}

	chart := make([]dto.MonthlyChartItem, 0, 12)
	for m := 1; m <= 12; m++ {
		token := helper.MonthToken(year, m)
		income := incomeByMonth[token]
		expenses := expenseByMonth[token]
		chart = append(chart, dto.MonthlyChartItem{
			Month:    token,
			Income:   income,
			Expenses: expenses,
			Profit:   income - expenses,
		})
	}

	return helper.JsonOK(c, "ok", chart)
}

/* ======================= UNPAID STUDENTS ======================= */
// GET /dashboard/unpaid-students — terbaru bergabung dulu.
func (h *DashboardController) UnpaidStudents(c *fiber.Ctx) error {
	type unpaidRow struct {
		StudentID          uuid.UUID
		StudentFullName    string
		StudentPhoneNumber *string
		StudentParentPhone *string
		StudentJoinDate    time.Time
		GroupName          *string
		GroupMonthlyFee    *float64
	}

	var rows []unpaidRow
	if err := h.DB.Raw(`
		SELECT s.student_id,
		       s.student_full_name,
		       s.student_phone_number,
		       s.student_parent_phone,
		       s.student_join_date,
		       g.group_name,
		       g.group_monthly_fee
		FROM students s
		LEFT JOIN groups g ON g.group_id = s.student_group_id
		WHERE s.student_payment_status = 'unpaid'
		ORDER BY s.student_join_date DESC, s.created_at DESC
	`).Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] unpaid students: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	items := make([]dto.UnpaidStudentItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.UnpaidStudentItem{
			StudentID:          r.StudentID,
			StudentFullName:    r.StudentFullName,
			StudentPhoneNumber: r.StudentPhoneNumber,
			StudentParentPhone: r.StudentParentPhone,
			StudentJoinDate:    r.StudentJoinDate.Format(helper.DateLayout),
			GroupName:          r.GroupName,
			GroupMonthlyFee:    r.GroupMonthlyFee,
		})
	}

	return helper.JsonOK(c, "ok", items)
}

/* ======================= TOP GROUPS ======================= */
// GET /dashboard/top-groups — 10 teratas: jumlah siswa desc, lalu
// payment rate desc. Rate = paid/total×100 (0 untuk group kosong).
func (h *DashboardController) TopGroups(c *fiber.Ctx) error {
	type topRow struct {
		GroupID         uuid.UUID
		GroupName       string
		GroupMonthlyFee float64
		TotalStudents   int64
		PaidStudents    int64
	}

	var rows []topRow
	if err := h.DB.Raw(`
		SELECT g.group_id,
		       g.group_name,
		       g.group_monthly_fee,
		       COUNT(s.student_id) AS total_students,
		       COUNT(CASE WHEN s.student_payment_status = 'paid' THEN 1 END) AS paid_students
		FROM groups g
		LEFT JOIN students s ON s.student_group_id = g.group_id
		GROUP BY g.group_id, g.group_name, g.group_monthly_fee
		ORDER BY total_students DESC,
		         CASE WHEN COUNT(s.student_id) = 0 THEN 0
		              ELSE COUNT(CASE WHEN s.student_payment_status = 'paid' THEN 1 END) * 100.0 / COUNT(s.student_id)
		         END DESC
		LIMIT 10
	`).Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] top groups: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	items := make([]dto.TopGroupItem, 0, len(rows))
	for _, r := range rows {
		rate := 0.0
		if r.TotalStudents > 0 {
			rate = math.Round(float64(r.PaidStudents)/float64(r.TotalStudents)*100*100) / 100
		}
		items = append(items, dto.TopGroupItem{
			GroupID:         r.GroupID,
			GroupName:       r.GroupName,
			GroupMonthlyFee: r.GroupMonthlyFee,
			TotalStudents:   r.TotalStudents,
			PaidStudents:    r.PaidStudents,
			PaymentRate:     rate,
		})
	}

	return helper.JsonOK(c, "ok", items)
}
