package controller_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	gModel "bimbelku_backend/internals/features/academics/groups/model"
	sModel "bimbelku_backend/internals/features/academics/students/model"
	"bimbelku_backend/internals/features/dashboard/route"
	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
	"bimbelku_backend/internals/testutil"
)

func newDashboardApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	app := fiber.New()
	route.DashboardRoutes(app, db)
	return app, db
}

func seedGroup(t *testing.T, db *gorm.DB, name string, fee float64) gModel.GroupModel {
	t.Helper()
	g := gModel.GroupModel{GroupName: name, GroupMonthlyFee: fee}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func seedStudent(t *testing.T, db *gorm.DB, name string, group *gModel.GroupModel, status sModel.PaymentStatus) sModel.StudentModel {
	t.Helper()
	s := sModel.StudentModel{
		StudentFullName:      name,
		StudentJoinDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StudentPaymentStatus: status,
	}
	if group != nil {
		s.StudentGroupID = &group.GroupID
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func seedPayment(t *testing.T, db *gorm.DB, student sModel.StudentModel, month string, amount float64) {
	t.Helper()
	p := pModel.PaymentModel{
		PaymentStudentID: student.StudentID,
		PaymentGroupID:   student.StudentGroupID,
		PaymentAmount:    amount,
		PaymentMonth:     month,
		PaymentDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod:    pModel.PaymentMethodCash,
	}
	require.NoError(t, db.Create(&p).Error)
}

func seedExpense(t *testing.T, db *gorm.DB, month string, amount float64) {
	t.Helper()
	e := eModel.ExpenseModel{
		ExpenseTitle:  "Operasional",
		ExpenseAmount: amount,
		ExpenseDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpenseMonth:  month,
	}
	require.NoError(t, db.Create(&e).Error)
}

func TestDashboardStats(t *testing.T) {
	app, db := newDashboardApp(t)

	g := seedGroup(t, db, "Matematika", 350000)
	paid := seedStudent(t, db, "Budi", &g, sModel.PaymentStatusPaid)
	seedStudent(t, db, "Siti", &g, sModel.PaymentStatusUnpaid)
	seedStudent(t, db, "Andi", nil, sModel.PaymentStatusUnpaid)

	seedPayment(t, db, paid, "2024-03", 350000)
	seedPayment(t, db, paid, "2024-03", 50000)
	seedPayment(t, db, paid, "2024-04", 350000) // bulan lain, tidak ikut
	seedExpense(t, db, "2024-03", 100000)

	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/stats?month=2024-03", nil)
	require.Equal(t, fiber.StatusOK, status)

	data := testutil.Data(t, body)
	assert.Equal(t, "2024-03", data["month"])
	assert.EqualValues(t, 400000, data["total_income"])
	assert.EqualValues(t, 100000, data["total_expenses"])
	assert.EqualValues(t, 300000, data["net_profit"])
	assert.EqualValues(t, 1, data["total_groups"])
	assert.EqualValues(t, 3, data["total_students"])
	assert.EqualValues(t, 1, data["paid_students"])
	assert.EqualValues(t, 2, data["unpaid_students"])
}

func TestDashboardStats_EmptyAndBadMonth(t *testing.T) {
	app, _ := newDashboardApp(t)

	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/stats?month=2024-01", nil)
	require.Equal(t, fiber.StatusOK, status)

	data := testutil.Data(t, body)
	assert.EqualValues(t, 0, data["total_income"])
	assert.EqualValues(t, 0, data["net_profit"])

	status, _ = testutil.PerformRequest(t, app, "GET", "/dashboard/stats?month=2024-1", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// Selalu 12 bucket berurutan Januari-Desember, nol untuk bulan kosong.
func TestDashboardMonthlyChart_TwelveBuckets(t *testing.T) {
	app, db := newDashboardApp(t)

	s := seedStudent(t, db, "Budi", nil, sModel.PaymentStatusPaid)
	seedPayment(t, db, s, "2024-03", 300000)
	seedPayment(t, db, s, "2024-03", 100000)
	seedExpense(t, db, "2024-03", 150000)
	seedExpense(t, db, "2024-07", 50000)
	seedPayment(t, db, s, "2023-03", 999999) // tahun lain, tidak ikut

	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/monthly-chart?year=2024", nil)
	require.Equal(t, fiber.StatusOK, status)

	chart := testutil.DataList(t, body)
	require.Len(t, chart, 12)

	for i, item := range chart {
		m := item.(map[string]any)
		assert.Equal(t, fmt.Sprintf("2024-%02d", i+1), m["month"])
	}

	march := chart[2].(map[string]any)
	assert.EqualValues(t, 400000, march["income"])
	assert.EqualValues(t, 150000, march["expenses"])
	assert.EqualValues(t, 250000, march["profit"])

	july := chart[6].(map[string]any)
	assert.EqualValues(t, 0, july["income"])
	assert.EqualValues(t, 50000, july["expenses"])
	assert.EqualValues(t, -50000, july["profit"])

	january := chart[0].(map[string]any)
	assert.EqualValues(t, 0, january["income"])
	assert.EqualValues(t, 0, january["expenses"])
}

func TestDashboardMonthlyChart_YearBounds(t *testing.T) {
	app, _ := newDashboardApp(t)

	for _, y := range []string{"abc", "999", "10000"} {
		status, _ := testutil.PerformRequest(t, app, "GET", "/dashboard/monthly-chart?year="+y, nil)
		assert.Equal(t, fiber.StatusBadRequest, status, y)
	}

	// tahun lampau valid: tetap 12 bucket nol
	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/monthly-chart?year=1999", nil)
	require.Equal(t, fiber.StatusOK, status)

	chart := testutil.DataList(t, body)
	require.Len(t, chart, 12)
	first := chart[0].(map[string]any)
	assert.Equal(t, "1999-01", first["month"])
	assert.EqualValues(t, 0, first["income"])
}

func TestDashboardUnpaidStudents(t *testing.T) {
	app, db := newDashboardApp(t)

	g := seedGroup(t, db, "Fisika", 400000)
	seedStudent(t, db, "Budi", &g, sModel.PaymentStatusPaid)
	older := sModel.StudentModel{
		StudentFullName:      "Siti",
		StudentGroupID:       &g.GroupID,
		StudentJoinDate:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		StudentPaymentStatus: sModel.PaymentStatusUnpaid,
	}
	require.NoError(t, db.Create(&older).Error)
	newer := sModel.StudentModel{
		StudentFullName:      "Andi",
		StudentJoinDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		StudentPaymentStatus: sModel.PaymentStatusUnpaid,
	}
	require.NoError(t, db.Create(&newer).Error)

	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/unpaid-students", nil)
	require.Equal(t, fiber.StatusOK, status)

	items := testutil.DataList(t, body)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "Andi", first["student_full_name"])
	_, hasGroup := first["group_name"]
	assert.False(t, hasGroup)

	second := items[1].(map[string]any)
	assert.Equal(t, "Siti", second["student_full_name"])
	assert.Equal(t, "Fisika", second["group_name"])
	assert.EqualValues(t, 400000, second["group_monthly_fee"])
}

func TestDashboardTopGroups(t *testing.T) {
	app, db := newDashboardApp(t)

	big := seedGroup(t, db, "Matematika", 350000)
	small := seedGroup(t, db, "Fisika", 400000)
	empty := seedGroup(t, db, "Kimia", 250000)

	seedStudent(t, db, "A", &big, sModel.PaymentStatusPaid)
	seedStudent(t, db, "B", &big, sModel.PaymentStatusUnpaid)
	seedStudent(t, db, "C", &big, sModel.PaymentStatusUnpaid)
	seedStudent(t, db, "D", &small, sModel.PaymentStatusPaid)

	status, body := testutil.PerformRequest(t, app, "GET", "/dashboard/top-groups", nil)
	require.Equal(t, fiber.StatusOK, status)

	items := testutil.DataList(t, body)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "Matematika", first["group_name"])
	assert.EqualValues(t, 3, first["total_students"])
	assert.EqualValues(t, 1, first["paid_students"])
	assert.InDelta(t, 33.33, first["payment_rate"].(float64), 0.001)

	second := items[1].(map[string]any)
	assert.Equal(t, "Fisika", second["group_name"])
	assert.EqualValues(t, 100, second["payment_rate"])

	// group tanpa siswa: rate 0, bukan NaN/null
	third := items[2].(map[string]any)
	assert.Equal(t, "Kimia", third["group_name"])
	assert.EqualValues(t, 0, third["total_students"])
	assert.EqualValues(t, 0, third["payment_rate"])
	assert.Equal(t, empty.GroupID.String(), third["group_id"])
}
