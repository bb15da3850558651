package controller_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	"bimbelku_backend/internals/features/finance/expenses/route"
	"bimbelku_backend/internals/testutil"
)

func newExpenseApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	app := fiber.New()
	route.ExpenseRoutes(app, db)
	return app, db
}

// expense_month selalu diturunkan dari expense_date, input diabaikan.
func TestExpenseCreate_DerivesMonth(t *testing.T) {
	app, db := newExpenseApp(t)

	status, body := testutil.PerformRequest(t, app, "POST", "/expenses", fiber.Map{
		"expense_title":  "Listrik kantor",
		"expense_amount": 500000,
		"expense_date":   "2024-03-15",
		"expense_month":  "1999-01",
	})
	require.Equal(t, fiber.StatusCreated, status)

	created := testutil.Data(t, body)
	assert.Equal(t, "2024-03", created["expense_month"])
	assert.Equal(t, "2024-03-15", created["expense_date"])

	var row eModel.ExpenseModel
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "2024-03", row.ExpenseMonth)
}

func TestExpenseCreate_Validation(t *testing.T) {
	app, _ := newExpenseApp(t)

	status, body := testutil.PerformRequest(t, app, "POST", "/expenses", fiber.Map{
		"expense_title":  "X",
		"expense_amount": 0,
		"expense_date":   "2024-02-30",
	})
	require.Equal(t, fiber.StatusBadRequest, status)

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 3)
	assert.Equal(t, "expense_title", errs[0].(map[string]any)["field"])
	assert.Equal(t, "expense_amount", errs[1].(map[string]any)["field"])
	assert.Equal(t, "expense_date", errs[2].(map[string]any)["field"])
}

// Update memindah tanggal ke bulan lain -> expense_month ikut pindah.
func TestExpenseUpdate_RecomputesMonth(t *testing.T) {
	app, db := newExpenseApp(t)

	_, body := testutil.PerformRequest(t, app, "POST", "/expenses", fiber.Map{
		"expense_title":    "Sewa gedung",
		"expense_amount":   2000000,
		"expense_category": "operasional",
		"expense_date":     "2024-03-15",
	})
	expenseID := testutil.Data(t, body)["expense_id"].(string)

	status, body := testutil.PerformRequest(t, app, "PUT", "/expenses/"+expenseID, fiber.Map{
		"expense_title":  "Sewa gedung",
		"expense_amount": 2000000,
		"expense_date":   "2024-04-01",
	})
	require.Equal(t, fiber.StatusOK, status)

	updated := testutil.Data(t, body)
	assert.Equal(t, "2024-04", updated["expense_month"])
	// replace: category yang tidak dikirim ulang menjadi NULL
	_, hasCategory := updated["expense_category"]
	assert.False(t, hasCategory)

	var row eModel.ExpenseModel
	require.NoError(t, db.First(&row, "expense_id = ?", expenseID).Error)
	assert.Equal(t, "2024-04", row.ExpenseMonth)
	assert.Nil(t, row.ExpenseCategory)
}

func TestExpenseList_FilterByMonth(t *testing.T) {
	app, _ := newExpenseApp(t)

	for _, date := range []string{"2024-03-01", "2024-03-20", "2024-04-02"} {
		status, _ := testutil.PerformRequest(t, app, "POST", "/expenses", fiber.Map{
			"expense_title":  "Operasional",
			"expense_amount": 100000,
			"expense_date":   date,
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, body := testutil.PerformRequest(t, app, "GET", "/expenses?month=2024-03", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, testutil.DataList(t, body), 2)

	status, _ = testutil.PerformRequest(t, app, "GET", "/expenses?month=03-2024", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExpenseDeleteAndNotFound(t *testing.T) {
	app, db := newExpenseApp(t)

	_, body := testutil.PerformRequest(t, app, "POST", "/expenses", fiber.Map{
		"expense_title":  "ATK",
		"expense_amount": 75000,
		"expense_date":   "2024-05-02",
	})
	expenseID := testutil.Data(t, body)["expense_id"].(string)

	status, _ := testutil.PerformRequest(t, app, "DELETE", "/expenses/"+expenseID, nil)
	require.Equal(t, fiber.StatusOK, status)

	var count int64
	require.NoError(t, db.Model(&eModel.ExpenseModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	status, _ = testutil.PerformRequest(t, app, "DELETE", "/expenses/"+expenseID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = testutil.PerformRequest(t, app, "PUT", "/expenses/"+uuid.New().String(), fiber.Map{
		"expense_title":  "ATK",
		"expense_amount": 75000,
		"expense_date":   "2024-05-02",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}
