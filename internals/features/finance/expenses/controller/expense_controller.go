package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/finance/expenses/dto"
	eModel "bimbelku_backend/internals/features/finance/expenses/model"
	helper "bimbelku_backend/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

/* ======================= LIST ======================= */
// GET /expenses?month=
func (h *ExpenseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&eModel.ExpenseModel{})
	if v := c.Query("month"); v != "" {
		if !helper.ValidMonth(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
		}
		q = q.Where("expense_month = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] list expenses: count: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var rows []eModel.ExpenseModel
	if err := q.
		Order("expense_date DESC, created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list expenses: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &p)
}

/* ======================= CREATE ======================= */
// POST /expenses
func (h *ExpenseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "expense_date", Message: "format tanggal harus YYYY-MM-DD"},
		})
	}

	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create expense: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", dto.FromModel(m))
}

/* ======================= UPDATE ======================= */
// PUT /expenses/:id — replace seluruh baris; expense_month dihitung ulang.
func (h *ExpenseController) Update(c *fiber.Ctx) error {
	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row eModel.ExpenseModel
	if err := h.DB.First(&row, "expense_id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense tidak ditemukan")
		}
		log.Printf("[ERROR] update expense: load: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "expense_date", Message: "format tanggal harus YYYY-MM-DD"},
		})
	}

	if err := h.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update expense: save: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", dto.FromModel(&row))
}

/* ======================= DELETE ======================= */
// DELETE /expenses/:id
func (h *ExpenseController) Delete(c *fiber.Ctx) error {
	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	res := h.DB.Delete(&eModel.ExpenseModel{}, "expense_id = ?", expenseID)
	if res.Error != nil {
		log.Printf("[ERROR] delete expense: %v", res.Error)
		return helper.JsonServerError(c, res.Error.Error(), configs.IsProduction())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"expense_id": expenseID})
}
