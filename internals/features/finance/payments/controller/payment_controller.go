package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	sModel "bimbelku_backend/internals/features/academics/students/model"
	"bimbelku_backend/internals/features/finance/payments/dto"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
	"bimbelku_backend/internals/features/finance/payments/service"
	helper "bimbelku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= LIST ======================= */
// GET /payments?month=&student_id=&group_id=
func (h *PaymentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&pModel.PaymentModel{})
	if v := c.Query("month"); v != "" {
		if !helper.ValidMonth(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format month harus YYYY-MM")
		}
		q = q.Where("payment_month = ?", v)
	}
	if v := c.Query("student_id"); v != "" {
		studentID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format student_id tidak valid")
		}
		q = q.Where("payment_student_id = ?", studentID)
	}
	if v := c.Query("group_id"); v != "" {
		groupID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format group_id tidak valid")
		}
		q = q.Where("payment_group_id = ?", groupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] list payments: count: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var rows []pModel.PaymentModel
	if err := q.
		Order("payment_date DESC, created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &p)
}

/* ======================= CREATE ======================= */
// POST /payments
// Insert payment + set siswa "paid" dalam satu transaksi (reconciler).
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !helper.ValidMonth(req.PaymentMonth) {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "payment_month", Message: "format bulan harus YYYY-MM"},
		})
	}

	var student sModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", req.PaymentStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		log.Printf("[ERROR] create payment: cari student: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	// group_id dibekukan dari group siswa saat ini
	m, err := req.ToModel(student.StudentGroupID)
	if err != nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "payment_date", Message: "format tanggal harus YYYY-MM-DD"},
		})
	}

	if err := service.CreateWithReconcile(h.DB, m); err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", dto.FromModel(m))
}

/* ======================= DELETE ======================= */
// DELETE /payments/:id
// Hapus payment + cek ulang status siswa dalam satu transaksi (reconciler).
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	if err := service.DeleteWithReconcile(h.DB, paymentID, helper.CurrentMonth()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment tidak ditemukan")
		}
		log.Printf("[ERROR] delete payment: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"payment_id": paymentID})
}
