package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	gModel "bimbelku_backend/internals/features/academics/groups/model"
	"bimbelku_backend/internals/features/academics/students/dto"
	sModel "bimbelku_backend/internals/features/academics/students/model"
	helper "bimbelku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// groupExists memastikan group yang direferensikan siswa memang ada.
func (h *StudentController) groupExists(groupID uuid.UUID) (bool, error) {
	var count int64
	err := h.DB.Model(&gModel.GroupModel{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count > 0, err
}

/* ======================= LIST ======================= */
// GET /students?group_id=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&sModel.StudentModel{})
	if v := c.Query("group_id"); v != "" {
		groupID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format group_id tidak valid")
		}
		q = q.Where("student_group_id = ?", groupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] list students: count: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var rows []sModel.StudentModel
	if err := q.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &p)
}

/* ======================= GET BY ID ======================= */
// GET /students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	var row sModel.StudentModel
	if err := h.DB.First(&row, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		log.Printf("[ERROR] get student: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&row))
}

/* ======================= CREATE ======================= */
// POST /students
// Group yang direferensikan harus ada; kalau tidak, 404 tanpa baris tertulis.
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	if req.StudentGroupID != nil {
		ok, err := h.groupExists(*req.StudentGroupID)
		if err != nil {
			log.Printf("[ERROR] create student: cek group: %v", err)
			return helper.JsonServerError(c, err.Error(), configs.IsProduction())
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "student_join_date", Message: "format tanggal harus YYYY-MM-DD"},
		})
	}

	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonCreated(c, "Student berhasil dibuat", dto.FromModel(m))
}

/* ======================= UPDATE ======================= */
// PUT /students/:id — replace seluruh baris, bukan patch.
func (h *StudentController) Update(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row sModel.StudentModel
	if err := h.DB.First(&row, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		log.Printf("[ERROR] update student: load: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	if req.StudentGroupID != nil {
		ok, err := h.groupExists(*req.StudentGroupID)
		if err != nil {
			log.Printf("[ERROR] update student: cek group: %v", err)
			return helper.JsonServerError(c, err.Error(), configs.IsProduction())
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
	}

	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonValidationError(c, []helper.FieldError{
			{Field: "student_join_date", Message: "format tanggal harus YYYY-MM-DD"},
		})
	}

	if err := h.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update student: save: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonUpdated(c, "Student berhasil diperbarui", dto.FromModel(&row))
}

/* ======================= DELETE ======================= */
// DELETE /students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	res := h.DB.Delete(&sModel.StudentModel{}, "student_id = ?", studentID)
	if res.Error != nil {
		log.Printf("[ERROR] delete student: %v", res.Error)
		return helper.JsonServerError(c, res.Error.Error(), configs.IsProduction())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Student berhasil dihapus", fiber.Map{"student_id": studentID})
}
