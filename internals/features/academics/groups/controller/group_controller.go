package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/features/academics/groups/dto"
	gModel "bimbelku_backend/internals/features/academics/groups/model"
	helper "bimbelku_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

/* ======================= LIST ======================= */
// GET /groups
func (h *GroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&gModel.GroupModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] list groups: count: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	var rows []gModel.GroupModel
	if err := h.DB.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list groups: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &p)
}

/* ======================= GET BY ID ======================= */
// GET /groups/:id
func (h *GroupController) GetByID(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	var row gModel.GroupModel
	if err := h.DB.First(&row, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		log.Printf("[ERROR] get group: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonOK(c, "ok", dto.FromModel(&row))
}

/* ======================= CREATE ======================= */
// POST /groups
func (h *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create group: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonCreated(c, "Group berhasil dibuat", dto.FromModel(m))
}

/* ======================= UPDATE ======================= */
// PUT /groups/:id — replace seluruh baris, bukan patch.
func (h *GroupController) Update(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var row gModel.GroupModel
	if err := h.DB.First(&row, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		log.Printf("[ERROR] update group: load: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	req.ApplyToModel(&row)
	// Save menulis semua kolom sehingga field opsional yang nil benar-benar NULL.
	if err := h.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update group: save: %v", err)
		return helper.JsonServerError(c, err.Error(), configs.IsProduction())
	}

	return helper.JsonUpdated(c, "Group berhasil diperbarui", dto.FromModel(&row))
}

/* ======================= DELETE ======================= */
// DELETE /groups/:id
func (h *GroupController) Delete(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format id tidak valid")
	}

	res := h.DB.Delete(&gModel.GroupModel{}, "group_id = ?", groupID)
	if res.Error != nil {
		log.Printf("[ERROR] delete group: %v", res.Error)
		return helper.JsonServerError(c, res.Error.Error(), configs.IsProduction())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Group berhasil dihapus", fiber.Map{"group_id": groupID})
}
