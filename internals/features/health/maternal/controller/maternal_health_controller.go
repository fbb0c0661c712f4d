package controller

import (
	"errors"
	"strconv"
	"strings"

	healthDTO "tpims_backend/internals/features/health/maternal/dto"
	healthModel "tpims_backend/internals/features/health/maternal/model"
	helper "tpims_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaternalHealthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewMaternalHealthController(db *gorm.DB) *MaternalHealthController {
	return &MaternalHealthController{DB: db, validate: validator.New()}
}

// HISTORY per profile (newest first)
// GET /health/profile/:profileId
func (ctrl *MaternalHealthController) GetHealthHistory(c *fiber.Ctx) error {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		return err
	}

	var rows []healthModel.MaternalHealthModel
	if err := ctrl.DB.
		Where("profile_id = ?", profileID).
		Order("health_id DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch health history")
	}

	return helper.JsonOK(c, "Health history found", healthDTO.FromHealthModels(rows))
}

// CREATE (follow-up record; the first record is made with the profile)
// POST /health
func (ctrl *MaternalHealthController) CreateHealthRecord(c *fiber.Ctx) error {
	var req healthDTO.CreateHealthRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var exists bool
	if err := ctrl.DB.Raw(
		"SELECT EXISTS(SELECT 1 FROM profiles WHERE profile_id = ?)", req.ProfileID,
	).Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check profile")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	m := req.ToModel()
	// follow-up records get a fresh id past every assigned health_id
	var maxID int64
	if err := ctrl.DB.Model(&healthModel.MaternalHealthModel{}).
		Select("COALESCE(MAX(health_id), 0)").
		Scan(&maxID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign health id")
	}
	m.HealthID = maxID + 1

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create health record")
	}

	return helper.JsonCreated(c, "Health record created", healthDTO.FromHealthModel(m))
}

/* =========================================================
   VISIT SCHEDULES
   ========================================================= */

// LIST per health record
// GET /visits/health/:healthId
func (ctrl *MaternalHealthController) GetVisitSchedules(c *fiber.Ctx) error {
	healthID, err := parseID(c, "healthId")
	if err != nil {
		return err
	}

	var rows []healthModel.VisitScheduleModel
	if err := ctrl.DB.
		Where("health_id = ?", healthID).
		Order("visit_id DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch visit schedules")
	}

	return helper.JsonOK(c, "Visit schedules found", healthDTO.FromVisitModels(rows))
}

// CREATE
// POST /visits
func (ctrl *MaternalHealthController) CreateVisitSchedule(c *fiber.Ctx) error {
	var req healthDTO.SaveVisitScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var exists bool
	if err := ctrl.DB.Raw(
		"SELECT EXISTS(SELECT 1 FROM maternal_health_records WHERE health_id = ?)", req.HealthID,
	).Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check health record")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Health record not found")
	}

	m, err := req.ToModel()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create visit schedule")
	}

	return helper.JsonCreated(c, "Visit schedule created", healthDTO.FromVisitModel(m))
}

// UPDATE
// PUT /visits/:id
func (ctrl *MaternalHealthController) UpdateVisitSchedule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req healthDTO.SaveVisitScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	res := ctrl.DB.Model(&healthModel.VisitScheduleModel{}).
		Where("visit_id = ?", id).
		Select("*").Omit("visit_id", "health_id", "created_at").
		Updates(&m)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update visit schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visit schedule not found")
	}

	m.VisitID = id
	return helper.JsonUpdated(c, "Visit schedule updated", healthDTO.FromVisitModel(m))
}

// DELETE
// DELETE /visits/:id
func (ctrl *MaternalHealthController) DeleteVisitSchedule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Delete(&healthModel.VisitScheduleModel{}, "visit_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete visit schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visit schedule not found")
	}

	return helper.JsonDeleted(c, "Visit schedule deleted", fiber.Map{"visit_id": id})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params(param)), 10, 64)
	if err != nil || id <= 0 {
		return 0, helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
