package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	educationDTO "tpims_backend/internals/features/education/dto"
	educationModel "tpims_backend/internals/features/education/model"
	helper "tpims_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EducationController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEducationController(db *gorm.DB) *EducationController {
	return &EducationController{DB: db, validate: validator.New()}
}

// LIST (joined with profile names)
// GET /education?status=&search=&page=&per_page=
func (ctrl *EducationController) ListEducationRecords(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Table("education_records").
		Joins("LEFT JOIN profiles ON profiles.profile_id = education_records.profile_id")

	if status := strings.TrimSpace(c.Query("status")); status != "" && !strings.EqualFold(status, "all") {
		tx = tx.Where("education_records.status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		kw := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("(LOWER(profiles.first_name) LIKE ? OR LOWER(profiles.last_name) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count education records")
	}

	var rows []struct {
		educationModel.EducationModel
		FirstName string
		LastName  string
	}
	if err := tx.
		Select("education_records.*, profiles.first_name, profiles.last_name").
		Order("education_records.education_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education records")
	}

	out := make([]educationDTO.EducationWithNameResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, educationDTO.EducationWithNameResponse{
			EducationResponse: educationDTO.FromEducationModel(row.EducationModel),
			FirstName:         row.FirstName,
			LastName:          row.LastName,
		})
	}

	return helper.JsonList(c, "Education records fetched successfully", out, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage, len(out)))
}

// HISTORY per profile (newest first)
// GET /education/profile/:profileId
func (ctrl *EducationController) GetEducationHistory(c *fiber.Ctx) error {
	profileID, err := parseID(c, "profileId")
	if err != nil {
		return err
	}

	var rows []educationModel.EducationModel
	if err := ctrl.DB.
		Where("profile_id = ?", profileID).
		Order("education_id DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education history")
	}

	return helper.JsonOK(c, "Education history found", educationDTO.FromEducationModels(rows))
}

// CREATE
// POST /education
func (ctrl *EducationController) CreateEducationRecord(c *fiber.Ctx) error {
	var req educationDTO.CreateEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
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

	var exists bool
	if err := ctrl.DB.Raw(
		"SELECT EXISTS(SELECT 1 FROM profiles WHERE profile_id = ?)", req.ProfileID,
	).Scan(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check profile")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create education record")
	}

	return helper.JsonCreated(c, "Education record created", educationDTO.FromEducationModel(m))
}

// UPDATE
// PUT /education/:id
func (ctrl *EducationController) UpdateEducationRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req educationDTO.UpdateEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var m educationModel.EducationModel
	if err := ctrl.DB.First(&m, "education_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Education record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education record")
	}

	m.ProgramType = req.ProgramType
	m.Course = req.Course
	m.Status = req.Status
	m.Institution = req.Institution
	m.GradeLevel = req.GradeLevel
	m.Date = nil
	if strings.TrimSpace(req.Date) != "" {
		t, perr := time.Parse("2006-01-02", req.Date)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date: "+req.Date)
		}
		m.Date = &t
	}

	if err := ctrl.DB.Model(&educationModel.EducationModel{}).
		Where("education_id = ?", id).
		Select("*").Omit("education_id", "profile_id", "created_at").
		Updates(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update education record")
	}

	return helper.JsonUpdated(c, "Education record updated", educationDTO.FromEducationModel(m))
}

// DELETE
// DELETE /education/:id
func (ctrl *EducationController) DeleteEducationRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Delete(&educationModel.EducationModel{}, "education_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete education record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Education record not found")
	}

	return helper.JsonDeleted(c, "Education record deleted", fiber.Map{"education_id": id})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params(param)), 10, 64)
	if err != nil || id <= 0 {
		return 0, helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
