package controller

import (
	"errors"
	"strconv"
	"strings"

	educationModel "tpims_backend/internals/features/education/model"
	healthModel "tpims_backend/internals/features/health/maternal/model"
	profileDTO "tpims_backend/internals/features/profiles/profile/dto"
	profileModel "tpims_backend/internals/features/profiles/profile/model"
	profileRepo "tpims_backend/internals/features/profiles/profile/repository"
	profileService "tpims_backend/internals/features/profiles/profile/service"
	helper "tpims_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB       *gorm.DB
	Service  *profileService.CompleteProfileService
	validate *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		DB:       db,
		Service:  profileService.NewCompleteProfileService(profileRepo.NewGormRepository(db)),
		validate: validator.New(),
	}
}

// LIST
// GET /profiles?search=&region=&province=&municipality=&barangay=&page=&per_page=
func (ctrl *ProfileController) ListProfiles(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&profileModel.ProfileModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		kw := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)", kw, kw)
	}
	for col, val := range map[string]string{
		"region":       c.Query("region"),
		"province":     c.Query("province"),
		"municipality": c.Query("municipality"),
		"barangay":     c.Query("barangay"),
	} {
		val = strings.TrimSpace(val)
		if val != "" && !strings.EqualFold(val, "all") {
			tx = tx.Where(col+" = ?", val)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count profiles")
	}

	var rows []profileModel.ProfileModel
	if err := tx.
		Order("profile_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profiles")
	}

	return helper.JsonList(c,
		"Profiles fetched successfully",
		profileDTO.FromProfileModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage, len(rows)),
	)
}

// DETAIL
// GET /profiles/:id → profile + partner + latest health record
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	id, err := parseProfileID(c)
	if err != nil {
		return err
	}

	var profile profileModel.ProfileModel
	if err := ctrl.DB.First(&profile, "profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	resp := profileDTO.ProfileDetailResponse{
		Profile: profileDTO.FromProfileModel(profile),
	}

	var partner profileModel.PartnerModel
	if err := ctrl.DB.First(&partner, "profile_id = ?", id).Error; err == nil {
		pr := profileDTO.FromPartnerModel(partner)
		resp.Partner = &pr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partner")
	}

	var health healthModel.MaternalHealthModel
	if err := ctrl.DB.
		Where("profile_id = ?", id).
		Order("health_id DESC").
		First(&health).Error; err == nil {
		hr := profileDTO.FromHealthModel(health)
		resp.Health = &hr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch health record")
	}

	return helper.JsonOK(c, "Profile detail found", resp)
}

// CREATE (composite)
// POST /profiles/complete
func (ctrl *ProfileController) CreateCompleteProfile(c *fiber.Ctx) error {
	var req profileDTO.SaveCompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	profile, health, partner, err := req.ToModels()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	id, err := ctrl.Service.CreateComplete(c.Context(), &profile, &health, &partner)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
	}

	return helper.JsonCreated(c, "Profile created", fiber.Map{"profile_id": id})
}

// EDIT (composite)
// PUT /profiles/:id/complete
func (ctrl *ProfileController) EditCompleteProfile(c *fiber.Ctx) error {
	id, err := parseProfileID(c)
	if err != nil {
		return err
	}

	var req profileDTO.SaveCompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	profile, health, partner, err := req.ToModels()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if err := ctrl.Service.EditComplete(c.Context(), id, &profile, &health, &partner); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated", fiber.Map{"profile_id": id})
}

// DELETE
// DELETE /profiles/:id — removes the profile and its dependent records
func (ctrl *ProfileController) DeleteProfile(c *fiber.Ctx) error {
	id, err := parseProfileID(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var profile profileModel.ProfileModel
		if err := tx.First(&profile, "profile_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
		}

		// dependents first: visit schedules hang off health records
		var healthIDs []int64
		if err := tx.Model(&healthModel.MaternalHealthModel{}).
			Where("profile_id = ?", id).
			Pluck("health_id", &healthIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch health records")
		}
		if len(healthIDs) > 0 {
			if err := tx.Where("health_id IN ?", healthIDs).
				Delete(&healthModel.VisitScheduleModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete visit schedules")
			}
		}
		if err := tx.Where("profile_id = ?", id).
			Delete(&healthModel.MaternalHealthModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete health records")
		}
		if err := tx.Where("profile_id = ?", id).
			Delete(&educationModel.EducationModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete education records")
		}
		if err := tx.Where("profile_id = ?", id).
			Delete(&profileModel.PartnerModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete partner")
		}
		if err := tx.Delete(&profileModel.ProfileModel{}, "profile_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete profile")
		}
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete profile")
	}

	return helper.JsonDeleted(c, "Profile deleted", fiber.Map{"profile_id": id})
}

func parseProfileID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, helper.JsonError(c, fiber.StatusBadRequest, "Invalid profile id")
	}
	return id, nil
}
