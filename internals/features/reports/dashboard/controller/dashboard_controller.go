package controller

import (
	educationModel "tpims_backend/internals/features/education/model"
	profileModel "tpims_backend/internals/features/profiles/profile/model"
	dashboardDTO "tpims_backend/internals/features/reports/dashboard/dto"
	helper "tpims_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /dashboard/stats
// Headline counts plus per-location breakdowns for the admin landing page.
func (ctrl *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	var resp dashboardDTO.DashboardStatsResponse

	if err := ctrl.DB.Model(&profileModel.ProfileModel{}).
		Count(&resp.TotalProfiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count profiles")
	}

	// enrolled = distinct profiles whose latest education record says Enrolled
	if err := ctrl.DB.Model(&educationModel.EducationModel{}).
		Where(`education_id IN (
			SELECT MAX(education_id) FROM education_records GROUP BY profile_id
		) AND status = ?`, educationModel.StatusEnrolled).
		Count(&resp.TotalEnrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	for _, group := range []struct {
		column string
		dest   *[]dashboardDTO.LocationCount
	}{
		{"province", &resp.ByProvince},
		{"municipality", &resp.ByMunicipality},
		{"barangay", &resp.ByBarangay},
	} {
		var rows []dashboardDTO.LocationCount
		if err := ctrl.DB.Model(&profileModel.ProfileModel{}).
			Select(group.column + " AS name, COUNT(*) AS count").
			Where(group.column + " <> ''").
			Group(group.column).
			Order("count DESC").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build location breakdown")
		}
		*group.dest = rows
	}

	return helper.JsonOK(c, "Dashboard stats generated", resp)
}
