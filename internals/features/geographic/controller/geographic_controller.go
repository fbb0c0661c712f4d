package controller

import (
	"strings"

	geoModel "tpims_backend/internals/features/geographic/model"
	helper "tpims_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GeographicController serves the PSGC reference hierarchy that the
// profile forms cascade through (region → province → municipality → barangay).
type GeographicController struct {
	DB *gorm.DB
}

func NewGeographicController(db *gorm.DB) *GeographicController {
	return &GeographicController{DB: db}
}

// GET /geo/regions
func (ctrl *GeographicController) ListRegions(c *fiber.Ctx) error {
	var rows []geoModel.RegionModel
	if err := ctrl.DB.Order("name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch regions")
	}
	return helper.JsonOK(c, "Regions found", rows)
}

// GET /geo/provinces?reg_code=
func (ctrl *GeographicController) ListProvinces(c *fiber.Ctx) error {
	q := ctrl.DB.Order("name ASC")
	if code := strings.TrimSpace(c.Query("reg_code")); code != "" {
		q = q.Where("reg_code = ?", code)
	}
	var rows []geoModel.ProvinceModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch provinces")
	}
	return helper.JsonOK(c, "Provinces found", rows)
}

// GET /geo/municipalities?prov_code=
func (ctrl *GeographicController) ListMunicipalities(c *fiber.Ctx) error {
	q := ctrl.DB.Order("name ASC")
	if code := strings.TrimSpace(c.Query("prov_code")); code != "" {
		q = q.Where("prov_code = ?", code)
	}
	var rows []geoModel.MunicipalityModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch municipalities")
	}
	return helper.JsonOK(c, "Municipalities found", rows)
}

// GET /geo/barangays?mun_code=
func (ctrl *GeographicController) ListBarangays(c *fiber.Ctx) error {
	q := ctrl.DB.Order("name ASC")
	if code := strings.TrimSpace(c.Query("mun_code")); code != "" {
		q = q.Where("mun_code = ?", code)
	}
	var rows []geoModel.BarangayModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch barangays")
	}
	return helper.JsonOK(c, "Barangays found", rows)
}
