package controller

import (
	"strings"

	ewDTO "tpims_backend/internals/features/reports/earlywarning/dto"
	ewRepo "tpims_backend/internals/features/reports/earlywarning/repository"
	ewService "tpims_backend/internals/features/reports/earlywarning/service"
	helper "tpims_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EarlyWarningController struct {
	Service *ewService.EarlyWarningService
}

func NewEarlyWarningController(db *gorm.DB) *EarlyWarningController {
	return &EarlyWarningController{
		Service: ewService.NewEarlyWarningService(ewRepo.NewGormRepository(db)),
	}
}

// GET /reports/early-warning?region=&province=&municipality=&barangay=
// Filters accept "all" (or empty) to mean no restriction on that level.
func (ctrl *EarlyWarningController) GetEarlyWarningReport(c *fiber.Ctx) error {
	filter := ewDTO.LocationFilter{
		Region:       strings.TrimSpace(c.Query("region")),
		Province:     strings.TrimSpace(c.Query("province")),
		Municipality: strings.TrimSpace(c.Query("municipality")),
		Barangay:     strings.TrimSpace(c.Query("barangay")),
	}

	cases, stats, err := ctrl.Service.Derive(c.Context(), filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build early warning report")
	}

	return helper.JsonOK(c, "Early warning report generated", fiber.Map{
		"cases": cases,
		"stats": stats,
	})
}
