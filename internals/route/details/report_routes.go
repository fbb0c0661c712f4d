package details

import (
	dashboardRoute "tpims_backend/internals/features/reports/dashboard/route"
	earlyWarningRoute "tpims_backend/internals/features/reports/earlywarning/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Reports are admin-only: dashboards and the early warning list expose
// aggregated personal data.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardAdminRoutes(r, db)
	earlyWarningRoute.EarlyWarningAdminRoutes(r, db)
}
