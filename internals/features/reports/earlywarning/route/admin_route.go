package route

import (
	ewController "tpims_backend/internals/features/reports/earlywarning/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin routes: read-only report surface.
// Mount example: EarlyWarningAdminRoutes(app.Group("/api/a"), db)
func EarlyWarningAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := ewController.NewEarlyWarningController(db)

	reports := r.Group("/reports")
	reports.Get("/early-warning", ctrl.GetEarlyWarningReport) // GET /api/a/reports/early-warning
}
