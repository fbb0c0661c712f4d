package route

import (
	dashboardController "tpims_backend/internals/features/reports/dashboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Mount example: DashboardAdminRoutes(app.Group("/api/a"), db)
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := r.Group("/dashboard")
	dashboard.Get("/stats", ctrl.GetDashboardStats) // GET /api/a/dashboard/stats
}
