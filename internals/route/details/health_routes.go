package details

import (
	healthRoute "tpims_backend/internals/features/health/maternal/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HealthAdminRoutes(r fiber.Router, db *gorm.DB) {
	healthRoute.MaternalHealthAdminRoutes(r, db)
}

func HealthUserRoutes(r fiber.Router, db *gorm.DB) {
	healthRoute.MaternalHealthUserRoutes(r, db)
}
