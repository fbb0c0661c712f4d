package details

import (
	profileRoute "tpims_backend/internals/features/profiles/profile/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	profileRoute.ProfileAdminRoutes(r, db)
}

func ProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	profileRoute.ProfileUserRoutes(r, db)
}
