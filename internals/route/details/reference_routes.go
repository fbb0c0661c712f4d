package details

import (
	geoRoute "tpims_backend/internals/features/geographic/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReferenceRoutes(r fiber.Router, db *gorm.DB) {
	geoRoute.GeographicRoutes(r, db)
}
