package details

import (
	educationRoute "tpims_backend/internals/features/education/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EducationAdminRoutes(r fiber.Router, db *gorm.DB) {
	educationRoute.EducationAdminRoutes(r, db)
}

func EducationUserRoutes(r fiber.Router, db *gorm.DB) {
	educationRoute.EducationUserRoutes(r, db)
}
