package route

import (
	educationController "tpims_backend/internals/features/education/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD on education records.
Mount example: EducationAdminRoutes(app.Group("/api/a"), db)
*/
func EducationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := educationController.NewEducationController(db)

	education := r.Group("/education")
	education.Get("/", ctrl.ListEducationRecords)                 // GET    /api/a/education
	education.Get("/profile/:profileId", ctrl.GetEducationHistory) // GET   /api/a/education/profile/:profileId
	education.Post("/", ctrl.CreateEducationRecord)               // POST   /api/a/education
	education.Put("/:id", ctrl.UpdateEducationRecord)             // PUT    /api/a/education/:id
	education.Delete("/:id", ctrl.DeleteEducationRecord)          // DELETE /api/a/education/:id
}

// User routes: read-only.
func EducationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := educationController.NewEducationController(db)

	education := r.Group("/education")
	education.Get("/", ctrl.ListEducationRecords)
	education.Get("/profile/:profileId", ctrl.GetEducationHistory)
}
