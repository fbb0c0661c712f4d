package route

import (
	healthController "tpims_backend/internals/features/health/maternal/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: maternal health history + visit schedule CRUD.
Mount example: MaternalHealthAdminRoutes(app.Group("/api/a"), db)
*/
func MaternalHealthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := healthController.NewMaternalHealthController(db)

	health := r.Group("/health")
	health.Get("/profile/:profileId", ctrl.GetHealthHistory) // GET  /api/a/health/profile/:profileId
	health.Post("/", ctrl.CreateHealthRecord)                // POST /api/a/health

	visits := r.Group("/visits")
	visits.Get("/health/:healthId", ctrl.GetVisitSchedules) // GET    /api/a/visits/health/:healthId
	visits.Post("/", ctrl.CreateVisitSchedule)              // POST   /api/a/visits
	visits.Put("/:id", ctrl.UpdateVisitSchedule)            // PUT    /api/a/visits/:id
	visits.Delete("/:id", ctrl.DeleteVisitSchedule)         // DELETE /api/a/visits/:id
}

// User routes: read-only.
func MaternalHealthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := healthController.NewMaternalHealthController(db)

	health := r.Group("/health")
	health.Get("/profile/:profileId", ctrl.GetHealthHistory)

	visits := r.Group("/visits")
	visits.Get("/health/:healthId", ctrl.GetVisitSchedules)
}
