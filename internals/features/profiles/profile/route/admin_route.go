package route

import (
	profileController "tpims_backend/internals/features/profiles/profile/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD on participant profiles.
Mount example: ProfileAdminRoutes(app.Group("/api/a"), db)
*/
func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profiles := r.Group("/profiles")
	profiles.Get("/", ctrl.ListProfiles)              // GET    /api/a/profiles
	profiles.Get("/:id", ctrl.GetProfile)             // GET    /api/a/profiles/:id
	profiles.Post("/complete", ctrl.CreateCompleteProfile) // POST /api/a/profiles/complete
	profiles.Put("/:id/complete", ctrl.EditCompleteProfile) // PUT /api/a/profiles/:id/complete
	profiles.Delete("/:id", ctrl.DeleteProfile)       // DELETE /api/a/profiles/:id
}

// User routes: read-only listing for non-admin staff.
func ProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(db)

	profiles := r.Group("/profiles")
	profiles.Get("/", ctrl.ListProfiles)  // GET /api/u/profiles
	profiles.Get("/:id", ctrl.GetProfile) // GET /api/u/profiles/:id
}
