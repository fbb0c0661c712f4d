package route

import (
	userController "tpims_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: account management.
Mount example: UserAdminRoutes(app.Group("/api/a"), db)
*/
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.ListUsers)       // GET    /api/a/users
	users.Get("/:id", ctrl.GetUser)      // GET    /api/a/users/:id
	users.Post("/", ctrl.CreateUser)     // POST   /api/a/users
	users.Put("/:id", ctrl.UpdateUser)   // PUT    /api/a/users/:id
	users.Delete("/:id", ctrl.DeleteUser) // DELETE /api/a/users/:id?force=true
}
