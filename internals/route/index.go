package routes

import (
	"log"
	"os"
	"time"

	authRepo "tpims_backend/internals/features/users/auth/repository"
	rateLimiter "tpims_backend/internals/middlewares"
	authMw "tpims_backend/internals/middlewares/auth"
	routeDetails "tpims_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	jwtOpts := authMw.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
		BlacklistChecker: func(raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(db, raw)
		},
	}

	// ===================== GROUPS =====================

	// PRIVATE (any authenticated staff)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
		authMw.AuthJWT(jwtOpts),
	)

	// ADMIN (Auth + RoleCheck)
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(),
		authMw.AuthJWT(jwtOpts),
		authMw.IsAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Profile routes...")
	routeDetails.ProfileUserRoutes(private, db)
	routeDetails.ProfileAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Health routes...")
	routeDetails.HealthUserRoutes(private, db)
	routeDetails.HealthAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Education routes...")
	routeDetails.EducationUserRoutes(private, db)
	routeDetails.EducationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Reference routes...")
	routeDetails.ReferenceRoutes(private, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserAdminRoutes(admin, db)
}
