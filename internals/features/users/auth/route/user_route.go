package route

import (
	"os"

	controller "tpims_backend/internals/features/users/auth/controller"
	authRepo "tpims_backend/internals/features/users/auth/repository"
	rateLimiter "tpims_backend/internals/middlewares"
	authMw "tpims_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth", rateLimiter.GlobalRateLimiter())

	// cookie endpoints
	baseAuth.Get("/csrf", authController.CSRF)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/forgot-password/reset", rateLimiter.ForgotPasswordRateLimiter(), authController.ResetPassword)

	// logout is idempotent and clears cookies even without a valid token
	baseAuth.Post("/logout", authController.Logout)

	// protected
	protected := baseAuth.Group("",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
			BlacklistChecker: func(raw string) (bool, error) {
				return authRepo.IsTokenBlacklisted(db, raw)
			},
		}),
	)
	protected.Get("/me", authController.Me)
	protected.Post("/change-password", authController.ChangePassword)
}
