package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/features/users/auth/controller"
	userService "coachdesk_backend/internals/features/users/user/service"
	"coachdesk_backend/internals/middlewares"
	authmw "coachdesk_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated
// session endpoints (me/logout).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	provision := userService.NewProvisionService(userService.NewGormProvisionStore(db))
	ctl := controller.NewAuthController(db, provision)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)

	session := app.Group("/api/auth", authmw.AuthMiddleware(db))
	session.Post("/logout", ctl.Logout)
	session.Get("/me", ctl.Me)
}
