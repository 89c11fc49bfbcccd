package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/users/auth/controller"
	"padelku_backend/internals/middlewares"
)

// AuthPublicRoutes: no session required
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Post("/refresh-token", authCtrl.RefreshToken)
}

// AuthUserRoutes: behind the auth middleware
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", authCtrl.Me)
	auth.Post("/logout", authCtrl.Logout)
	auth.Post("/change-password", authCtrl.ChangePassword)
}
