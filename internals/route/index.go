package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authroute "padelku_backend/internals/features/users/auth/route"
	userroute "padelku_backend/internals/features/users/user/route"

	clientroute "padelku_backend/internals/features/clients/route"
	courtroute "padelku_backend/internals/features/courts/route"
	packageroute "padelku_backend/internals/features/packages/route"
	serviceroute "padelku_backend/internals/features/services/route"
	sessionroute "padelku_backend/internals/features/sessions/route"
	authmw "padelku_backend/internals/middlewares/auth"
)

// SetupRoutes wires the public auth endpoints and the authenticated
// /api/u surface.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public
	public := app.Group("/api")
	authroute.AuthPublicRoutes(public, db)

	// Authenticated
	private := app.Group("/api/u", authmw.AuthMiddleware(db))
	authroute.AuthUserRoutes(private, db)
	userroute.UserProfileRoutes(private, db)
	courtroute.CourtRoutes(private, db)
	serviceroute.ServiceRoutes(private, db)
	clientroute.ClientRoutes(private, db)
	packageroute.PackageRoutes(private, db)
	sessionroute.SessionRoutes(private, db)
}
