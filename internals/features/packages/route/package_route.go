package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/packages/controller"
)

func PackageRoutes(api fiber.Router, db *gorm.DB) {
	pkgCtrl := controller.NewPackageController(db)

	packages := api.Group("/packages")
	packages.Get("/", pkgCtrl.GetPackages)
	packages.Post("/", pkgCtrl.CreatePackage)
	packages.Put("/:id", pkgCtrl.UpdatePackage)
	packages.Delete("/:id", pkgCtrl.DeletePackage)

	clientPackages := api.Group("/client-packages")
	clientPackages.Post("/", pkgCtrl.PurchasePackage)
	clientPackages.Get("/by-client/:client_id", pkgCtrl.GetClientPackages)
	clientPackages.Post("/:id/use-session", pkgCtrl.UseSession)
}
