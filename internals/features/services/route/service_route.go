package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/services/controller"
)

func ServiceRoutes(api fiber.Router, db *gorm.DB) {
	serviceCtrl := controller.NewServiceController(db)

	services := api.Group("/services")
	services.Get("/", serviceCtrl.GetServices)
	services.Post("/", serviceCtrl.CreateService)
	services.Post("/quote", serviceCtrl.Quote)
	services.Get("/:id", serviceCtrl.GetService)
	services.Put("/:id", serviceCtrl.UpdateService)
	services.Delete("/:id", serviceCtrl.DeleteService)
}
