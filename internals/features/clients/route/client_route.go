package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/clients/controller"
)

func ClientRoutes(api fiber.Router, db *gorm.DB) {
	clientCtrl := controller.NewClientController(db)
	groupCtrl := controller.NewGroupController(db)

	clients := api.Group("/clients")
	clients.Get("/", clientCtrl.GetClients)
	clients.Post("/", clientCtrl.CreateClient)
	clients.Get("/:id", clientCtrl.GetClient)
	clients.Put("/:id", clientCtrl.UpdateClient)
	clients.Delete("/:id", clientCtrl.DeleteClient)

	groups := api.Group("/groups")
	groups.Get("/", groupCtrl.GetGroups)
	groups.Post("/", groupCtrl.CreateGroup)
	groups.Put("/:id", groupCtrl.UpdateGroup)
	groups.Delete("/:id", groupCtrl.DeleteGroup)
}
