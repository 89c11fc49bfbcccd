package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/courts/controller"
)

func CourtRoutes(api fiber.Router, db *gorm.DB) {
	courtCtrl := controller.NewCourtController(db)
	pricingCtrl := controller.NewCourtPricingController(db)

	courts := api.Group("/courts")
	courts.Get("/", courtCtrl.GetCourts)
	courts.Post("/", courtCtrl.CreateCourt)
	courts.Get("/:id", courtCtrl.GetCourt)
	courts.Put("/:id", courtCtrl.UpdateCourt)
	courts.Delete("/:id", courtCtrl.DeleteCourt)
	courts.Post("/:id/avatar", courtCtrl.UploadCourtAvatar)

	pricing := courts.Group("/:id/pricing")
	pricing.Get("/", pricingCtrl.ListSlots)
	pricing.Post("/", pricingCtrl.AddSlot)
	pricing.Get("/resolve", pricingCtrl.ResolveSlot)
	pricing.Get("/:slot_id", pricingCtrl.GetSlot)
	pricing.Put("/:slot_id", pricingCtrl.UpdateSlot)
	pricing.Delete("/:slot_id", pricingCtrl.DeleteSlot)
}
