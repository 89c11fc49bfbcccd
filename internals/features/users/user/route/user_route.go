package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/users/user/controller"
)

func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := controller.NewUserProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", profileCtrl.GetMyProfile)
	profile.Put("/", profileCtrl.UpdateMyProfile)
}
