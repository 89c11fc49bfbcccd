package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/sessions/controller"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewSessionController(db)

	sessions := api.Group("/sessions")
	sessions.Get("/", sessionCtrl.GetSessions)
	sessions.Post("/", sessionCtrl.CreateSession)
	sessions.Put("/:id", sessionCtrl.UpdateSession)
	sessions.Delete("/:id", sessionCtrl.DeleteSession)
	sessions.Get("/:id/attendance", sessionCtrl.GetAttendance)
	sessions.Post("/:id/attendance", sessionCtrl.MarkAttendance)
}
