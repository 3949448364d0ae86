package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "classroom_backend/internals/features/users/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/users
func UserRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := userController.NewUserController(db, log)

	g := r.Group("/users")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/change-password", ctrl.ChangePassword)
}
