package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "classroom_backend/internals/features/classes/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/classes
func ClassRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := classController.NewClassController(db, log)

	g := r.Group("/classes")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Post("/enroll", ctrl.Enroll)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Get("/:id/students", ctrl.ListStudents)
	g.Post("/:id/add-student", ctrl.AddStudent)
}
