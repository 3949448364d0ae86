package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "classroom_backend/internals/features/assignments/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/assignments
func AssignmentRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := assignmentController.NewAssignmentController(db, log)

	g := r.Group("/assignments")
	g.Get("/class/:classId", ctrl.ListByClass)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
