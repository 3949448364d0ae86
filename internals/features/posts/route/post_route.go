package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	postController "classroom_backend/internals/features/posts/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/posts
func PostRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := postController.NewPostController(db, log)

	g := r.Group("/posts")
	g.Get("/class/:classId", ctrl.ListByClass)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}
