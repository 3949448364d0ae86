package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	gradingController "classroom_backend/internals/features/submissions/controller"
	"classroom_backend/internals/helpers/logger"
	authMw "classroom_backend/internals/middlewares/auth"
)

// Base: /api/grading
func GradingRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := gradingController.NewGradingController(db, log)

	g := r.Group("/grading")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Put("/:submissionId/grade", ctrl.Grade)
	g.Delete("/cleanup-duplicates", authMw.OnlyRoles(constants.TeacherAndAbove...), ctrl.CleanupDuplicates)
}
