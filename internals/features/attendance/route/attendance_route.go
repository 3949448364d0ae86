package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "classroom_backend/internals/features/attendance/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/attendance
func AttendanceRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := attendanceController.NewAttendanceController(db, log)

	g := r.Group("/attendance")
	g.Get("/", ctrl.Get)
	g.Get("/class/:classId", ctrl.ListByClass)
	g.Post("/", ctrl.Save)
}
