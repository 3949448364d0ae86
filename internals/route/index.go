package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "classroom_backend/internals/features/assignments/route"
	attendanceRoute "classroom_backend/internals/features/attendance/route"
	authRoute "classroom_backend/internals/features/auth/route"
	classRoute "classroom_backend/internals/features/classes/route"
	fileRoute "classroom_backend/internals/features/files/route"
	notificationRoute "classroom_backend/internals/features/notifications/route"
	postRoute "classroom_backend/internals/features/posts/route"
	gradingRoute "classroom_backend/internals/features/submissions/route"
	userRoute "classroom_backend/internals/features/users/route"
	"classroom_backend/internals/helpers/logger"
	"classroom_backend/internals/helpers/mailer"
	authMw "classroom_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature group under /api. Auth and file
// download stay public, everything else sits behind the bearer guard.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log := logger.New()
	mail := mailer.New(log)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, log, mail)
	fileRoute.FileRoutes(api, log)

	protected := app.Group("/api", authMw.AuthMiddleware())
	userRoute.UserRoutes(protected, db, log)
	classRoute.ClassRoutes(protected, db, log)
	postRoute.PostRoutes(protected, db, log)
	assignmentRoute.AssignmentRoutes(protected, db, log)
	attendanceRoute.AttendanceRoutes(protected, db, log)
	gradingRoute.GradingRoutes(protected, db, log)
	notificationRoute.NotificationRoutes(protected, db, log)
}
