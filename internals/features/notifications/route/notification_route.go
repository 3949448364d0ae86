package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "classroom_backend/internals/features/notifications/controller"
	"classroom_backend/internals/helpers/logger"
)

// Base: /api/notifications
func NotificationRoutes(r fiber.Router, db *gorm.DB, log logger.Logger) {
	ctrl := notificationController.NewNotificationController(db, log)

	g := r.Group("/notifications")
	g.Get("/user/:userId", ctrl.ListByUser)
	g.Get("/user/:userId/unread", ctrl.ListUnreadByUser)
	g.Post("/", ctrl.Create)
	g.Put("/:id/read", ctrl.MarkAsRead)
	g.Put("/user/:userId/read-all", ctrl.MarkAllAsRead)
}
