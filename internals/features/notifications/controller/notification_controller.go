package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/notifications/dto"
	"classroom_backend/internals/features/notifications/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type NotificationController struct {
	Service   *service.NotificationService
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB, log logger.Logger) *NotificationController {
	return &NotificationController{
		Service:   service.NewNotificationService(db, log),
		Validator: validator.New(),
	}
}

// GET /user/:userId
func (ctrl *NotificationController) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	items, err := ctrl.Service.ListByUser(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", items)
}

// GET /user/:userId/unread
func (ctrl *NotificationController) ListUnreadByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	items, err := ctrl.Service.ListUnreadByUser(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", items)
}

// POST /
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var body dto.CreateNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !body.UserID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing user id")
	}
	notif, err := ctrl.Service.Create(body.UserID.Int(), body.Title, body.Description, body.Role)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Notification created", notif)
}

// PUT /:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	notif, err := ctrl.Service.MarkAsRead(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Notification marked read", notif)
}

// PUT /user/:userId/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := ctrl.Service.MarkAllAsRead(userID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "All notifications marked read", nil)
}
