package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/auth/dto"
	"classroom_backend/internals/features/auth/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
	"classroom_backend/internals/helpers/mailer"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, log logger.Logger, m mailer.Mailer) *AuthController {
	return &AuthController{
		Service:   service.NewAuthService(db, log, m),
		Validator: validator.New(),
	}
}

// POST /register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	resp, err := ctrl.Service.Register(&body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registered", resp)
}

// POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	resp, err := ctrl.Service.Login(&body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logged in", resp)
}

// POST /forgot-password
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := ctrl.Service.ForgotPassword(body.Email); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "A new password has been sent to your email", nil)
}
