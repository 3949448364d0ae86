package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/users/dto"
	"classroom_backend/internals/features/users/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type UserController struct {
	Service   *service.UserService
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB, log logger.Logger) *UserController {
	return &UserController{
		Service:   service.NewUserService(db, log),
		Validator: validator.New(),
	}
}

// GET /
func (ctrl *UserController) List(c *fiber.Ctx) error {
	users, err := ctrl.Service.GetAll()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", users)
}

// GET /:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	user, err := ctrl.Service.GetByID(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", user)
}

// POST /
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	user, err := ctrl.Service.Create(&body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "User created", user)
}

// PUT /:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	user, err := ctrl.Service.Update(id, &body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "User updated", user)
}

// DELETE /:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := ctrl.Service.Delete(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "User deleted", nil)
}

// POST /:id/change-password
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := ctrl.Service.ChangePassword(id, body.OldPassword, body.NewPassword); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Password changed", nil)
}
