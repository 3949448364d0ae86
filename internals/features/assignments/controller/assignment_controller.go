package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/assignments/dto"
	"classroom_backend/internals/features/assignments/model"
	"classroom_backend/internals/features/assignments/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type AssignmentController struct {
	Service   *service.AssignmentService
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB, log logger.Logger) *AssignmentController {
	return &AssignmentController{
		Service:   service.NewAssignmentService(db, log),
		Validator: validator.New(),
	}
}

// GET /class/:classId (?type=ASSIGNMENT|MATERIAL)
func (ctrl *AssignmentController) ListByClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var typ *model.AssignmentType
	if raw := c.Query("type"); raw != "" {
		t := model.AssignmentType(raw)
		if t != model.AssignmentTypeAssignment && t != model.AssignmentTypeMaterial {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid type, expected ASSIGNMENT or MATERIAL")
		}
		typ = &t
	}
	items, err := ctrl.Service.ListByClass(classID, typ)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", items)
}

// GET /:id
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}
	item, err := ctrl.Service.GetByID(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", item)
}

// POST /
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	item, err := ctrl.Service.Create(&body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Assignment created", item)
}

// PUT /:id
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}
	var body dto.UpdateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	item, err := ctrl.Service.Update(id, &body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Assignment updated", item)
}

// DELETE /:id
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}
	if err := ctrl.Service.Delete(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Assignment deleted", nil)
}
