package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/classes/dto"
	"classroom_backend/internals/features/classes/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type ClassController struct {
	Service   *service.ClassService
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB, log logger.Logger) *ClassController {
	return &ClassController{
		Service:   service.NewClassService(db, log),
		Validator: validator.New(),
	}
}

// GET / (?userId=&role=)
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	var userID *int
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid userId")
		}
		userID = &id
	}
	classes, err := ctrl.Service.ListForUser(userID, c.Query("role"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", classes)
}

// GET /:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	class, err := ctrl.Service.GetByID(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", class)
}

// POST /
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	class, err := ctrl.Service.Create(&body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Class created", class)
}

// PUT /:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	class, err := ctrl.Service.Update(id, &body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Class updated", class)
}

// DELETE /:id
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	if err := ctrl.Service.Delete(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Class deleted", nil)
}

// POST /enroll
func (ctrl *ClassController) Enroll(c *fiber.Ctx) error {
	var body dto.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !body.StudentID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing student id")
	}
	enrollment, err := ctrl.Service.EnrollByCode(body.StudentID.Int(), body.MaThamGia)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Enrolled", enrollment)
}

// GET /:id/students
func (ctrl *ClassController) ListStudents(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	students, err := ctrl.Service.ListStudents(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", students)
}

// POST /:id/add-student
func (ctrl *ClassController) AddStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	var body dto.AddStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	enrollment, err := ctrl.Service.AddStudent(id, body.Email, body.Mssv)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Student added", enrollment)
}
