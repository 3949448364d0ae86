package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"classroom_backend/internals/features/attendance/dto"
	"classroom_backend/internals/features/attendance/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

const dateLayout = "2006-01-02"

type AttendanceController struct {
	Service   *service.AttendanceService
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, log logger.Logger) *AttendanceController {
	return &AttendanceController{
		Service:   service.NewAttendanceService(db, log),
		Validator: validator.New(),
	}
}

// GET / (?classId=&date=YYYY-MM-DD)
func (ctrl *AttendanceController) Get(c *fiber.Ctx) error {
	classID := c.QueryInt("classId")
	if classID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "classId is required")
	}
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	att, err := ctrl.Service.Get(classID, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", att)
}

// GET /class/:classId
func (ctrl *AttendanceController) ListByClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	items, err := ctrl.Service.ListByClass(classID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", items)
}

// POST /
func (ctrl *AttendanceController) Save(c *fiber.Ctx) error {
	var body dto.SaveAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !body.ClassID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing class id")
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	att, err := ctrl.Service.Save(body.ClassID.Int(), date, datatypes.JSON(body.Records))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Attendance saved", att)
}
