package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/submissions/dto"
	"classroom_backend/internals/features/submissions/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type GradingController struct {
	Service   *service.SubmissionService
	Validator *validator.Validate
}

func NewGradingController(db *gorm.DB, log logger.Logger) *GradingController {
	return &GradingController{
		Service:   service.NewSubmissionService(db, log),
		Validator: validator.New(),
	}
}

// GET / (?teacherId=&studentId=&classId=)
func (ctrl *GradingController) List(c *fiber.Ctx) error {
	teacherID := queryInt(c, "teacherId")
	studentID := queryInt(c, "studentId")
	classID := queryInt(c, "classId")

	switch {
	case studentID != nil:
		subs, err := ctrl.Service.ListByStudent(*studentID, classID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.JsonOK(c, "OK", subs)
	case teacherID != nil:
		subs, err := ctrl.Service.ListForTeacher(*teacherID, classID)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		return helper.JsonOK(c, "OK", subs)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "teacherId or studentId is required")
	}
}

// POST /
func (ctrl *GradingController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !body.StudentID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing student id")
	}
	if !body.ClassID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing class id")
	}

	sub, err := ctrl.Service.Create(body.StudentID.Int(), body.ClassID.Int(), body.TenBaiTap, body.FilePath)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Submission created", sub)
}

// PUT /:submissionId/grade
func (ctrl *GradingController) Grade(c *fiber.Ctx) error {
	id, err := c.ParamsInt("submissionId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	var body dto.GradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var score *float64
	if body.Diem != nil && body.Diem.Valid {
		score = &body.Diem.Value
	}

	sub, err := ctrl.Service.Grade(id, score, body.NhanXet)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Submission graded", sub)
}

// DELETE /cleanup-duplicates
func (ctrl *GradingController) CleanupDuplicates(c *fiber.Ctx) error {
	deleted, err := ctrl.Service.ReconcileDuplicates()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Duplicate submissions removed", fiber.Map{"deleted": deleted})
}

func queryInt(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
