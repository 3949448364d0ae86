package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/posts/dto"
	"classroom_backend/internals/features/posts/service"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type PostController struct {
	Service   *service.PostService
	Validator *validator.Validate
}

func NewPostController(db *gorm.DB, log logger.Logger) *PostController {
	return &PostController{
		Service:   service.NewPostService(db, log),
		Validator: validator.New(),
	}
}

// GET /class/:classId
func (ctrl *PostController) ListByClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	posts, err := ctrl.Service.ListByClass(classID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", posts)
}

// POST /
func (ctrl *PostController) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !body.ClassID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing class id")
	}
	if !body.AuthorID.Valid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing author id")
	}
	post, err := ctrl.Service.Create(body.ClassID.Int(), body.AuthorID.Int(), body.Content, body.FilePath)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Post created", post)
}

// DELETE /:id
func (ctrl *PostController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}
	if err := ctrl.Service.Delete(id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Post deleted", nil)
}
