package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/features/posts/model"
	userModel "classroom_backend/internals/features/users/model"
	"classroom_backend/internals/helpers/logger"
)

type PostService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewPostService(db *gorm.DB, log logger.Logger) *PostService {
	return &PostService{DB: db, Log: log}
}

func (s *PostService) ListByClass(classID int) ([]model.PostModel, error) {
	var posts []model.PostModel
	if err := s.DB.Where("class_id = ?", classID).
		Order("post_id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Create(classID, authorID int, content string, filePath *string) (*model.PostModel, error) {
	var class classModel.ClassModel
	if err := s.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}
	var author userModel.UserModel
	if err := s.DB.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	post := model.PostModel{
		PostClassID:   classID,
		PostAuthorID:  authorID,
		PostContent:   content,
		PostFilePath:  filePath,
		PostCreatedAt: time.Now(),
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Delete(id int) error {
	res := s.DB.Delete(&model.PostModel{}, "post_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Post not found")
	}
	return nil
}
