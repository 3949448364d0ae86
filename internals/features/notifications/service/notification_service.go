package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/notifications/model"
	userModel "classroom_backend/internals/features/users/model"
	"classroom_backend/internals/helpers/logger"
)

type NotificationService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewNotificationService(db *gorm.DB, log logger.Logger) *NotificationService {
	return &NotificationService{DB: db, Log: log}
}

func (s *NotificationService) ListByUser(userID int) ([]model.NotificationModel, error) {
	var items []model.NotificationModel
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *NotificationService) ListUnreadByUser(userID int) ([]model.NotificationModel, error) {
	var items []model.NotificationModel
	if err := s.DB.Where("user_id = ? AND read_status = ?", userID, false).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *NotificationService) Create(userID int, title string, description, role *string) (*model.NotificationModel, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	notif := model.NotificationModel{
		NotificationUserID:      userID,
		NotificationTitle:       title,
		NotificationDescription: description,
		NotificationRead:        false,
		NotificationRole:        role,
		NotificationCreatedAt:   time.Now(),
	}
	if err := s.DB.Create(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

func (s *NotificationService) MarkAsRead(id int) (*model.NotificationModel, error) {
	var notif model.NotificationModel
	if err := s.DB.First(&notif, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}
		return nil, err
	}
	if err := s.DB.Model(&notif).Update("read_status", true).Error; err != nil {
		return nil, err
	}
	notif.NotificationRead = true
	return &notif, nil
}

func (s *NotificationService) MarkAllAsRead(userID int) error {
	return s.DB.Model(&model.NotificationModel{}).
		Where("user_id = ? AND read_status = ?", userID, false).
		Update("read_status", true).Error
}
