package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	classModel "classroom_backend/internals/features/classes/model"
	notificationModel "classroom_backend/internals/features/notifications/model"
	submissionModel "classroom_backend/internals/features/submissions/model"
	"classroom_backend/internals/features/users/dto"
	"classroom_backend/internals/features/users/model"
	"classroom_backend/internals/helpers/logger"
)

type UserService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewUserService(db *gorm.DB, log logger.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

func (s *UserService) GetAll() ([]model.UserModel, error) {
	var users []model.UserModel
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(id int) (*model.UserModel, error) {
	var user model.UserModel
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*model.UserModel, error) {
	if taken, err := s.emailTaken(req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, fiber.NewError(fiber.StatusConflict, "This email is already used")
	}

	// One account per student id
	if req.Role == constants.RoleStudent && req.Mssv != nil && *req.Mssv != "" {
		if taken, err := s.mssvTaken(*req.Mssv); err != nil {
			return nil, err
		} else if taken {
			return nil, fiber.NewError(fiber.StatusConflict, "This MSSV is already used; each student may have only one account")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     req.Role,
		UserMssv:     req.Mssv,
		UserAvatar:   req.Avatar,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email or MSSV already used")
		}
		return nil, err
	}
	s.Log.Info("user created id=%d role=%s", user.UserID, user.UserRole)
	return &user, nil
}

// Update is merge-patch: only non-nil fields overwrite.
func (s *UserService) Update(id int, req *dto.UpdateUserRequest) (*model.UserModel, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.UserName = *req.Name
	}
	if req.Email != nil && *req.Email != user.UserEmail {
		if taken, err := s.emailTaken(*req.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, fiber.NewError(fiber.StatusConflict, "This email is already used")
		}
		user.UserEmail = *req.Email
	}
	if req.Mssv != nil {
		if user.UserRole == constants.RoleStudent && *req.Mssv != "" &&
			(user.UserMssv == nil || *req.Mssv != *user.UserMssv) {
			if taken, err := s.mssvTaken(*req.Mssv); err != nil {
				return nil, err
			} else if taken {
				return nil, fiber.NewError(fiber.StatusConflict, "This MSSV is already used; each student may have only one account")
			}
		}
		user.UserMssv = req.Mssv
	}
	if req.Avatar != nil {
		user.UserAvatar = req.Avatar
	}
	if req.Role != nil {
		user.UserRole = *req.Role
	}
	// Password never changes here; ChangePassword is the only path.

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user together with the records that belong to them:
// submissions, enrollments, notifications, then the user row, all in one
// transaction. A teacher still owning classes cannot be deleted.
func (s *UserService) Delete(id int) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if user.UserRole == constants.RoleTeacher {
		var owned int64
		if err := s.DB.Model(&classModel.ClassModel{}).
			Where("giao_vien_id = ?", id).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Cannot delete this teacher: they still manage %d class(es). Delete or reassign those classes first.", owned))
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).
			Delete(&submissionModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).
			Delete(&classModel.ClassStudentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&notificationModel.NotificationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserModel{}, "id = ?", id).Error
	})
	if err != nil {
		s.Log.Error("delete user %d failed: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete user: "+err.Error())
	}
	s.Log.Info("user %d deleted with dependent records", id)
	return nil
}

func (s *UserService) ChangePassword(id int, oldPassword, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(oldPassword)) != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Old password is incorrect")
	}
	if len(newPassword) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "New password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("password", string(hashed)).Error
}

func (s *UserService) emailTaken(email string) (bool, error) {
	var n int64
	err := s.DB.Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (s *UserService) mssvTaken(mssv string) (bool, error) {
	var n int64
	err := s.DB.Model(&model.UserModel{}).Where("mssv = ?", mssv).Count(&n).Error
	return n > 0, err
}
