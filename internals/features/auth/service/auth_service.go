package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/auth/dto"
	userModel "classroom_backend/internals/features/users/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
	"classroom_backend/internals/helpers/mailer"
)

const resetPasswordLength = 6

type AuthService struct {
	DB     *gorm.DB
	Log    logger.Logger
	Mailer mailer.Mailer
}

func NewAuthService(db *gorm.DB, log logger.Logger, m mailer.Mailer) *AuthService {
	return &AuthService{DB: db, Log: log, Mailer: m}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var n int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "This email is already used")
	}

	if req.Role == constants.RoleStudent {
		if req.Mssv == nil || *req.Mssv == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "MSSV must not be empty")
		}
		if err := s.DB.Model(&userModel.UserModel{}).
			Where("mssv = ?", *req.Mssv).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "This MSSV is already used; each student may have only one account")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     req.Role,
		UserMssv:     req.Mssv,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Email or MSSV already used")
		}
		return nil, err
	}

	token, err := helper.CreateToken(user.UserID, user.UserEmail, user.UserRole)
	if err != nil {
		return nil, err
	}
	s.Log.Info("user %d registered as %s", user.UserID, user.UserRole)
	return &dto.AuthResponse{Token: token, User: &user}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Wrong password")
	}

	token, err := helper.CreateToken(user.UserID, user.UserEmail, user.UserRole)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: &user}, nil
}

// ForgotPassword issues a fresh random password and emails it. The email is
// best-effort: a send failure is logged and the new password stays issued.
func (s *AuthService) ForgotPassword(email string) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No account found with this email")
		}
		return err
	}

	newPassword, err := randomPassword(resetPasswordLength)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return err
	}

	if err := s.Mailer.SendPasswordReset(email, newPassword); err != nil {
		s.Log.Error("password reset mail to %s failed: %v", email, err)
	}
	return nil
}

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[idx.Int64()]
	}
	return string(out), nil
}
