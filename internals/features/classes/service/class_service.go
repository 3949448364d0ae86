package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	assignmentModel "classroom_backend/internals/features/assignments/model"
	"classroom_backend/internals/features/classes/dto"
	"classroom_backend/internals/features/classes/model"
	postModel "classroom_backend/internals/features/posts/model"
	submissionModel "classroom_backend/internals/features/submissions/model"
	userModel "classroom_backend/internals/features/users/model"
	"classroom_backend/internals/helpers/logger"
)

const joinCodeMaxAttempts = 10

type ClassService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewClassService(db *gorm.DB, log logger.Logger) *ClassService {
	return &ClassService{DB: db, Log: log}
}

// ListForUser scopes the listing by role: teachers see classes they own,
// students see classes they are enrolled in, everyone else sees all.
func (s *ClassService) ListForUser(userID *int, role string) ([]model.ClassModel, error) {
	var classes []model.ClassModel
	q := s.DB.Order("class_id ASC")

	switch {
	case role == constants.RoleTeacher && userID != nil:
		q = q.Where("giao_vien_id = ?", *userID)
	case role == constants.RoleStudent && userID != nil:
		q = q.Where("class_id IN (?)",
			s.DB.Model(&model.ClassStudentModel{}).
				Select("class_id").
				Where("student_id = ?", *userID))
	}

	if err := q.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ClassService) GetByID(id int) (*model.ClassModel, error) {
	var class model.ClassModel
	if err := s.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}
	return &class, nil
}

// Create stores a new class. An explicit join code must be globally free;
// without one, candidates are drawn from the first 8 hex chars of a UUID,
// uppercased, with a bounded retry so the loop provably terminates.
func (s *ClassService) Create(req *dto.CreateClassRequest) (*model.ClassModel, error) {
	if !req.GiaoVienID.Valid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing teacher id")
	}
	teacherID := req.GiaoVienID.Int()

	var teacher userModel.UserModel
	if err := s.DB.First(&teacher, "id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Teacher with ID %d not found. Please check your login details.", teacherID))
		}
		return nil, err
	}
	if teacher.UserRole != constants.RoleTeacher && teacher.UserRole != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusBadRequest, "This user is not a teacher")
	}

	code, err := s.resolveJoinCode(req.MaThamGia)
	if err != nil {
		return nil, err
	}

	class := model.ClassModel{
		ClassName:        req.TenLop,
		ClassDescription: req.MoTa,
		ClassJoinCode:    code,
		ClassTeacherID:   teacherID,
	}
	if err := s.DB.Create(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Join code '%s' is already used! Please choose another code.", code))
		}
		return nil, err
	}
	s.Log.Info("class created id=%d code=%s teacher=%d", class.ClassID, code, teacherID)
	return &class, nil
}

func (s *ClassService) resolveJoinCode(requested *string) (string, error) {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		code := strings.TrimSpace(*requested)
		taken, err := s.joinCodeTaken(code)
		if err != nil {
			return "", err
		}
		if taken {
			return "", fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Join code '%s' is already used! Please choose another code.", code))
		}
		return code, nil
	}

	for attempts := 0; attempts < joinCodeMaxAttempts; attempts++ {
		candidate := strings.ToUpper(uuid.NewString()[:8])
		taken, err := s.joinCodeTaken(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fiber.NewError(fiber.StatusInternalServerError, "Could not generate a unique join code")
}

func (s *ClassService) joinCodeTaken(code string) (bool, error) {
	var n int64
	err := s.DB.Model(&model.ClassModel{}).Where("ma_tham_gia = ?", code).Count(&n).Error
	return n > 0, err
}

// Update is merge-patch: only non-nil fields overwrite.
func (s *ClassService) Update(id int, req *dto.UpdateClassRequest) (*model.ClassModel, error) {
	class, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.TenLop != nil {
		class.ClassName = *req.TenLop
	}
	if req.MoTa != nil {
		class.ClassDescription = req.MoTa
	}
	if req.MaThamGia != nil {
		class.ClassJoinCode = *req.MaThamGia
	}
	if req.GiaoVienID != nil && req.GiaoVienID.Valid {
		class.ClassTeacherID = req.GiaoVienID.Int()
	}

	if err := s.DB.Save(class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Join code '%s' is already used! Please choose another code.", class.ClassJoinCode))
		}
		return nil, err
	}
	return class, nil
}

// Delete removes the class and everything scoped to it, in a fixed order
// inside one transaction: posts, assignments, submissions, enrollments,
// then the class row itself.
func (s *ClassService) Delete(id int) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", id).
			Delete(&postModel.PostModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&assignmentModel.AssignmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&submissionModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).
			Delete(&model.ClassStudentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ClassModel{}, "class_id = ?", id).Error
	})
	if err != nil {
		s.Log.Error("delete class %d failed: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete class: "+err.Error())
	}
	s.Log.Info("class %d deleted with dependent records", id)
	return nil
}

// EnrollByCode redeems a join code for a student. The only mutation is the
// enrollment row; no notification or email is sent from here.
func (s *ClassService) EnrollByCode(studentID int, code string) (*model.ClassStudentModel, error) {
	var class model.ClassModel
	if err := s.DB.First(&class, "ma_tham_gia = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Invalid join code")
		}
		return nil, err
	}

	var student userModel.UserModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}

	return s.enroll(class.ClassID, student.UserID)
}

// AddStudent adds a student to a class by email or mssv; exactly one of the
// two must resolve an existing user.
func (s *ClassService) AddStudent(classID int, email, mssv *string) (*model.ClassStudentModel, error) {
	if _, err := s.GetByID(classID); err != nil {
		return nil, err
	}

	var student userModel.UserModel
	var err error
	switch {
	case email != nil && *email != "":
		err = s.DB.First(&student, "email = ?", *email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No student found with email: "+*email)
		}
	case mssv != nil && *mssv != "":
		err = s.DB.First(&student, "mssv = ?", *mssv).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No student found with MSSV: "+*mssv)
		}
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Please provide an email or MSSV")
	}
	if err != nil {
		return nil, err
	}

	return s.enroll(classID, student.UserID)
}

func (s *ClassService) enroll(classID, studentID int) (*model.ClassStudentModel, error) {
	var n int64
	if err := s.DB.Model(&model.ClassStudentModel{}).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Student is already enrolled in this class")
	}

	enrollment := model.ClassStudentModel{
		ClassStudentClassID:    classID,
		ClassStudentStudentID:  studentID,
		ClassStudentEnrolledAt: time.Now(),
	}
	if err := s.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Student is already enrolled in this class")
		}
		return nil, err
	}
	s.Log.Info("student %d enrolled in class %d", studentID, classID)
	return &enrollment, nil
}

// ListStudents returns the users enrolled in a class.
func (s *ClassService) ListStudents(classID int) ([]userModel.UserModel, error) {
	var students []userModel.UserModel
	err := s.DB.Model(&userModel.UserModel{}).
		Joins("JOIN class_students ON class_students.student_id = users.id").
		Where("class_students.class_id = ?", classID).
		Order("users.id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
