package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/features/submissions/model"
	userModel "classroom_backend/internals/features/users/model"
	"classroom_backend/internals/helpers/logger"
)

type SubmissionService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewSubmissionService(db *gorm.DB, log logger.Logger) *SubmissionService {
	return &SubmissionService{DB: db, Log: log}
}

// ListForTeacher returns submissions in classes owned by the teacher,
// optionally narrowed to a single class.
func (s *SubmissionService) ListForTeacher(teacherID int, classID *int) ([]model.SubmissionModel, error) {
	var subs []model.SubmissionModel
	q := s.DB.
		Where("class_id IN (?)",
			s.DB.Model(&classModel.ClassModel{}).
				Select("class_id").
				Where("giao_vien_id = ?", teacherID)).
		Order("submission_id ASC")
	if classID != nil {
		q = q.Where("class_id = ?", *classID)
	}
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionService) ListByStudent(studentID int, classID *int) ([]model.SubmissionModel, error) {
	var subs []model.SubmissionModel
	q := s.DB.Where("student_id = ?", studentID).Order("submission_id ASC")
	if classID != nil {
		q = q.Where("class_id = ?", *classID)
	}
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionService) GetByID(id int) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := s.DB.First(&sub, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return nil, err
	}
	return &sub, nil
}

// Create stores a new Pending submission. A second submission for the same
// (student, class, assignment-name) triple is rejected before insert; the
// unique index closes the remaining race at the storage layer.
func (s *SubmissionService) Create(studentID, classID int, assignmentName string, filePath *string) (*model.SubmissionModel, error) {
	var n int64
	if err := s.DB.Model(&model.SubmissionModel{}).
		Where("student_id = ? AND class_id = ? AND ten_bai_tap = ?", studentID, classID, assignmentName).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			"You have already submitted this assignment! Each assignment may only be submitted once.")
	}

	var student userModel.UserModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}
	var class classModel.ClassModel
	if err := s.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	now := time.Now()
	sub := model.SubmissionModel{
		SubmissionStudentID:      studentID,
		SubmissionClassID:        classID,
		SubmissionAssignmentName: &assignmentName,
		SubmissionFilePath:       filePath,
		SubmissionStatus:         model.SubmissionStatusPending,
		SubmissionSubmittedAt:    &now,
	}
	if err := s.DB.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict,
				"You have already submitted this assignment! Each assignment may only be submitted once.")
		}
		return nil, err
	}
	s.Log.Info("submission %d created (student=%d class=%d %q)", sub.SubmissionID, studentID, classID, assignmentName)
	return &sub, nil
}

// Grade overwrites score and feedback unconditionally, including clearing
// them when absent. There is deliberately no ceiling check against the
// assignment's max score.
func (s *SubmissionService) Grade(id int, score *float64, feedback *string) (*model.SubmissionModel, error) {
	sub, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub.SubmissionScore = score
	sub.SubmissionFeedback = feedback
	sub.SubmissionStatus = model.SubmissionStatusGraded
	sub.SubmissionGradedAt = &now

	if err := s.DB.Model(sub).Select("diem", "nhan_xet", "trang_thai", "graded_at").
		Updates(map[string]interface{}{
			"diem":       score,
			"nhan_xet":   feedback,
			"trang_thai": model.SubmissionStatusGraded,
			"graded_at":  now,
		}).Error; err != nil {
		return nil, err
	}
	s.Log.Info("submission %d graded (score=%v)", id, score)
	return sub, nil
}

// ReconcileDuplicates collapses duplicate submissions down to one survivor
// per (student, class, assignment-name) triple, in a single transaction.
// Rows whose key has an empty component are never grouped. Survivor choice
// is deterministic: the lowest-id graded row with a score wins; with no
// graded row, the latest submitted_at wins, nil timestamps counting as
// earliest and ties resolved to the lowest id. Returns the deleted count.
func (s *SubmissionService) ReconcileDuplicates() (int, error) {
	totalDeleted := 0

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var all []model.SubmissionModel
		if err := tx.Order("submission_id ASC").Find(&all).Error; err != nil {
			return err
		}

		groups := map[string][]model.SubmissionModel{}
		order := []string{}
		for _, sub := range all {
			if sub.SubmissionAssignmentName == nil || *sub.SubmissionAssignmentName == "" {
				continue
			}
			key := fmt.Sprintf("%d_%d_%s", sub.SubmissionStudentID, sub.SubmissionClassID, *sub.SubmissionAssignmentName)
			if _, seen := groups[key]; !seen {
				order = append(order, key)
			}
			groups[key] = append(groups[key], sub)
		}

		for _, key := range order {
			group := groups[key]
			if len(group) <= 1 {
				continue
			}

			keep := pickSurvivor(group)
			for _, sub := range group {
				if sub.SubmissionID == keep.SubmissionID {
					continue
				}
				if err := tx.Delete(&model.SubmissionModel{}, "submission_id = ?", sub.SubmissionID).Error; err != nil {
					return err
				}
				totalDeleted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if totalDeleted > 0 {
		s.Log.Info("reconciliation removed %d duplicate submission(s)", totalDeleted)
	}
	return totalDeleted, nil
}

// pickSurvivor expects the group in ascending id order.
func pickSurvivor(group []model.SubmissionModel) model.SubmissionModel {
	for _, sub := range group {
		if sub.SubmissionStatus == model.SubmissionStatusGraded && sub.SubmissionScore != nil {
			return sub
		}
	}

	keep := group[0]
	for _, sub := range group[1:] {
		if submittedAfter(sub, keep) {
			keep = sub
		}
	}
	return keep
}

// submittedAfter is strict: equal timestamps keep the earlier (lower-id) row.
func submittedAfter(a, b model.SubmissionModel) bool {
	if a.SubmissionSubmittedAt == nil {
		return false
	}
	if b.SubmissionSubmittedAt == nil {
		return true
	}
	return a.SubmissionSubmittedAt.After(*b.SubmissionSubmittedAt)
}
