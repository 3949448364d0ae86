package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"classroom_backend/internals/features/assignments/dto"
	"classroom_backend/internals/features/assignments/model"
	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/helpers/logger"
)

const dateLayout = "2006-01-02"

type AssignmentService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewAssignmentService(db *gorm.DB, log logger.Logger) *AssignmentService {
	return &AssignmentService{DB: db, Log: log}
}

func (s *AssignmentService) ListByClass(classID int, typ *model.AssignmentType) ([]model.AssignmentModel, error) {
	var items []model.AssignmentModel
	q := s.DB.Where("class_id = ?", classID).Order("assignment_id DESC")
	if typ != nil {
		q = q.Where("type = ?", *typ)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *AssignmentService) GetByID(id int) (*model.AssignmentModel, error) {
	var item model.AssignmentModel
	if err := s.DB.First(&item, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return nil, err
	}
	return &item, nil
}

func (s *AssignmentService) Create(req *dto.CreateAssignmentRequest) (*model.AssignmentModel, error) {
	if !req.ClassID.Valid {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Missing class id")
	}
	var class classModel.ClassModel
	if err := s.DB.First(&class, "class_id = ?", req.ClassID.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	typ := model.AssignmentTypeAssignment
	if req.Type != nil {
		typ = model.AssignmentType(*req.Type)
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	var maxScore *int
	if req.MaxScore != nil && req.MaxScore.Valid {
		v := req.MaxScore.Int()
		maxScore = &v
	}

	now := time.Now()
	item := model.AssignmentModel{
		AssignmentClassID:     req.ClassID.Int(),
		AssignmentTitle:       req.Title,
		AssignmentDescription: req.Description,
		AssignmentType:        typ,
		AssignmentFilePath:    req.FilePath,
		AssignmentDueDate:     dueDate,
		AssignmentMaxScore:    maxScore,
		AssignmentCreatedAt:   now,
		AssignmentUpdatedAt:   now,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update is partial: only non-nil supplied fields overwrite.
func (s *AssignmentService) Update(id int, req *dto.UpdateAssignmentRequest) (*model.AssignmentModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.AssignmentTitle = *req.Title
	}
	if req.Description != nil {
		item.AssignmentDescription = req.Description
	}
	if req.FilePath != nil {
		item.AssignmentFilePath = req.FilePath
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		item.AssignmentDueDate = dueDate
	}
	if req.MaxScore != nil && req.MaxScore.Valid {
		v := req.MaxScore.Int()
		item.AssignmentMaxScore = &v
	}
	item.AssignmentUpdatedAt = time.Now()

	if err := s.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *AssignmentService) Delete(id int) error {
	res := s.DB.Delete(&model.AssignmentModel{}, "assignment_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assignment not found")
	}
	return nil
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid due date, expected YYYY-MM-DD")
	}
	return &t, nil
}
