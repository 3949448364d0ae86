package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"classroom_backend/internals/features/attendance/model"
	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/helpers/logger"
)

type AttendanceService struct {
	DB  *gorm.DB
	Log logger.Logger
}

func NewAttendanceService(db *gorm.DB, log logger.Logger) *AttendanceService {
	return &AttendanceService{DB: db, Log: log}
}

func (s *AttendanceService) Get(classID int, date time.Time) (*model.AttendanceModel, error) {
	var att model.AttendanceModel
	if err := s.DB.First(&att, "class_id = ? AND date = ?", classID, date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No attendance recorded for this date")
		}
		return nil, err
	}
	return &att, nil
}

func (s *AttendanceService) ListByClass(classID int) ([]model.AttendanceModel, error) {
	var items []model.AttendanceModel
	if err := s.DB.Where("class_id = ?", classID).
		Order("date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save upserts the single row per (class, date): the records blob is fully
// replaced when the row exists, otherwise a new row is inserted.
func (s *AttendanceService) Save(classID int, date time.Time, records datatypes.JSON) (*model.AttendanceModel, error) {
	var class classModel.ClassModel
	if err := s.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	var att model.AttendanceModel
	err := s.DB.First(&att, "class_id = ? AND date = ?", classID, date).Error
	switch {
	case err == nil:
		att.AttendanceRecords = records
		if err := s.DB.Save(&att).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		att = model.AttendanceModel{
			AttendanceClassID: classID,
			AttendanceDate:    date,
			AttendanceRecords: records,
		}
		if err := s.DB.Create(&att).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.Log.Info("attendance saved class=%d date=%s", classID, date.Format("2006-01-02"))
	return &att, nil
}
