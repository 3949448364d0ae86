package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"classroom_backend/internals/features/attendance/model"
	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/helpers/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&classModel.ClassModel{}, &model.AttendanceModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClass(t *testing.T, db *gorm.DB) *classModel.ClassModel {
	t.Helper()
	class := classModel.ClassModel{ClassName: "Math", ClassJoinCode: "MATH2026", ClassTeacherID: 1}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return &class
}

func TestSaveUpsertsSingleRowPerDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, logger.Nop{})
	class := seedClass(t, db)
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	first := datatypes.JSON(`{"1":"present","2":"absent"}`)
	if _, err := svc.Save(class.ClassID, date, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// A second save for the same day replaces the blob, not adds a row.
	second := datatypes.JSON(`{"1":"absent","2":"present"}`)
	saved, err := svc.Save(class.ClassID, date, second)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if string(saved.AttendanceRecords) != string(second) {
		t.Fatalf("records = %s, want replacement payload", saved.AttendanceRecords)
	}

	var n int64
	if err := db.Model(&model.AttendanceModel{}).
		Where("class_id = ?", class.ClassID).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("rows = %d, want 1", n)
	}

	got, err := svc.Get(class.ClassID, date)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got.AttendanceRecords) != string(second) {
		t.Fatalf("stored records = %s, want latest payload", got.AttendanceRecords)
	}
}

func TestSaveUnknownClass(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, logger.Nop{})

	_, err := svc.Save(999, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), datatypes.JSON(`{}`))
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestGetMissingDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, logger.Nop{})
	class := seedClass(t, db)

	_, err := svc.Get(class.ClassID, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestListByClassOrdersByDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db, logger.Nop{})
	class := seedClass(t, db)

	later := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Save(class.ClassID, later, datatypes.JSON(`{"1":"present"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Save(class.ClassID, earlier, datatypes.JSON(`{"1":"absent"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	items, err := svc.ListByClass(class.ClassID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if !items[0].AttendanceDate.Before(items[1].AttendanceDate) {
		t.Fatalf("listing not date-ascending: %v then %v", items[0].AttendanceDate, items[1].AttendanceDate)
	}
}
