package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"classroom_backend/internals/constants"
	classModel "classroom_backend/internals/features/classes/model"
	"classroom_backend/internals/features/submissions/model"
	userModel "classroom_backend/internals/features/users/model"
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

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&model.SubmissionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// dropTripleIndex reverts the storage-level one-submission guard so tests
// can seed the duplicate rows reconciliation exists to clean up. Real
// deployments accumulated such rows before the index was introduced.
func dropTripleIndex(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Migrator().DropIndex(&model.SubmissionModel{}, "uq_submissions_triple"); err != nil {
		t.Fatalf("drop index: %v", err)
	}
}

func seedStudentAndClass(t *testing.T, db *gorm.DB) (*userModel.UserModel, *classModel.ClassModel) {
	t.Helper()
	teacher := userModel.UserModel{UserName: "T", UserEmail: "t@example.com", UserPassword: "x", UserRole: constants.RoleTeacher}
	if err := db.Create(&teacher).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	student := userModel.UserModel{UserName: "S", UserEmail: "s@example.com", UserPassword: "x", UserRole: constants.RoleStudent}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	class := classModel.ClassModel{ClassName: "Math", ClassJoinCode: "MATH2026", ClassTeacherID: teacher.UserID}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return &student, &class
}

func seedSubmission(t *testing.T, db *gorm.DB, studentID, classID int, name *string, status model.SubmissionStatus, score *float64, submittedAt *time.Time) *model.SubmissionModel {
	t.Helper()
	sub := model.SubmissionModel{
		SubmissionStudentID:      studentID,
		SubmissionClassID:        classID,
		SubmissionAssignmentName: name,
		SubmissionStatus:         status,
		SubmissionScore:          score,
		SubmissionSubmittedAt:    submittedAt,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return &sub
}

func strPtr(s string) *string         { return &s }
func floatPtr(f float64) *float64     { return &f }
func timePtr(tm time.Time) *time.Time { return &tm }

func TestCreateRejectsSecondSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)

	first, err := svc.Create(student.UserID, class.ClassID, "HW1", nil)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.SubmissionStatus != model.SubmissionStatusPending {
		t.Fatalf("status = %q, want Pending", first.SubmissionStatus)
	}
	if first.SubmissionSubmittedAt == nil {
		t.Fatal("submitted_at not set")
	}

	_, err = svc.Create(student.UserID, class.ClassID, "HW1", nil)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusConflict {
		t.Fatalf("second create err = %v, want 409", err)
	}

	// A different assignment name is a fresh key.
	if _, err := svc.Create(student.UserID, class.ClassID, "HW2", nil); err != nil {
		t.Fatalf("different assignment: %v", err)
	}
}

func TestGradeOverwritesWithoutCeiling(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)

	sub, err := svc.Create(student.UserID, class.ClassID, "HW1", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Scores above any assignment max must still be accepted.
	graded, err := svc.Grade(sub.SubmissionID, floatPtr(8.5), strPtr("Good work"))
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if graded.SubmissionStatus != model.SubmissionStatusGraded {
		t.Fatalf("status = %q, want Graded", graded.SubmissionStatus)
	}
	if graded.SubmissionScore == nil || *graded.SubmissionScore != 8.5 {
		t.Fatalf("score = %v, want 8.5", graded.SubmissionScore)
	}
	if graded.SubmissionGradedAt == nil {
		t.Fatal("graded_at not set")
	}

	// Re-grading with no score clears score and feedback.
	regraded, err := svc.Grade(sub.SubmissionID, nil, nil)
	if err != nil {
		t.Fatalf("regrade: %v", err)
	}
	if regraded.SubmissionScore != nil || regraded.SubmissionFeedback != nil {
		t.Fatalf("regrade kept score=%v feedback=%v", regraded.SubmissionScore, regraded.SubmissionFeedback)
	}

	stored, err := svc.GetByID(sub.SubmissionID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.SubmissionScore != nil {
		t.Fatalf("stored score = %v, want nil", stored.SubmissionScore)
	}
}

func TestGradeMissingSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})

	_, err := svc.Grade(999, floatPtr(5), nil)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestReconcilePrefersGradedSurvivor(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)
	dropTripleIndex(t, db)

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(base.Add(2*time.Hour)))
	graded := seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusGraded, floatPtr(7), timePtr(base))
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(base.Add(3*time.Hour)))

	deleted, err := svc.ReconcileDuplicates()
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}

	var remaining []model.SubmissionModel
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(remaining) != 1 || remaining[0].SubmissionID != graded.SubmissionID {
		t.Fatalf("survivor = %+v, want graded row %d", remaining, graded.SubmissionID)
	}
}

func TestReconcileFallsBackToLatestSubmitted(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)
	dropTripleIndex(t, db)

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(base))
	latest := seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(base.Add(time.Hour)))
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, nil)

	deleted, err := svc.ReconcileDuplicates()
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}

	var remaining []model.SubmissionModel
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(remaining) != 1 || remaining[0].SubmissionID != latest.SubmissionID {
		t.Fatalf("survivor = %+v, want latest row %d", remaining, latest.SubmissionID)
	}
}

func TestReconcileTieKeepsLowestID(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)
	dropTripleIndex(t, db)

	at := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	first := seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(at))
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, timePtr(at))

	if _, err := svc.ReconcileDuplicates(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	var remaining []model.SubmissionModel
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(remaining) != 1 || remaining[0].SubmissionID != first.SubmissionID {
		t.Fatalf("survivor = %+v, want lowest id %d", remaining, first.SubmissionID)
	}
}

func TestReconcileSkipsNullKeysAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)

	// Rows with a missing assignment name never group.
	seedSubmission(t, db, student.UserID, class.ClassID, nil, model.SubmissionStatusPending, nil, nil)
	seedSubmission(t, db, student.UserID, class.ClassID, nil, model.SubmissionStatusPending, nil, nil)
	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, nil)

	deleted, err := svc.ReconcileDuplicates()
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}

	again, err := svc.ReconcileDuplicates()
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if again != 0 {
		t.Fatalf("second pass deleted = %d, want 0", again)
	}

	var n int64
	if err := db.Model(&model.SubmissionModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("rows = %d, want 3", n)
	}
}

func TestListForTeacherScopesToOwnedClasses(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(db, logger.Nop{})
	student, class := seedStudentAndClass(t, db)

	other := userModel.UserModel{UserName: "T2", UserEmail: "t2@example.com", UserPassword: "x", UserRole: constants.RoleTeacher}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	otherClass := classModel.ClassModel{ClassName: "Other", ClassJoinCode: "OTHER123", ClassTeacherID: other.UserID}
	if err := db.Create(&otherClass).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	seedSubmission(t, db, student.UserID, class.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, nil)
	seedSubmission(t, db, student.UserID, otherClass.ClassID, strPtr("HW1"), model.SubmissionStatusPending, nil, nil)

	subs, err := svc.ListForTeacher(class.ClassTeacherID, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 || subs[0].SubmissionClassID != class.ClassID {
		t.Fatalf("listing = %+v", subs)
	}

	byStudent, err := svc.ListByStudent(student.UserID, &otherClass.ClassID)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(byStudent) != 1 || byStudent[0].SubmissionClassID != otherClass.ClassID {
		t.Fatalf("student listing = %+v", byStudent)
	}
}
