package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	assignmentModel "classroom_backend/internals/features/assignments/model"
	attendanceModel "classroom_backend/internals/features/attendance/model"
	classModel "classroom_backend/internals/features/classes/model"
	notificationModel "classroom_backend/internals/features/notifications/model"
	postModel "classroom_backend/internals/features/posts/model"
	submissionModel "classroom_backend/internals/features/submissions/model"
	userModel "classroom_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=classroom&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 plays nice with PgBouncer (transaction pooling)
	}), &gorm.Config{
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the schema, including the unique indexes the
// services rely on (join code, class+date, class+student, submission triple).
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&classModel.ClassStudentModel{},
		&postModel.PostModel{},
		&assignmentModel.AssignmentModel{},
		&attendanceModel.AttendanceModel{},
		&submissionModel.SubmissionModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ migrations applied")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
