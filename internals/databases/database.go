package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/configs"
	blogModel "haskenrayuwa_backend/internals/features/home/blogs/model"
	linkModel "haskenrayuwa_backend/internals/features/home/links/model"
	discipleshipModel "haskenrayuwa_backend/internals/features/reports/discipleship/model"
	filmshowModel "haskenrayuwa_backend/internals/features/reports/filmshow/model"
	ingestModel "haskenrayuwa_backend/internals/features/reports/ingest/model"
	surveyModel "haskenrayuwa_backend/internals/features/reports/survey/model"
	userModel "haskenrayuwa_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=haskenrayuwa&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates all tables. Composite unique indexes on the
// report natural keys come from the model tags, so duplicate detection is
// a storage-level guarantee rather than an incidental scan.
func Migrate() {
	if err := DB.AutoMigrate(
		&surveyModel.SurveyRecord{},
		&filmshowModel.FilmShowReport{},
		&discipleshipModel.DiscipleshipReport{},
		&ingestModel.IngestLog{},
		&blogModel.Blog{},
		&linkModel.Link{},
		&userModel.User{},
		&userModel.ContactUser{},
		&userModel.VolunteerUser{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Migration complete.")
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
