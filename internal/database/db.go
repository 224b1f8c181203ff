package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(dbPath string) (*gorm.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Judge{},
		&Party{},
		&CourtCase{},
		&Hearing{},
		&CaseParty{},
	); err != nil {
		return err
	}

	return createIndexes(db)
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Index for the case list, which is ordered by creation time
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_court_cases_created
		ON court_cases(created_date)
	`).Error; err != nil {
		return err
	}

	// Index for name-ordered party and judge listings
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_parties_name
		ON parties(last_name, first_name)
	`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_judges_name
		ON judges(last_name, first_name)
	`).Error; err != nil {
		return err
	}

	// Index for hearings looked up by owning case
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_hearings_case
		ON hearings(court_case_id)
	`).Error; err != nil {
		return err
	}

	return nil
}
