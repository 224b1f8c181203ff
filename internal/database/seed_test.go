package database

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	var judgeCount, caseCount int64
	db.Model(&Judge{}).Count(&judgeCount)
	db.Model(&CourtCase{}).Count(&caseCount)

	if judgeCount != 3 {
		t.Errorf("expected 3 seeded judges, got %d", judgeCount)
	}
	if caseCount != 2 {
		t.Errorf("expected 2 seeded cases, got %d", caseCount)
	}
}

func TestSeedAssignsJudges(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var courtCase CourtCase
	if err := db.Preload("AssignedJudge").Where("case_number = ?", "2024-CIV-001").First(&courtCase).Error; err != nil {
		t.Fatalf("failed to load seeded case: %v", err)
	}
	if courtCase.AssignedJudge == nil || courtCase.AssignedJudge.LastName != "Scheindlin" {
		t.Error("seeded case must reference its judge")
	}
}
