package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Seed inserts starter judges and cases into an empty database. It is a
// no-op when any judge row already exists, so it is safe to run on every
// startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Judge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing judges: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	judges := []Judge{
		{
			AuditFields: AuditFields{CreatedDate: now},
			FirstName:   "Judy",
			LastName:    "Scheindlin",
			CourtRoom:   "Room 101",
			IsActive:    true,
		},
		{
			AuditFields: AuditFields{CreatedDate: now},
			FirstName:   "Joseph",
			LastName:    "Wapner",
			CourtRoom:   "Room 102",
			IsActive:    false,
		},
		{
			AuditFields: AuditFields{CreatedDate: now},
			FirstName:   "Marilyn",
			LastName:    "Milian",
			CourtRoom:   "Room 205",
			IsActive:    true,
		},
	}

	if err := db.Create(&judges).Error; err != nil {
		return fmt.Errorf("failed to seed judges: %w", err)
	}

	cases := []CourtCase{
		{
			AuditFields:     AuditFields{CreatedDate: now},
			CaseNumber:      "2024-CIV-001",
			Title:           "City of Orange vs. Construction Co.",
			Status:          "Open",
			FilingDate:      now.AddDate(0, 0, -10),
			AssignedJudgeID: &judges[0].ID,
		},
		{
			AuditFields:     AuditFields{CreatedDate: now},
			CaseNumber:      "2024-FAM-045",
			Title:           "Doe vs. Doe",
			Status:          "Closed",
			FilingDate:      now.AddDate(0, -5, 0),
			AssignedJudgeID: &judges[2].ID,
		},
	}

	if err := db.Create(&cases).Error; err != nil {
		return fmt.Errorf("failed to seed cases: %w", err)
	}

	return nil
}
