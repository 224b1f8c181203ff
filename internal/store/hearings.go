package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtcms/courtcms/internal/database"
	"gorm.io/gorm"
)

type HearingInput struct {
	Description string
	HearingDate time.Time
	Location    string
}

func (in HearingInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return &ValidationError{Message: "description is required"}
	}
	if in.HearingDate.IsZero() {
		return &ValidationError{Message: "hearing date is required"}
	}
	if strings.TrimSpace(in.Location) == "" {
		return &ValidationError{Message: "location is required"}
	}
	return nil
}

// caseExists checks for a live case row without loading its relations.
func (s *Store) caseExists(ctx context.Context, caseID int) error {
	var count int64
	err := visible(s.db.WithContext(ctx).Model(&database.CourtCase{})).
		Where("id = ?", caseID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check case %d: %w", caseID, err)
	}
	if count == 0 {
		return &NotFoundError{Entity: "case", ID: caseID}
	}
	return nil
}

// loadOwnedHearing loads a live hearing and verifies it belongs to the case
// it was addressed through. The ownership check runs before any mutation.
func (s *Store) loadOwnedHearing(ctx context.Context, caseID, hearingID int) (*database.Hearing, error) {
	var hearing database.Hearing
	err := visible(s.db.WithContext(ctx)).First(&hearing, hearingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "hearing", ID: hearingID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load hearing %d: %w", hearingID, err)
	}
	if hearing.CourtCaseID != caseID {
		return nil, &ValidationError{Message: "this hearing does not belong to the specified case"}
	}
	return &hearing, nil
}

// CreateHearing schedules a hearing under an existing case.
func (s *Store) CreateHearing(ctx context.Context, caseID int, in HearingInput) (*database.Hearing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.caseExists(ctx, caseID); err != nil {
		return nil, err
	}

	hearing := database.Hearing{
		AuditFields: database.AuditFields{CreatedDate: now()},
		Description: in.Description,
		HearingDate: in.HearingDate,
		Location:    in.Location,
		CourtCaseID: caseID,
	}

	if err := s.db.WithContext(ctx).Create(&hearing).Error; err != nil {
		return nil, fmt.Errorf("failed to create hearing: %w", err)
	}
	return &hearing, nil
}

// UpdateHearing persists hearing fields after the ownership check. It
// reports whether a write happened.
func (s *Store) UpdateHearing(ctx context.Context, caseID, hearingID int, in HearingInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}

	existing, err := s.loadOwnedHearing(ctx, caseID, hearingID)
	if err != nil {
		return false, err
	}

	if existing.Description == in.Description &&
		existing.HearingDate.Equal(in.HearingDate) &&
		existing.Location == in.Location {
		return false, nil
	}

	err = s.updateGuarded(ctx, &database.Hearing{}, "hearing", hearingID, map[string]interface{}{
		"description":        in.Description,
		"hearing_date":       in.HearingDate,
		"location":           in.Location,
		"last_modified_date": now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteHearing soft-deletes a hearing after the ownership check.
func (s *Store) DeleteHearing(ctx context.Context, caseID, hearingID int) error {
	if _, err := s.loadOwnedHearing(ctx, caseID, hearingID); err != nil {
		return err
	}
	return s.softDelete(ctx, &database.Hearing{}, "hearing", hearingID)
}
