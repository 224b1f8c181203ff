package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courtcms/courtcms/internal/database"
	"gorm.io/gorm"
)

// DefaultCaseStatus is the status assigned to every newly filed case.
// Status is free text by convention ("Open", "Closed", "Suspended"); no
// transition graph is enforced.
const DefaultCaseStatus = "Open"

type CreateCaseInput struct {
	CaseNumber      string
	Title           string
	AssignedJudgeID *int
}

type UpdateCaseInput struct {
	CaseNumber      string
	Title           string
	Status          string
	AssignedJudgeID *int
}

// GetCase loads a single live case with its judge, non-deleted hearings and
// party links eagerly loaded for the detail view.
func (s *Store) GetCase(ctx context.Context, id int) (*database.CourtCase, error) {
	var courtCase database.CourtCase
	err := visible(s.db.WithContext(ctx)).
		Preload("AssignedJudge", visible).
		Preload("Hearings", func(db *gorm.DB) *gorm.DB {
			return visible(db).Order("hearing_date")
		}).
		Preload("CaseParties.Party").
		First(&courtCase, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "case", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load case %d: %w", id, err)
	}
	return &courtCase, nil
}

// ListCases returns all live cases, newest first, with judges resolved for
// the flattened list view.
func (s *Store) ListCases(ctx context.Context) ([]database.CourtCase, error) {
	var cases []database.CourtCase
	err := visible(s.db.WithContext(ctx)).
		Preload("AssignedJudge", visible).
		Order("created_date DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// CreateCase files a new case with status "Open" and the filing date set to
// the current time. The judge reference is stored as given; a dangling
// reference simply projects as "Unassigned".
func (s *Store) CreateCase(ctx context.Context, in CreateCaseInput) (*database.CourtCase, error) {
	if strings.TrimSpace(in.CaseNumber) == "" {
		return nil, &ValidationError{Message: "case number is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, &ValidationError{Message: "title is required"}
	}

	courtCase := database.CourtCase{
		AuditFields:     database.AuditFields{CreatedDate: now()},
		CaseNumber:      in.CaseNumber,
		Title:           in.Title,
		Status:          DefaultCaseStatus,
		FilingDate:      now(),
		AssignedJudgeID: in.AssignedJudgeID,
	}

	if err := s.db.WithContext(ctx).Create(&courtCase).Error; err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	// Resolve the judge so the response can carry the full name immediately.
	if courtCase.AssignedJudgeID != nil {
		var judge database.Judge
		err := visible(s.db.WithContext(ctx)).First(&judge, *courtCase.AssignedJudgeID).Error
		if err == nil {
			courtCase.AssignedJudge = &judge
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load judge %d: %w", *courtCase.AssignedJudgeID, err)
		}
	}

	return &courtCase, nil
}

// UpdateCase persists the given fields. It reports whether a write happened:
// an unchanged payload performs no write and leaves LastModifiedDate alone.
func (s *Store) UpdateCase(ctx context.Context, id int, in UpdateCaseInput) (bool, error) {
	if strings.TrimSpace(in.CaseNumber) == "" {
		return false, &ValidationError{Message: "case number is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return false, &ValidationError{Message: "title is required"}
	}

	var existing database.CourtCase
	err := visible(s.db.WithContext(ctx)).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, &NotFoundError{Entity: "case", ID: id}
	}
	if err != nil {
		return false, fmt.Errorf("failed to load case %d: %w", id, err)
	}

	if existing.CaseNumber == in.CaseNumber &&
		existing.Title == in.Title &&
		existing.Status == in.Status &&
		intPtrEqual(existing.AssignedJudgeID, in.AssignedJudgeID) {
		return false, nil
	}

	err = s.updateGuarded(ctx, &database.CourtCase{}, "case", id, map[string]interface{}{
		"case_number":        in.CaseNumber,
		"title":              in.Title,
		"status":             in.Status,
		"assigned_judge_id":  in.AssignedJudgeID,
		"last_modified_date": now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCase soft-deletes a case. Hearings and links keep their rows; the
// visibility predicate hides the case from every read path.
func (s *Store) DeleteCase(ctx context.Context, id int) error {
	return s.softDelete(ctx, &database.CourtCase{}, "case", id)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
