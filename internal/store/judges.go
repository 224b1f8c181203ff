package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courtcms/courtcms/internal/database"
	"gorm.io/gorm"
)

type JudgeInput struct {
	FirstName string
	LastName  string
	CourtRoom string
	IsActive  bool
}

func (in JudgeInput) validate() error {
	if strings.TrimSpace(in.FirstName) == "" {
		return &ValidationError{Message: "first name is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return &ValidationError{Message: "last name is required"}
	}
	return nil
}

func (s *Store) GetJudge(ctx context.Context, id int) (*database.Judge, error) {
	var judge database.Judge
	err := visible(s.db.WithContext(ctx)).First(&judge, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "judge", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load judge %d: %w", id, err)
	}
	return &judge, nil
}

// ListActiveJudges returns live, active judges ordered by last then first
// name. It feeds the assignment dropdown, so inactive judges are excluded.
func (s *Store) ListActiveJudges(ctx context.Context) ([]database.Judge, error) {
	var judges []database.Judge
	err := visible(s.db.WithContext(ctx)).
		Where("is_active = ?", true).
		Order("last_name, first_name").
		Find(&judges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list judges: %w", err)
	}
	return judges, nil
}

func (s *Store) CreateJudge(ctx context.Context, in JudgeInput) (*database.Judge, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	judge := database.Judge{
		AuditFields: database.AuditFields{CreatedDate: now()},
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CourtRoom:   in.CourtRoom,
		IsActive:    in.IsActive,
	}

	if err := s.db.WithContext(ctx).Create(&judge).Error; err != nil {
		return nil, fmt.Errorf("failed to create judge: %w", err)
	}
	return &judge, nil
}

func (s *Store) UpdateJudge(ctx context.Context, id int, in JudgeInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}

	var existing database.Judge
	err := visible(s.db.WithContext(ctx)).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, &NotFoundError{Entity: "judge", ID: id}
	}
	if err != nil {
		return false, fmt.Errorf("failed to load judge %d: %w", id, err)
	}

	if existing.FirstName == in.FirstName &&
		existing.LastName == in.LastName &&
		existing.CourtRoom == in.CourtRoom &&
		existing.IsActive == in.IsActive {
		return false, nil
	}

	err = s.updateGuarded(ctx, &database.Judge{}, "judge", id, map[string]interface{}{
		"first_name":         in.FirstName,
		"last_name":          in.LastName,
		"court_room":         in.CourtRoom,
		"is_active":          in.IsActive,
		"last_modified_date": now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteJudge soft-deletes a judge. Cases keep their judge reference; the
// projection layer renders it as "Unassigned" once the judge is gone.
func (s *Store) DeleteJudge(ctx context.Context, id int) error {
	return s.softDelete(ctx, &database.Judge{}, "judge", id)
}
