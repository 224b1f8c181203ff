package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courtcms/courtcms/internal/database"
	"gorm.io/gorm"
)

type PartyInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (in PartyInput) validate() error {
	if strings.TrimSpace(in.FirstName) == "" {
		return &ValidationError{Message: "first name is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return &ValidationError{Message: "last name is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return &ValidationError{Message: "email is required"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return &ValidationError{Message: "phone is required"}
	}
	return nil
}

func (s *Store) GetParty(ctx context.Context, id int) (*database.Party, error) {
	var party database.Party
	err := visible(s.db.WithContext(ctx)).First(&party, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "party", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load party %d: %w", id, err)
	}
	return &party, nil
}

// ListParties returns all live parties ordered by last then first name.
func (s *Store) ListParties(ctx context.Context) ([]database.Party, error) {
	var parties []database.Party
	err := visible(s.db.WithContext(ctx)).
		Order("last_name, first_name").
		Find(&parties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

func (s *Store) CreateParty(ctx context.Context, in PartyInput) (*database.Party, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	party := database.Party{
		AuditFields: database.AuditFields{CreatedDate: now()},
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
	}

	if err := s.db.WithContext(ctx).Create(&party).Error; err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}
	return &party, nil
}

// UpdateParty reports whether a write happened; an unchanged payload is a
// no-op and does not touch the audit timestamp.
func (s *Store) UpdateParty(ctx context.Context, id int, in PartyInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}

	var existing database.Party
	err := visible(s.db.WithContext(ctx)).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, &NotFoundError{Entity: "party", ID: id}
	}
	if err != nil {
		return false, fmt.Errorf("failed to load party %d: %w", id, err)
	}

	if existing.FirstName == in.FirstName &&
		existing.LastName == in.LastName &&
		existing.Email == in.Email &&
		existing.Phone == in.Phone {
		return false, nil
	}

	err = s.updateGuarded(ctx, &database.Party{}, "party", id, map[string]interface{}{
		"first_name":         in.FirstName,
		"last_name":          in.LastName,
		"email":              in.Email,
		"phone":              in.Phone,
		"last_modified_date": now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteParty soft-deletes a party. Existing case links keep their rows.
func (s *Store) DeleteParty(ctx context.Context, id int) error {
	return s.softDelete(ctx, &database.Party{}, "party", id)
}
