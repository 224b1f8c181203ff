package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courtcms/courtcms/internal/database"
	"gorm.io/gorm"
)

// AddPartyToCase links an existing party to an existing case with a role.
// The (case, party) pair is unique; a second identical link is a conflict.
func (s *Store) AddPartyToCase(ctx context.Context, caseID, partyID int, role string) (*database.CaseParty, error) {
	if strings.TrimSpace(role) == "" {
		return nil, &ValidationError{Message: "role is required"}
	}

	if err := s.caseExists(ctx, caseID); err != nil {
		return nil, err
	}

	party, err := s.GetParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.db.WithContext(ctx).Model(&database.CaseParty{}).
		Where("court_case_id = ? AND party_id = ?", caseID, partyID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check case-party link: %w", err)
	}
	if count > 0 {
		return nil, &ConflictError{
			Message: fmt.Sprintf("%s %s is already assigned to this case", party.FirstName, party.LastName),
		}
	}

	link := database.CaseParty{
		CourtCaseID: caseID,
		PartyID:     partyID,
		Role:        role,
		CreatedDate: now(),
	}

	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		// Two concurrent adds can both pass the count check; the composite
		// primary key catches the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{
				Message: fmt.Sprintf("%s %s is already assigned to this case", party.FirstName, party.LastName),
			}
		}
		return nil, fmt.Errorf("failed to link party %d to case %d: %w", partyID, caseID, err)
	}

	link.Party = party
	return &link, nil
}

// RemovePartyFromCase hard-deletes the link row. The party and the case
// themselves are untouched.
func (s *Store) RemovePartyFromCase(ctx context.Context, caseID, partyID int) error {
	res := s.db.WithContext(ctx).
		Where("court_case_id = ? AND party_id = ?", caseID, partyID).
		Delete(&database.CaseParty{})
	if res.Error != nil {
		return fmt.Errorf("failed to unlink party %d from case %d: %w", partyID, caseID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "case-party link for party", ID: partyID}
	}
	return nil
}
