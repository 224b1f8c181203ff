// Package store is the data access layer for the court case management
// service. It owns the soft-delete visibility rule, the audit timestamp
// rules, and every referential check that must happen before a write.
package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Store wraps the database handle. It is created once at startup and shared
// across requests; each operation threads its request context into GORM.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// visible is the single row-visibility predicate for soft-deleted entities.
// Every read path for judges, parties, cases and hearings goes through it.
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

func now() time.Time {
	return time.Now().UTC()
}

// updateGuarded applies updates to the identified row as long as it is
// still live. An UPDATE that matches zero rows means the row was deleted
// out from under us: re-check, map absence to NotFoundError, and retry the
// write once if the row is in fact still there. There is no version column;
// this recheck is the whole concurrency story.
func (s *Store) updateGuarded(ctx context.Context, model interface{}, entity string, id int, updates map[string]interface{}) error {
	for attempt := 0; attempt < 2; attempt++ {
		res := s.db.WithContext(ctx).Model(model).
			Where("id = ? AND is_deleted = ?", id, false).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to update %s %d: %w", entity, id, res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var count int64
		err := s.db.WithContext(ctx).Model(model).
			Where("id = ? AND is_deleted = ?", id, false).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to re-check %s %d: %w", entity, id, err)
		}
		if count == 0 {
			return &NotFoundError{Entity: entity, ID: id}
		}
	}

	return &ConflictError{Message: fmt.Sprintf("%s with ID %d was modified concurrently", entity, id)}
}

// softDelete marks the row deleted and stamps the modification time. A row
// that is already gone (or already soft-deleted) reports NotFound.
func (s *Store) softDelete(ctx context.Context, model interface{}, entity string, id int) error {
	return s.updateGuarded(ctx, model, entity, id, map[string]interface{}{
		"is_deleted":         true,
		"last_modified_date": now(),
	})
}
