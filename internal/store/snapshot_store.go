package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// UserSnapshot is the stored row: one identity's full collection state
// serialized as a single JSON document, keyed by the opaque identity string.
type UserSnapshot struct {
	UserID    string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SnapshotStore is the persistence contract consumed by the engine.
type SnapshotStore interface {
	// Load returns the snapshot for an identity, or ErrSnapshotNotFound.
	Load(ctx context.Context, userID string) (*models.Snapshot, error)
	// Save replaces the identity's snapshot, creating it if absent.
	Save(ctx context.Context, userID string, snap *models.Snapshot) error
}

// snapshotStore is the gorm-backed SnapshotStore.
type snapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a SnapshotStore on top of an open database.
func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return &snapshotStore{db: db}
}

// Load retrieves and decodes the snapshot for a user.
func (s *snapshotStore) Load(ctx context.Context, userID string) (*models.Snapshot, error) {
	var row UserSnapshot
	if err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSnapshotNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &snap, nil
}

// Save upserts the snapshot row for a user.
func (s *snapshotStore) Save(ctx context.Context, userID string, snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}

	row := UserSnapshot{UserID: userID, Data: data}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}
