// Package mirror persists JSON snapshots of the in-memory stores under
// namespaced string keys. It is a same-process cache for cross-restart
// reuse, never the system of record.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot keys. One key per serialized view, matching the views the
// public site reads.
const (
	KeyProducts     = "brightfuture:products"
	KeyFeatured     = "brightfuture:featured"
	KeyCategorized  = "brightfuture:categorized"
	KeyPortfolio    = "brightfuture:portfolio"
	KeyTestimonials = "brightfuture:testimonials"
)

var ErrNotFound = errors.New("snapshot not found")

// Snapshot is a single key → JSON document row.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Data      []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put serializes v and upserts it under key.
func (s *Store) Put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	snap := Snapshot{Key: key, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&snap).Error
}

// Get deserializes the snapshot stored under key into dest.
func (s *Store) Get(ctx context.Context, key string, dest any) error {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(snap.Data, dest)
}

// Delete removes the snapshot stored under key. Missing keys are not an
// error.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Snapshot{}, "key = ?", key).Error
}
