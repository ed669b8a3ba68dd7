package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

func sweepMarkerKey(name string) string {
	return fmt.Sprintf("sweep_marker:%s", name)
}

// GetSweepMarker retrieves the last completed run time of a named sweep
func (s *pgStore) GetSweepMarker(ctx context.Context, name string) (*time.Time, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", sweepMarkerKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Never ran
		}
		return nil, wrapError("get sweep marker", err)
	}

	at, err := time.Parse(time.RFC3339Nano, kv.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sweep marker: %w", err)
	}

	return &at, nil
}

// SetSweepMarker stores the last completed run time of a named sweep
func (s *pgStore) SetSweepMarker(ctx context.Context, name string, at time.Time) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	kv := schema.KeyValueStore{
		Key:   sweepMarkerKey(name),
		Value: at.UTC().Format(time.RFC3339Nano),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kv).Error
	if err != nil {
		return wrapError("set sweep marker", err)
	}

	return nil
}
