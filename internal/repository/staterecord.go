package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/types"
)

// stateRecordModel maps to the state_records table.
type stateRecordModel struct {
	ID            int    `gorm:"primaryKey"`
	CharacterKey  string `gorm:"uniqueIndex"`
	SchemaVersion int
	Version       int64
	Pleasure      float64
	Arousal       float64
	Dominance     float64
	Lust          float64
	Stamina       float64
	CycleStart    time.Time
	CycleLength   int
	Sensitivity   float64
	LastRelease   *time.Time
	UpdatedAt     time.Time
}

func (stateRecordModel) TableName() string {
	return "state_records"
}

// StateRecordRepo persists one StateRecord per character key with an
// optimistic version column. It implements mood.StateRepo.
type StateRecordRepo struct {
	db  *gorm.DB
	key string
}

// NewStateRecordRepo returns a repo bound to one character key.
func NewStateRecordRepo(db *gorm.DB, key string) *StateRecordRepo {
	return &StateRecordRepo{db: db, key: key}
}

// Get fetches the record, creating it with neutral defaults on first use.
func (r *StateRecordRepo) Get(ctx context.Context) (types.StateRecord, error) {
	var model stateRecordModel
	err := r.db.WithContext(ctx).Where("character_key = ?", r.key).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec := types.NewStateRecord(time.Now())
		model = modelFromRecord(r.key, rec)
		if createErr := r.db.WithContext(ctx).Create(&model).Error; createErr != nil {
			return types.StateRecord{}, fmt.Errorf("failed to create state record: %w", createErr)
		}
		return rec, nil
	}
	if err != nil {
		return types.StateRecord{}, fmt.Errorf("failed to get state record: %w", err)
	}
	return recordFromModel(model), nil
}

// Save replaces the record only if the stored version still matches
// rec.Version; otherwise it fails with mood.ErrStaleRecord.
func (r *StateRecordRepo) Save(ctx context.Context, rec types.StateRecord) error {
	result := r.db.WithContext(ctx).
		Model(&stateRecordModel{}).
		Where("character_key = ? AND version = ?", r.key, rec.Version).
		Updates(map[string]any{
			"schema_version": rec.SchemaVersion,
			"version":        rec.Version + 1,
			"pleasure":       rec.Mood.Pleasure,
			"arousal":        rec.Mood.Arousal,
			"dominance":      rec.Mood.Dominance,
			"lust":           rec.Desire.Lust,
			"stamina":        rec.Biology.Stamina,
			"cycle_start":    rec.Biology.CycleStartDate,
			"cycle_length":   rec.Biology.CycleLength,
			"sensitivity":    rec.Biology.Sensitivity,
			"last_release":   rec.Biology.LastReleaseTime,
			"updated_at":     rec.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update state record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return mood.ErrStaleRecord
	}
	return nil
}

func modelFromRecord(key string, rec types.StateRecord) stateRecordModel {
	return stateRecordModel{
		CharacterKey:  key,
		SchemaVersion: rec.SchemaVersion,
		Version:       rec.Version,
		Pleasure:      rec.Mood.Pleasure,
		Arousal:       rec.Mood.Arousal,
		Dominance:     rec.Mood.Dominance,
		Lust:          rec.Desire.Lust,
		Stamina:       rec.Biology.Stamina,
		CycleStart:    rec.Biology.CycleStartDate,
		CycleLength:   rec.Biology.CycleLength,
		Sensitivity:   rec.Biology.Sensitivity,
		LastRelease:   rec.Biology.LastReleaseTime,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func recordFromModel(model stateRecordModel) types.StateRecord {
	return types.StateRecord{
		SchemaVersion: model.SchemaVersion,
		Version:       model.Version,
		Mood: types.MoodState{
			Pleasure:  model.Pleasure,
			Arousal:   model.Arousal,
			Dominance: model.Dominance,
		},
		Desire: types.DesireState{Lust: model.Lust},
		Biology: types.BiologicalState{
			Stamina:         model.Stamina,
			CycleStartDate:  model.CycleStart,
			CycleLength:     model.CycleLength,
			Sensitivity:     model.Sensitivity,
			LastReleaseTime: model.LastRelease,
		},
		UpdatedAt: model.UpdatedAt,
	}
}
