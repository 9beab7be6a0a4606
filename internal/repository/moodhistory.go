package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/types"
)

// moodSnapshotModel maps to the mood_snapshots table.
type moodSnapshotModel struct {
	ID        int
	Pleasure  float64
	Arousal   float64
	Dominance float64
	Lust      float64
	Quadrant  string
	Level     string
	Phase     string
	// Embedding stores the PAD axes as a vector for similarity search.
	Embedding pgvector.Vector `gorm:"type:vector(3)"`
	CreatedAt time.Time
}

func (moodSnapshotModel) TableName() string {
	return "mood_snapshots"
}

// MoodMoment is a retrieved past emotional moment.
type MoodMoment struct {
	Mood      types.MoodState
	Lust      float64
	Quadrant  string
	Level     string
	Distance  float64
	CreatedAt time.Time
}

// MoodHistoryRepo appends per-turn mood snapshots and retrieves the most
// similar past moments by PAD distance. It implements mood.HistorySink.
type MoodHistoryRepo struct {
	db *gorm.DB
}

// NewMoodHistoryRepo returns a MoodHistoryRepo.
func NewMoodHistoryRepo(db *gorm.DB) *MoodHistoryRepo {
	return &MoodHistoryRepo{db: db}
}

// AddSnapshot appends one snapshot row for the record and its directive.
func (r *MoodHistoryRepo) AddSnapshot(ctx context.Context, rec types.StateRecord, d mood.Directive) error {
	record := moodSnapshotModel{
		Pleasure:  rec.Mood.Pleasure,
		Arousal:   rec.Mood.Arousal,
		Dominance: rec.Mood.Dominance,
		Lust:      rec.Desire.Lust,
		Quadrant:  string(d.Quadrant),
		Level:     string(d.Level),
		Phase:     string(d.Phase),
		Embedding: pgvector.NewVector([]float32{
			float32(rec.Mood.Pleasure),
			float32(rec.Mood.Arousal),
			float32(rec.Mood.Dominance),
		}),
		CreatedAt: rec.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert mood snapshot: %w", err)
	}
	return nil
}

// SimilarMoments returns the stored moments closest to the given mood.
func (r *MoodHistoryRepo) SimilarMoments(ctx context.Context, m types.MoodState, limit int) ([]MoodMoment, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `
		SELECT pleasure, arousal, dominance, lust, quadrant, level, created_at,
		       embedding <-> $1 AS distance
		FROM mood_snapshots
		ORDER BY embedding <-> $1
		LIMIT $2`
	target := pgvector.NewVector([]float32{
		float32(m.Pleasure),
		float32(m.Arousal),
		float32(m.Dominance),
	})

	var rows []struct {
		Pleasure  float64
		Arousal   float64
		Dominance float64
		Lust      float64
		Quadrant  string
		Level     string
		CreatedAt time.Time
		Distance  float64
	}
	if err := r.db.WithContext(ctx).Raw(query, target, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar moments: %w", err)
	}

	results := make([]MoodMoment, 0, len(rows))
	for _, row := range rows {
		results = append(results, MoodMoment{
			Mood: types.MoodState{
				Pleasure:  row.Pleasure,
				Arousal:   row.Arousal,
				Dominance: row.Dominance,
			},
			Lust:      row.Lust,
			Quadrant:  row.Quadrant,
			Level:     row.Level,
			Distance:  row.Distance,
			CreatedAt: row.CreatedAt,
		})
	}
	return results, nil
}
