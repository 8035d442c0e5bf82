package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/sentiment-monitor/internal/repository/models"
)

// analyticsRowID is the id of the single analytics row.
const analyticsRowID = 1

type AnalyticsRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewAnalyticsRepository(db *sql.DB, dialect Dialect) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, dialect: dialect}
}

// GetAnalytics reads the current snapshot row. It returns ErrNotFound when the
// row was never seeded.
func (s *AnalyticsRepository) GetAnalytics(ctx context.Context) (models.AnalyticsRow, error) {
	const query = `
		SELECT positive, neutral, negative, total, average_rating,
			emotion_happy, emotion_neutral, emotion_unhappy, last_updated
		FROM analytics
		WHERE id = ?
	`

	var r models.AnalyticsRow
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), analyticsRowID).Scan(
		&r.Positive, &r.Neutral, &r.Negative, &r.Total, &r.AverageRating,
		&r.EmotionHappy, &r.EmotionNeutral, &r.EmotionUnhappy, &r.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AnalyticsRow{}, ErrNotFound
		}
		return models.AnalyticsRow{}, fmt.Errorf("query GetAnalytics: %w", err)
	}
	return r, nil
}

// SaveAnalytics replaces the snapshot row entirely.
func (s *AnalyticsRepository) SaveAnalytics(ctx context.Context, r models.AnalyticsRow) error {
	const query = `
		INSERT INTO analytics (id, positive, neutral, negative, total, average_rating,
			emotion_happy, emotion_neutral, emotion_unhappy, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			positive = excluded.positive,
			neutral = excluded.neutral,
			negative = excluded.negative,
			total = excluded.total,
			average_rating = excluded.average_rating,
			emotion_happy = excluded.emotion_happy,
			emotion_neutral = excluded.emotion_neutral,
			emotion_unhappy = excluded.emotion_unhappy,
			last_updated = excluded.last_updated
	`

	_, err := s.db.ExecContext(ctx, s.dialect.Rebind(query),
		analyticsRowID, r.Positive, r.Neutral, r.Negative, r.Total, r.AverageRating,
		r.EmotionHappy, r.EmotionNeutral, r.EmotionUnhappy, r.LastUpdated.UTC(),
	)
	if err != nil {
		return fmt.Errorf("exec SaveAnalytics: %w", err)
	}
	return nil
}
