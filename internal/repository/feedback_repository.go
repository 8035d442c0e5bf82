package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/sentiment-monitor/internal/repository/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type FeedbackRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewFeedbackRepository(db *sql.DB, dialect Dialect) *FeedbackRepository {
	return &FeedbackRepository{db: db, dialect: dialect}
}

// InsertFeedback stores a record and returns the id assigned by the database.
func (s *FeedbackRepository) InsertFeedback(ctx context.Context, row models.FeedbackRow) (int64, error) {
	const query = `
		INSERT INTO feedback (comment, rating, emotion, sentiment, event_id, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query),
		row.Comment, row.Rating, row.Emotion, row.Sentiment, row.EventID, row.Timestamp.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("query InsertFeedback: %w", err)
	}
	return id, nil
}

// ListFeedback returns every record, newest first.
func (s *FeedbackRepository) ListFeedback(ctx context.Context) ([]models.FeedbackRow, error) {
	const query = `
		SELECT id, comment, rating, emotion, sentiment, event_id, timestamp
		FROM feedback
		ORDER BY timestamp DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListFeedback: %w", err)
	}
	defer rows.Close()

	results := make([]models.FeedbackRow, 0)
	for rows.Next() {
		var r models.FeedbackRow
		if err := rows.Scan(&r.ID, &r.Comment, &r.Rating, &r.Emotion, &r.Sentiment, &r.EventID, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan ListFeedback row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListFeedback: %w", err)
	}
	return results, nil
}

// GetFeedbackByID returns ErrNotFound when no record has the id.
func (s *FeedbackRepository) GetFeedbackByID(ctx context.Context, id int64) (models.FeedbackRow, error) {
	const query = `
		SELECT id, comment, rating, emotion, sentiment, event_id, timestamp
		FROM feedback
		WHERE id = ?
	`

	var r models.FeedbackRow
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), id).
		Scan(&r.ID, &r.Comment, &r.Rating, &r.Emotion, &r.Sentiment, &r.EventID, &r.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FeedbackRow{}, ErrNotFound
		}
		return models.FeedbackRow{}, fmt.Errorf("query GetFeedbackByID: %w", err)
	}
	return r, nil
}

// GroupFeedback counts the whole table by stored sentiment and emotion in a
// single scan, so the groups always describe one consistent state.
func (s *FeedbackRepository) GroupFeedback(ctx context.Context) ([]models.FeedbackGroup, error) {
	const query = `
		SELECT
			sentiment,
			emotion,
			COUNT(*) AS count,
			COALESCE(SUM(rating), 0) AS rating_sum
		FROM feedback
		GROUP BY sentiment, emotion
		ORDER BY sentiment, emotion
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GroupFeedback: %w", err)
	}
	defer rows.Close()

	var results []models.FeedbackGroup
	for rows.Next() {
		var g models.FeedbackGroup
		if err := rows.Scan(&g.Sentiment, &g.Emotion, &g.Count, &g.RatingSum); err != nil {
			return nil, fmt.Errorf("scan GroupFeedback row: %w", err)
		}
		results = append(results, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GroupFeedback: %w", err)
	}
	return results, nil
}
