package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/godilite/sentiment-monitor/internal/repository"
	"github.com/godilite/sentiment-monitor/internal/repository/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every pooled connection would otherwise get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.EnsureSchema(context.Background(), db, repository.DialectSQLite))
	return db
}

func seedTestData(t *testing.T, repo *repository.FeedbackRepository, baseTime time.Time) []int64 {
	t.Helper()

	rows := []models.FeedbackRow{
		{Comment: "Great talk", Rating: 5, Emotion: "happy", Sentiment: "positive", EventID: "gophercon", Timestamp: baseTime},
		{Comment: "Bad audio", Rating: 1, Emotion: "unhappy", Sentiment: "negative", EventID: "gophercon", Timestamp: baseTime.Add(time.Hour)},
		{Comment: "Fine I guess", Rating: 3, Emotion: "neutral", Sentiment: "neutral", EventID: "default-event", Timestamp: baseTime.Add(2 * time.Hour)},
		{Comment: "Loved it", Rating: 4, Emotion: "happy", Sentiment: "positive", EventID: "default-event", Timestamp: baseTime.Add(2 * time.Hour)},
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		id, err := repo.InsertFeedback(context.Background(), r)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestFeedbackRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	repo := repository.NewFeedbackRepository(db, repository.DialectSQLite)
	baseTime := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)
	ids := seedTestData(t, repo, baseTime)

	t.Run("InsertFeedback assigns increasing ids", func(t *testing.T) {
		require.Len(t, ids, 4)
		for i := 1; i < len(ids); i++ {
			require.Greater(t, ids[i], ids[i-1])
		}
	})

	t.Run("GetFeedbackByID", func(t *testing.T) {
		row, err := repo.GetFeedbackByID(ctx, ids[1])
		require.NoError(t, err)

		require.Equal(t, ids[1], row.ID)
		require.Equal(t, "Bad audio", row.Comment)
		require.Equal(t, 1, row.Rating)
		require.Equal(t, "unhappy", row.Emotion)
		require.Equal(t, "negative", row.Sentiment)
		require.Equal(t, "gophercon", row.EventID)
		require.True(t, baseTime.Add(time.Hour).Equal(row.Timestamp))
	})

	t.Run("GetFeedbackByID - missing", func(t *testing.T) {
		_, err := repo.GetFeedbackByID(ctx, 9999)
		require.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("ListFeedback newest first", func(t *testing.T) {
		rows, err := repo.ListFeedback(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		// equal timestamps fall back to the later id
		require.Equal(t, "Loved it", rows[0].Comment)
		require.Equal(t, "Fine I guess", rows[1].Comment)
		require.Equal(t, "Bad audio", rows[2].Comment)
		require.Equal(t, "Great talk", rows[3].Comment)
	})

	t.Run("GroupFeedback", func(t *testing.T) {
		groups, err := repo.GroupFeedback(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 3)

		var count, sum int64
		for _, g := range groups {
			count += g.Count
			sum += g.RatingSum
			if g.Sentiment == "positive" {
				require.Equal(t, "happy", g.Emotion)
				require.Equal(t, int64(2), g.Count)
				require.Equal(t, int64(9), g.RatingSum)
			}
		}
		require.Equal(t, int64(4), count)
		require.Equal(t, int64(13), sum)
	})
}

func TestFeedbackRepository_EmptyTable(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFeedbackRepository(setupTestDB(t), repository.DialectSQLite)

	rows, err := repo.ListFeedback(ctx)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)

	groups, err := repo.GroupFeedback(ctx)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestFeedbackRepository_RatingConstraint(t *testing.T) {
	repo := repository.NewFeedbackRepository(setupTestDB(t), repository.DialectSQLite)

	_, err := repo.InsertFeedback(context.Background(), models.FeedbackRow{
		Comment: "too good", Rating: 6, Emotion: "happy", Sentiment: "positive",
		EventID: "default-event", Timestamp: time.Now(),
	})
	require.Error(t, err)
}

func TestAnalyticsRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewAnalyticsRepository(db, repository.DialectSQLite)

	t.Run("seeded placeholder", func(t *testing.T) {
		row, err := repo.GetAnalytics(ctx)
		require.NoError(t, err)
		require.Equal(t, 65, row.Positive)
		require.Equal(t, 25, row.Neutral)
		require.Equal(t, 10, row.Negative)
		require.Equal(t, int64(0), row.Total)
		require.Equal(t, 0.0, row.AverageRating)
	})

	t.Run("EnsureSchema keeps the existing row", func(t *testing.T) {
		require.NoError(t, repo.SaveAnalytics(ctx, models.AnalyticsRow{
			Positive: 50, Negative: 50, Total: 2, AverageRating: 2,
			LastUpdated: time.Now(),
		}))
		require.NoError(t, repository.EnsureSchema(ctx, db, repository.DialectSQLite))

		row, err := repo.GetAnalytics(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(2), row.Total)
	})

	t.Run("SaveAnalytics replaces the row", func(t *testing.T) {
		updated := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)
		want := models.AnalyticsRow{
			Positive: 33, Neutral: 33, Negative: 33, Total: 3, AverageRating: 3.3,
			EmotionHappy: 1, EmotionNeutral: 1, EmotionUnhappy: 1, LastUpdated: updated,
		}
		require.NoError(t, repo.SaveAnalytics(ctx, want))

		row, err := repo.GetAnalytics(ctx)
		require.NoError(t, err)
		require.True(t, updated.Equal(row.LastUpdated))
		row.LastUpdated = updated
		require.Equal(t, want, row)

		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM analytics`).Scan(&n))
		require.Equal(t, 1, n)
	})
}
