package service

import (
	"context"

	"github.com/godilite/sentiment-monitor/internal/repository/models"
)

// FeedbackRepository defines the feedback table operations the service needs.
type FeedbackRepository interface {
	InsertFeedback(ctx context.Context, row models.FeedbackRow) (int64, error)
	ListFeedback(ctx context.Context) ([]models.FeedbackRow, error)
	GetFeedbackByID(ctx context.Context, id int64) (models.FeedbackRow, error)
	GroupFeedback(ctx context.Context) ([]models.FeedbackGroup, error)
}

// AnalyticsRepository defines access to the single analytics row.
type AnalyticsRepository interface {
	GetAnalytics(ctx context.Context) (models.AnalyticsRow, error)
	SaveAnalytics(ctx context.Context, row models.AnalyticsRow) error
}
