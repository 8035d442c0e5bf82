package httpapi

import (
	"context"

	"github.com/godilite/sentiment-monitor/internal/analytics"
	"github.com/godilite/sentiment-monitor/internal/service"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error)
	GetAllFeedback(ctx context.Context) ([]service.Feedback, error)
	GetFeedbackByID(ctx context.Context, id int64) (service.Feedback, error)
	GetAnalytics(ctx context.Context) (analytics.Snapshot, error)
}
