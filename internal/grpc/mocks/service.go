package mocks

import (
	"context"
	"errors"

	"github.com/godilite/sentiment-monitor/internal/analytics"
	"github.com/godilite/sentiment-monitor/internal/service"
)

// MockFeedbackService is a mock implementation of the FeedbackService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockFeedbackService struct {
	CreateFeedbackFunc  func(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error)
	GetAllFeedbackFunc  func(ctx context.Context) ([]service.Feedback, error)
	GetFeedbackByIDFunc func(ctx context.Context, id int64) (service.Feedback, error)
	GetAnalyticsFunc    func(ctx context.Context) (analytics.Snapshot, error)
}

// CreateFeedback implements the FeedbackService interface
func (m *MockFeedbackService) CreateFeedback(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error) {
	if m.CreateFeedbackFunc != nil {
		return m.CreateFeedbackFunc(ctx, in)
	}
	return service.Feedback{}, errors.New("CreateFeedbackFunc not implemented")
}

// GetAllFeedback implements the FeedbackService interface
func (m *MockFeedbackService) GetAllFeedback(ctx context.Context) ([]service.Feedback, error) {
	if m.GetAllFeedbackFunc != nil {
		return m.GetAllFeedbackFunc(ctx)
	}
	return nil, errors.New("GetAllFeedbackFunc not implemented")
}

// GetFeedbackByID implements the FeedbackService interface
func (m *MockFeedbackService) GetFeedbackByID(ctx context.Context, id int64) (service.Feedback, error) {
	if m.GetFeedbackByIDFunc != nil {
		return m.GetFeedbackByIDFunc(ctx, id)
	}
	return service.Feedback{}, errors.New("GetFeedbackByIDFunc not implemented")
}

// GetAnalytics implements the FeedbackService interface
func (m *MockFeedbackService) GetAnalytics(ctx context.Context) (analytics.Snapshot, error) {
	if m.GetAnalyticsFunc != nil {
		return m.GetAnalyticsFunc(ctx)
	}
	return analytics.Snapshot{}, errors.New("GetAnalyticsFunc not implemented")
}
