package mocks

import (
	"context"
	"errors"

	"github.com/godilite/sentiment-monitor/internal/repository/models"
)

// MockFeedbackRepository is a mock implementation of the FeedbackRepository
// interface for testing the service layer.
type MockFeedbackRepository struct {
	InsertFeedbackFunc  func(ctx context.Context, row models.FeedbackRow) (int64, error)
	ListFeedbackFunc    func(ctx context.Context) ([]models.FeedbackRow, error)
	GetFeedbackByIDFunc func(ctx context.Context, id int64) (models.FeedbackRow, error)
	GroupFeedbackFunc   func(ctx context.Context) ([]models.FeedbackGroup, error)
}

// InsertFeedback implements the FeedbackRepository interface
func (m *MockFeedbackRepository) InsertFeedback(ctx context.Context, row models.FeedbackRow) (int64, error) {
	if m.InsertFeedbackFunc != nil {
		return m.InsertFeedbackFunc(ctx, row)
	}
	return 0, errors.New("InsertFeedbackFunc not implemented")
}

// ListFeedback implements the FeedbackRepository interface
func (m *MockFeedbackRepository) ListFeedback(ctx context.Context) ([]models.FeedbackRow, error) {
	if m.ListFeedbackFunc != nil {
		return m.ListFeedbackFunc(ctx)
	}
	return nil, errors.New("ListFeedbackFunc not implemented")
}

// GetFeedbackByID implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GetFeedbackByID(ctx context.Context, id int64) (models.FeedbackRow, error) {
	if m.GetFeedbackByIDFunc != nil {
		return m.GetFeedbackByIDFunc(ctx, id)
	}
	return models.FeedbackRow{}, errors.New("GetFeedbackByIDFunc not implemented")
}

// GroupFeedback implements the FeedbackRepository interface
func (m *MockFeedbackRepository) GroupFeedback(ctx context.Context) ([]models.FeedbackGroup, error) {
	if m.GroupFeedbackFunc != nil {
		return m.GroupFeedbackFunc(ctx)
	}
	return nil, errors.New("GroupFeedbackFunc not implemented")
}

// MockAnalyticsRepository is a mock implementation of the AnalyticsRepository
// interface.
type MockAnalyticsRepository struct {
	GetAnalyticsFunc  func(ctx context.Context) (models.AnalyticsRow, error)
	SaveAnalyticsFunc func(ctx context.Context, row models.AnalyticsRow) error
}

// GetAnalytics implements the AnalyticsRepository interface
func (m *MockAnalyticsRepository) GetAnalytics(ctx context.Context) (models.AnalyticsRow, error) {
	if m.GetAnalyticsFunc != nil {
		return m.GetAnalyticsFunc(ctx)
	}
	return models.AnalyticsRow{}, errors.New("GetAnalyticsFunc not implemented")
}

// SaveAnalytics implements the AnalyticsRepository interface
func (m *MockAnalyticsRepository) SaveAnalytics(ctx context.Context, row models.AnalyticsRow) error {
	if m.SaveAnalyticsFunc != nil {
		return m.SaveAnalyticsFunc(ctx, row)
	}
	return errors.New("SaveAnalyticsFunc not implemented")
}
