package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/godilite/sentiment-monitor/internal/analytics"
	"github.com/godilite/sentiment-monitor/internal/metrics"
	"github.com/godilite/sentiment-monitor/internal/repository"
	"github.com/godilite/sentiment-monitor/internal/repository/models"
	"github.com/godilite/sentiment-monitor/internal/sentiment"
	"github.com/godilite/sentiment-monitor/pkg/cache"
)

const (
	dbTimeout = 5 * time.Second

	// DefaultEventID groups feedback submitted without an event.
	DefaultEventID = "default-event"
)

// Cache keys for the read-through views.
const (
	CacheKeyAnalytics    = "analytics:snapshot"
	CacheKeyFeedbackList = "feedback:list"
)

var (
	ErrValidation     = errors.New("invalid feedback")
	ErrNotFound       = errors.New("feedback not found")
	ErrStorageFailure = errors.New("storage failure")
)

// FeedbackService records feedback and owns the analytics snapshot. Writes
// are serialized so each insert is followed by its own recomputation before
// the next insert starts; reads never take the lock.
type FeedbackService struct {
	feedback       FeedbackRepository
	analytics      AnalyticsRepository
	logger         *zap.Logger
	clock          clockwork.Clock
	reads          *cache.ReadThrough
	validate       *validator.Validate
	defaultEventID string

	mu sync.Mutex
}

type Option func(*FeedbackService)

// WithClock sets the clock used for default timestamps and lastUpdated.
func WithClock(c clockwork.Clock) Option {
	return func(s *FeedbackService) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithDefaultEventID sets the event id stored when a submission carries none.
func WithDefaultEventID(id string) Option {
	return func(s *FeedbackService) {
		if id != "" {
			s.defaultEventID = id
		}
	}
}

// WithCache fronts the list and analytics reads with a read-through cache.
func WithCache(c cache.Cacher, ttl time.Duration) Option {
	return func(s *FeedbackService) {
		s.reads = cache.NewReadThrough(c, ttl, s.logger)
	}
}

// NewFeedbackService creates a new FeedbackService instance.
func NewFeedbackService(feedback FeedbackRepository, snapshots AnalyticsRepository, logger *zap.Logger, opts ...Option) *FeedbackService {
	if feedback == nil {
		panic("feedback repository must not be nil")
	}
	if snapshots == nil {
		panic("analytics repository must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	s := &FeedbackService{
		feedback:       feedback,
		analytics:      snapshots,
		logger:         logger.Named("feedback-service"),
		clock:          clockwork.NewRealClock(),
		defaultEventID: DefaultEventID,
	}
	s.validate = newValidator()
	for _, opt := range opts {
		opt(s)
	}
	if s.reads == nil {
		s.reads = cache.NewReadThrough(cache.Nop{}, 0, s.logger)
	}
	return s
}

// CreateFeedback validates and classifies a submission, stores it and
// recomputes the analytics snapshot from the full feedback table.
//
// When the recomputation fails the record stays stored and the snapshot keeps
// its previous value until the next successful write; the error is returned.
func (s *FeedbackService) CreateFeedback(ctx context.Context, in CreateFeedbackInput) (Feedback, error) {
	if err := s.Validate(in); err != nil {
		metrics.FeedbackRejectedTotal.Inc()
		return Feedback{}, err
	}

	emotion, _ := sentiment.ParseEmotion(in.Emotion)
	fb := Feedback{
		Comment:   in.Comment,
		Rating:    in.Rating,
		Emotion:   emotion,
		Sentiment: sentiment.Classify(in.Rating, string(emotion)),
		EventID:   in.EventID,
		Timestamp: s.clock.Now().UTC(),
	}
	if fb.EventID == "" {
		fb.EventID = s.defaultEventID
	}
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		fb.Timestamp = in.Timestamp.UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.feedback.InsertFeedback(dbCtx, toFeedbackRow(fb))
	if err != nil {
		s.logger.Error("failed to store feedback", zap.Error(err))
		return Feedback{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	fb.ID = id
	metrics.FeedbackSubmittedTotal.WithLabelValues(string(fb.Sentiment)).Inc()

	s.logger.Info("stored feedback",
		zap.Int64("id", fb.ID),
		zap.Int("rating", fb.Rating),
		zap.String("emotion", string(fb.Emotion)),
		zap.String("sentiment", string(fb.Sentiment)),
		zap.String("event_id", fb.EventID))

	_, err = s.recomputeLocked(ctx)
	s.reads.Invalidate(ctx, CacheKeyFeedbackList, CacheKeyAnalytics)
	if err != nil {
		s.logger.Error("analytics left stale after insert", zap.Int64("id", fb.ID), zap.Error(err))
		return Feedback{}, err
	}

	return fb, nil
}

// RecomputeAnalytics rebuilds and persists the snapshot from every stored record.
func (s *FeedbackService) RecomputeAnalytics(ctx context.Context) (analytics.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.recomputeLocked(ctx)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	s.reads.Invalidate(ctx, CacheKeyAnalytics)
	return snap, nil
}

func (s *FeedbackService) recomputeLocked(ctx context.Context) (analytics.Snapshot, error) {
	timer := prometheus.NewTimer(metrics.AnalyticsRecomputeDuration)
	defer timer.ObserveDuration()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	groups, err := s.feedback.GroupFeedback(dbCtx)
	if err != nil {
		metrics.AnalyticsRecomputeErrorsTotal.Inc()
		return analytics.Snapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	var tally analytics.Tally
	for _, g := range groups {
		tally.AddSentiment(sentiment.Sentiment(g.Sentiment), g.Count)
		tally.AddEmotion(g.Emotion, g.Count)
		tally.RatingSum += g.RatingSum
	}
	snap := analytics.FromTally(tally, s.clock.Now().UTC())

	if err := s.analytics.SaveAnalytics(dbCtx, toAnalyticsRow(snap)); err != nil {
		metrics.AnalyticsRecomputeErrorsTotal.Inc()
		return analytics.Snapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	metrics.AnalyticsTotalFeedback.Set(float64(snap.Total))

	s.logger.Debug("recomputed analytics",
		zap.Int64("total", snap.Total),
		zap.Int("positive", snap.Positive),
		zap.Int("neutral", snap.Neutral),
		zap.Int("negative", snap.Negative),
		zap.Float64("average_rating", snap.AverageRating))

	return snap, nil
}

// GetAllFeedback returns every stored record, newest first.
func (s *FeedbackService) GetAllFeedback(ctx context.Context) ([]Feedback, error) {
	return cache.Load(ctx, s.reads, CacheKeyFeedbackList, func(fetchCtx context.Context) ([]Feedback, error) {
		dbCtx, cancel := context.WithTimeout(fetchCtx, dbTimeout)
		defer cancel()

		rows, err := s.feedback.ListFeedback(dbCtx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}

		out := make([]Feedback, len(rows))
		for i, r := range rows {
			out[i] = fromFeedbackRow(r)
		}
		return out, nil
	})
}

// GetFeedbackByID returns the stored record with id, or ErrNotFound.
func (s *FeedbackService) GetFeedbackByID(ctx context.Context, id int64) (Feedback, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.feedback.GetFeedbackByID(dbCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Feedback{}, ErrNotFound
		}
		return Feedback{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return fromFeedbackRow(row), nil
}

// GetAnalytics returns the persisted snapshot. It never recomputes.
func (s *FeedbackService) GetAnalytics(ctx context.Context) (analytics.Snapshot, error) {
	return cache.Load(ctx, s.reads, CacheKeyAnalytics, func(fetchCtx context.Context) (analytics.Snapshot, error) {
		dbCtx, cancel := context.WithTimeout(fetchCtx, dbTimeout)
		defer cancel()

		row, err := s.analytics.GetAnalytics(dbCtx)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("analytics row missing, serving placeholder")
				return analytics.Default(time.Time{}), nil
			}
			return analytics.Snapshot{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
		return fromAnalyticsRow(row), nil
	})
}

func toFeedbackRow(f Feedback) models.FeedbackRow {
	return models.FeedbackRow{
		ID:        f.ID,
		Comment:   f.Comment,
		Rating:    f.Rating,
		Emotion:   string(f.Emotion),
		Sentiment: string(f.Sentiment),
		EventID:   f.EventID,
		Timestamp: f.Timestamp,
	}
}

func fromFeedbackRow(r models.FeedbackRow) Feedback {
	return Feedback{
		ID:        r.ID,
		Comment:   r.Comment,
		Rating:    r.Rating,
		Emotion:   sentiment.Emotion(r.Emotion),
		Sentiment: sentiment.Sentiment(r.Sentiment),
		EventID:   r.EventID,
		Timestamp: r.Timestamp.UTC(),
	}
}

func toAnalyticsRow(s analytics.Snapshot) models.AnalyticsRow {
	return models.AnalyticsRow{
		Positive:       s.Positive,
		Neutral:        s.Neutral,
		Negative:       s.Negative,
		Total:          s.Total,
		AverageRating:  s.AverageRating,
		EmotionHappy:   s.EmotionBreakdown[sentiment.EmotionHappy],
		EmotionNeutral: s.EmotionBreakdown[sentiment.EmotionNeutral],
		EmotionUnhappy: s.EmotionBreakdown[sentiment.EmotionUnhappy],
		LastUpdated:    s.LastUpdated,
	}
}

func fromAnalyticsRow(r models.AnalyticsRow) analytics.Snapshot {
	return analytics.Snapshot{
		Positive:      r.Positive,
		Neutral:       r.Neutral,
		Negative:      r.Negative,
		Total:         r.Total,
		AverageRating: r.AverageRating,
		EmotionBreakdown: map[sentiment.Emotion]int64{
			sentiment.EmotionHappy:   r.EmotionHappy,
			sentiment.EmotionNeutral: r.EmotionNeutral,
			sentiment.EmotionUnhappy: r.EmotionUnhappy,
		},
		LastUpdated: r.LastUpdated.UTC(),
	}
}
