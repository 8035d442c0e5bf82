package grpc

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/godilite/sentiment-monitor/api/v1"
	"github.com/godilite/sentiment-monitor/internal/analytics"
	"github.com/godilite/sentiment-monitor/internal/service"
)

const defaultGRPCTimeout = 10 * time.Second

type GRPCHandlers struct {
	pb.UnimplementedFeedbackServiceServer
	feedback FeedbackService
	logger   *zap.Logger
	timeout  time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(feedback FeedbackService, logger *zap.Logger, timeout time.Duration) *GRPCHandlers {
	if feedback == nil {
		panic("nil FeedbackService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultGRPCTimeout
	}
	return &GRPCHandlers{
		feedback: feedback,
		logger:   logger.Named("grpc-handler"),
		timeout:  timeout,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		s.logger.Info("invalid request", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "feedback not found")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) CreateFeedback(ctx context.Context, req *pb.CreateFeedbackRequest) (*pb.CreateFeedbackResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	in := service.CreateFeedbackInput{
		Comment: req.GetComment(),
		Rating:  int(req.GetRating()),
		Emotion: req.GetEmotion(),
		EventID: req.GetEventId(),
	}
	if ts := req.GetTimestamp(); ts != nil {
		if err := ts.CheckValid(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid timestamp: %v", err)
		}
		at := ts.AsTime()
		in.Timestamp = &at
	}

	fb, err := s.feedback.CreateFeedback(ctx, in)
	if err != nil {
		return nil, s.handleError(ctx, "CreateFeedback", err)
	}

	return &pb.CreateFeedbackResponse{Feedback: toProtoFeedback(fb)}, nil
}

func (s *GRPCHandlers) ListFeedback(ctx context.Context, _ *pb.ListFeedbackRequest) (*pb.ListFeedbackResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.feedback.GetAllFeedback(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "ListFeedback", err)
	}

	out := make([]*pb.Feedback, len(list))
	for i, fb := range list {
		out[i] = toProtoFeedback(fb)
	}
	return &pb.ListFeedbackResponse{Feedback: out}, nil
}

func (s *GRPCHandlers) GetFeedback(ctx context.Context, req *pb.GetFeedbackRequest) (*pb.GetFeedbackResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fb, err := s.feedback.GetFeedbackByID(ctx, req.GetId())
	if err != nil {
		return nil, s.handleError(ctx, "GetFeedback", err)
	}
	return &pb.GetFeedbackResponse{Feedback: toProtoFeedback(fb)}, nil
}

func (s *GRPCHandlers) GetAnalytics(ctx context.Context, _ *pb.GetAnalyticsRequest) (*pb.GetAnalyticsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snap, err := s.feedback.GetAnalytics(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "GetAnalytics", err)
	}
	return &pb.GetAnalyticsResponse{Analytics: toProtoSnapshot(snap)}, nil
}

func toProtoFeedback(fb service.Feedback) *pb.Feedback {
	return &pb.Feedback{
		Id:        fb.ID,
		Comment:   fb.Comment,
		Rating:    int32(fb.Rating),
		Emotion:   string(fb.Emotion),
		Sentiment: string(fb.Sentiment),
		EventId:   fb.EventID,
		Timestamp: timestamppb.New(fb.Timestamp),
	}
}

func toProtoSnapshot(snap analytics.Snapshot) *pb.AnalyticsSnapshot {
	breakdown := make(map[string]int64, len(snap.EmotionBreakdown))
	for e, n := range snap.EmotionBreakdown {
		breakdown[string(e)] = n
	}
	out := &pb.AnalyticsSnapshot{
		Positive:         int32(snap.Positive),
		Neutral:          int32(snap.Neutral),
		Negative:         int32(snap.Negative),
		Total:            snap.Total,
		AverageRating:    snap.AverageRating,
		EmotionBreakdown: breakdown,
	}
	if !snap.LastUpdated.IsZero() {
		out.LastUpdated = timestamppb.New(snap.LastUpdated)
	}
	return out
}
