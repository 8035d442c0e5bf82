package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/sentiment-monitor/internal/analytics"
	"github.com/godilite/sentiment-monitor/internal/grpc/mocks"
	"github.com/godilite/sentiment-monitor/internal/sentiment"
	"github.com/godilite/sentiment-monitor/internal/service"
)

var fixedNow = time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	h := NewRouter(&mocks.MockFeedbackService{}, WithLogger(zap.NewNop()))

	rec := serve(t, h, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","message":"Server is running"}`, rec.Body.String())
}

func TestGetAnalytics(t *testing.T) {
	t.Run("camel case snapshot", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetAnalyticsFunc: func(ctx context.Context) (analytics.Snapshot, error) {
				return analytics.Recompute([]analytics.Record{
					{Rating: 5, Emotion: "happy", Sentiment: sentiment.Positive},
				}, fixedNow), nil
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodGet, "/api/analytics", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"positive": 100, "neutral": 0, "negative": 0, "total": 1, "averageRating": 5,
			"emotionBreakdown": {"happy": 1, "neutral": 0, "unhappy": 0},
			"lastUpdated": "2025-10-15T10:30:00Z"
		}`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetAnalyticsFunc: func(ctx context.Context) (analytics.Snapshot, error) {
				return analytics.Snapshot{}, fmt.Errorf("%w: %v", service.ErrStorageFailure, errors.New("db down"))
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodGet, "/api/analytics", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Failed to fetch analytics data", body["error"])
		assert.Contains(t, body["details"], "db down")
	})
}

func TestListFeedback(t *testing.T) {
	t.Run("snake case records", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetAllFeedbackFunc: func(ctx context.Context) ([]service.Feedback, error) {
				return []service.Feedback{{
					ID: 1, Comment: "Great talk", Rating: 5, Emotion: sentiment.EmotionHappy,
					Sentiment: sentiment.Positive, EventID: "default-event", Timestamp: fixedNow,
				}}, nil
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodGet, "/api/feedback", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{
			"id": 1, "comment": "Great talk", "rating": 5, "emotion": "happy",
			"sentiment": "positive", "event_id": "default-event", "timestamp": "2025-10-15T10:30:00Z"
		}]`, rec.Body.String())
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			GetAllFeedbackFunc: func(ctx context.Context) ([]service.Feedback, error) {
				return nil, nil
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodGet, "/api/feedback", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		rec := serve(t, NewRouter(&mocks.MockFeedbackService{}), http.MethodGet, "/api/feedback", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch feedback data", decode(t, rec)["error"])
	})
}

func TestGetFeedback(t *testing.T) {
	svc := &mocks.MockFeedbackService{
		GetFeedbackByIDFunc: func(ctx context.Context, id int64) (service.Feedback, error) {
			switch id {
			case 1:
				return service.Feedback{ID: 1, Comment: "hi", Rating: 3, Emotion: sentiment.EmotionNeutral, Sentiment: sentiment.Neutral}, nil
			case 2:
				return service.Feedback{}, service.ErrStorageFailure
			default:
				return service.Feedback{}, service.ErrNotFound
			}
		},
	}
	h := NewRouter(svc)

	cases := []struct {
		name   string
		target string
		code   int
		errMsg string
	}{
		{"found", "/api/feedback/1", http.StatusOK, ""},
		{"not found", "/api/feedback/99", http.StatusNotFound, "Feedback not found"},
		{"storage failure", "/api/feedback/2", http.StatusInternalServerError, "Failed to fetch feedback"},
		{"non numeric", "/api/feedback/abc", http.StatusBadRequest, "Invalid feedback id"},
		{"zero", "/api/feedback/0", http.StatusBadRequest, "Invalid feedback id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodGet, tc.target, "")
			assert.Equal(t, tc.code, rec.Code)
			body := decode(t, rec)
			if tc.errMsg != "" {
				assert.Equal(t, tc.errMsg, body["error"])
			} else {
				assert.Equal(t, "hi", body["comment"])
			}
		})
	}
}

func TestCreateFeedback(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			CreateFeedbackFunc: func(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error) {
				assert.Equal(t, "Great talk", in.Comment)
				assert.Equal(t, 5, in.Rating)
				assert.Equal(t, "😀", in.Emotion)
				assert.Equal(t, "gophercon", in.EventID)
				return service.Feedback{
					ID: 7, Comment: in.Comment, Rating: in.Rating, Emotion: sentiment.EmotionHappy,
					Sentiment: sentiment.Positive, EventID: in.EventID, Timestamp: fixedNow,
				}, nil
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodPost, "/api/feedback",
			`{"comment":"Great talk","rating":5,"emotion":"😀","eventId":"gophercon"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Feedback received successfully", body["message"])
		fb := body["feedback"].(map[string]any)
		assert.Equal(t, float64(7), fb["id"])
		assert.Equal(t, "happy", fb["emotion"])
		assert.Equal(t, "positive", fb["sentiment"])
		assert.Equal(t, "gophercon", fb["event_id"])
	})

	t.Run("validation errors", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			CreateFeedbackFunc: func(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error) {
				return service.Feedback{}, &service.ValidationError{Fields: []service.FieldError{
					{Field: "rating", Message: "Rating must be between 1 and 5"},
				}}
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodPost, "/api/feedback", `{"comment":"x","rating":9,"emotion":"happy"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":[{"field":"rating","message":"Rating must be between 1 and 5"}]}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(t, NewRouter(&mocks.MockFeedbackService{}), http.MethodPost, "/api/feedback", `{"rating":"five"`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"body"`)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &mocks.MockFeedbackService{
			CreateFeedbackFunc: func(ctx context.Context, in service.CreateFeedbackInput) (service.Feedback, error) {
				return service.Feedback{}, fmt.Errorf("%w: %v", service.ErrStorageFailure, errors.New("disk full"))
			},
		}
		rec := serve(t, NewRouter(svc), http.MethodPost, "/api/feedback", `{"comment":"x","rating":3,"emotion":"neutral"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Failed to store feedback", body["error"])
		assert.Contains(t, body["details"], "disk full")
	})
}

func TestCORS(t *testing.T) {
	h := NewRouter(&mocks.MockFeedbackService{}, WithAllowedOrigins("http://localhost:3000", " "))

	req := httptest.NewRequest(http.MethodOptions, "/api/feedback", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	h := NewRouter(&mocks.MockFeedbackService{})

	serve(t, h, http.MethodGet, "/api/health", "")
	rec := serve(t, h, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServerLifecycle(t *testing.T) {
	srv, err := New(&mocks.MockFeedbackService{}, WithPort(0), WithLogger(zap.NewNop()))
	require.NoError(t, err)
	srv.Start()

	port := srv.Addr().(*net.TCPAddr).Port
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/health", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
}
