package service

import (
	"time"

	"github.com/godilite/sentiment-monitor/internal/sentiment"
)

// Feedback is a stored feedback record.
type Feedback struct {
	ID        int64               `json:"id"`
	Comment   string              `json:"comment"`
	Rating    int                 `json:"rating"`
	Emotion   sentiment.Emotion   `json:"emotion"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	EventID   string              `json:"event_id"`
	Timestamp time.Time           `json:"timestamp"`
}

// CreateFeedbackInput is an attendee submission. Emotion may be a canonical
// tag or one of its symbolic aliases; EventID and Timestamp are optional.
type CreateFeedbackInput struct {
	Comment   string     `json:"comment" validate:"required,max=500"`
	Rating    int        `json:"rating" validate:"min=1,max=5"`
	Emotion   string     `json:"emotion" validate:"required,emotion"`
	EventID   string     `json:"eventId,omitempty" validate:"max=50"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
