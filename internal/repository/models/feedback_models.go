package models

import "time"

type FeedbackRow struct {
	ID        int64
	Comment   string
	Rating    int
	Emotion   string
	Sentiment string
	EventID   string
	Timestamp time.Time
}

// FeedbackGroup is one (sentiment, emotion) bucket of the feedback table.
type FeedbackGroup struct {
	Sentiment string
	Emotion   string
	Count     int64
	RatingSum int64
}

type AnalyticsRow struct {
	Positive       int
	Neutral        int
	Negative       int
	Total          int64
	AverageRating  float64
	EmotionHappy   int64
	EmotionNeutral int64
	EmotionUnhappy int64
	LastUpdated    time.Time
}
