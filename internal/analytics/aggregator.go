package analytics

import (
	"time"

	"github.com/godilite/sentiment-monitor/internal/sentiment"
)

// Placeholder percentages shown before any feedback exists.
const (
	DefaultPositive = 65
	DefaultNeutral  = 25
	DefaultNegative = 10
)

// Record is the slice of a stored feedback record the aggregator reads.
type Record struct {
	Rating    int
	Emotion   string
	Sentiment sentiment.Sentiment
}

// Snapshot is the current aggregate view over all feedback.
type Snapshot struct {
	Positive         int                         `json:"positive"`
	Neutral          int                         `json:"neutral"`
	Negative         int                         `json:"negative"`
	Total            int64                       `json:"total"`
	AverageRating    float64                     `json:"averageRating"`
	EmotionBreakdown map[sentiment.Emotion]int64 `json:"emotionBreakdown"`
	LastUpdated      time.Time                   `json:"lastUpdated"`
}

// Tally holds the raw counts a snapshot is derived from.
type Tally struct {
	Count     int64
	Positive  int64
	Neutral   int64
	Negative  int64
	RatingSum int64
	Emotions  map[sentiment.Emotion]int64
}

// AddEmotion counts n records tagged with emotion. Tags outside the closed
// set are dropped.
func (t *Tally) AddEmotion(emotion string, n int64) {
	e := sentiment.Normalize(emotion)
	if !e.Valid() {
		return
	}
	if t.Emotions == nil {
		t.Emotions = make(map[sentiment.Emotion]int64, len(sentiment.Emotions))
	}
	t.Emotions[e] += n
}

// AddSentiment counts n records stored with label s.
func (t *Tally) AddSentiment(s sentiment.Sentiment, n int64) {
	t.Count += n
	switch s {
	case sentiment.Positive:
		t.Positive += n
	case sentiment.Neutral:
		t.Neutral += n
	case sentiment.Negative:
		t.Negative += n
	}
}

func emptyBreakdown() map[sentiment.Emotion]int64 {
	m := make(map[sentiment.Emotion]int64, len(sentiment.Emotions))
	for _, e := range sentiment.Emotions {
		m[e] = 0
	}
	return m
}

// Default returns the seeded snapshot used while no feedback exists.
func Default(now time.Time) Snapshot {
	return Snapshot{
		Positive:         DefaultPositive,
		Neutral:          DefaultNeutral,
		Negative:         DefaultNegative,
		Total:            0,
		AverageRating:    0,
		EmotionBreakdown: emptyBreakdown(),
		LastUpdated:      now,
	}
}

// TallyOf counts records by stored sentiment and normalized emotion.
func TallyOf(records []Record) Tally {
	var t Tally
	for _, r := range records {
		t.AddSentiment(r.Sentiment, 1)
		t.AddEmotion(r.Emotion, 1)
		t.RatingSum += int64(r.Rating)
	}
	return t
}

// FromTally derives a snapshot from raw counts.
func FromTally(t Tally, now time.Time) Snapshot {
	if t.Count == 0 {
		return Default(now)
	}

	breakdown := emptyBreakdown()
	for e, n := range t.Emotions {
		if e.Valid() {
			breakdown[e] = n
		}
	}

	return Snapshot{
		Positive:         percent(t.Positive, t.Count),
		Neutral:          percent(t.Neutral, t.Count),
		Negative:         percent(t.Negative, t.Count),
		Total:            t.Count,
		AverageRating:    float64(roundHalfUp(10*t.RatingSum, t.Count)) / 10,
		EmotionBreakdown: breakdown,
		LastUpdated:      now,
	}
}

// Recompute rebuilds the snapshot from the full record set.
func Recompute(records []Record, now time.Time) Snapshot {
	return FromTally(TallyOf(records), now)
}

// percent rounds 100*part/total half-up. Each label is rounded on its own so
// the three values need not sum to exactly 100.
func percent(part, total int64) int {
	return int(roundHalfUp(100*part, total))
}

// roundHalfUp computes num/den rounded half-up for non-negative operands.
func roundHalfUp(num, den int64) int64 {
	return (2*num + den) / (2 * den)
}
