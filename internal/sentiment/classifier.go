package sentiment

// Emotion is the canonical emotion tag attached to a feedback record.
type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionNeutral Emotion = "neutral"
	EmotionUnhappy Emotion = "unhappy"
)

// Sentiment is the derived three-way label of a feedback record.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

var aliases = map[string]Emotion{
	"happy":   EmotionHappy,
	"😀":       EmotionHappy,
	"neutral": EmotionNeutral,
	"😐":       EmotionNeutral,
	"unhappy": EmotionUnhappy,
	"😡":       EmotionUnhappy,
}

// Emotions lists the canonical tags in display order.
var Emotions = []Emotion{EmotionHappy, EmotionNeutral, EmotionUnhappy}

// AcceptedTags lists every tag accepted at the input boundary.
var AcceptedTags = []string{"happy", "neutral", "unhappy", "😀", "😐", "😡"}

// ParseEmotion maps a canonical tag or one of its aliases to the canonical tag.
func ParseEmotion(s string) (Emotion, bool) {
	e, ok := aliases[s]
	return e, ok
}

// Normalize collapses aliases to their canonical tag. Unknown values pass
// through unchanged.
func Normalize(s string) Emotion {
	if e, ok := aliases[s]; ok {
		return e
	}
	return Emotion(s)
}

// Valid reports whether e is one of the canonical tags.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappy, EmotionNeutral, EmotionUnhappy:
		return true
	}
	return false
}

// Classify derives the sentiment of a (rating, emotion) pair. The first
// matching rule wins, so a high rating beats an unhappy emotion and a happy
// emotion beats a low rating.
func Classify(rating int, emotion string) Sentiment {
	e := Normalize(emotion)
	switch {
	case rating >= 4 || e == EmotionHappy:
		return Positive
	case rating <= 2 || e == EmotionUnhappy:
		return Negative
	default:
		return Neutral
	}
}
