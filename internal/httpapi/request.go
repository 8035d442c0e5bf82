package httpapi

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/godilite/sentiment-monitor/internal/service"
)

var integerString = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)

// createFeedbackRequest is the POST /api/feedback body. Only the rating is
// decoded leniently; the rest maps onto service.CreateFeedbackInput as is.
type createFeedbackRequest struct {
	Comment   string     `json:"comment"`
	Rating    rating     `json:"rating"`
	Emotion   string     `json:"emotion"`
	EventID   string     `json:"eventId"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r createFeedbackRequest) input() service.CreateFeedbackInput {
	return service.CreateFeedbackInput{
		Comment:   r.Comment,
		Rating:    int(r.Rating),
		Emotion:   r.Emotion,
		EventID:   r.EventID,
		Timestamp: r.Timestamp,
	}
}

// rating accepts an integral JSON number (3, 3.0) or an integer string
// ("3"). Anything else decodes to 0, which validation then rejects with the
// rating message instead of a generic body error.
type rating int

func (r *rating) UnmarshalJSON(data []byte) error {
	*r = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil || !integerString.MatchString(s) {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return nil
		}
		*r = rating(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	*r = rating(f)
	return nil
}
