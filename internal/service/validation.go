package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/godilite/sentiment-monitor/internal/sentiment"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var fieldMessages = map[string]string{
	"comment":   "Comment must be between 1 and 500 characters",
	"rating":    "Rating must be between 1 and 5",
	"emotion":   "Emotion must be happy, neutral, or unhappy",
	"eventId":   "Event id must be at most 50 characters",
	"timestamp": "Timestamp is invalid",
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// emotion accepts canonical tags and their aliases
	_ = v.RegisterValidation("emotion", func(fl validator.FieldLevel) bool {
		_, ok := sentiment.ParseEmotion(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks a submission against the input rules. The returned error is
// a *ValidationError.
func (s *FeedbackService) Validate(in CreateFeedbackInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
