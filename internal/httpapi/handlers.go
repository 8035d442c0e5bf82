package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/godilite/sentiment-monitor/internal/service"
)

const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type validationResponse struct {
	Errors []service.FieldError `json:"errors"`
}

type createdResponse struct {
	Message  string           `json:"message"`
	Feedback service.Feedback `json:"feedback"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type handlers struct {
	feedback FeedbackService
	logger   *zap.Logger
}

func (h *handlers) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: "Server is running"})
}

func (h *handlers) getAnalytics(w http.ResponseWriter, r *http.Request) {
	snap, err := h.feedback.GetAnalytics(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch analytics", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch analytics data", Details: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *handlers) listFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.feedback.GetAllFeedback(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch feedback", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch feedback data", Details: err.Error()})
		return
	}
	if list == nil {
		list = []service.Feedback{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *handlers) getFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid feedback id"})
		return
	}

	fb, err := h.feedback.GetFeedbackByID(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Feedback not found"})
	case err != nil:
		h.logger.Error("failed to fetch feedback", zap.Int64("id", id), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch feedback", Details: err.Error()})
	default:
		h.writeJSON(w, http.StatusOK, fb)
	}
}

func (h *handlers) createFeedback(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, validationResponse{
			Errors: []service.FieldError{{Field: "body", Message: "Request body must be a JSON feedback object"}},
		})
		return
	}

	fb, err := h.feedback.CreateFeedback(r.Context(), req.input())
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.writeJSON(w, http.StatusBadRequest, validationResponse{Errors: verr.Fields})
			return
		}
		h.logger.Error("failed to store feedback", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to store feedback", Details: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusCreated, createdResponse{Message: "Feedback received successfully", Feedback: fb})
}
