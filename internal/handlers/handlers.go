package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/middlewares"
)

var (
	errMissingUserID = errors.New("user_id is required")
	errInvalidUserID = errors.New("user_id must be a positive integer")
	errInvalidItemID = errors.New("id must be a positive integer")
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Todo not found
	Error string `json:"error"`
}

// MessageResponse carries a human readable status message
// swagger:model MessageResponse
type MessageResponse struct {
	// Status message
	// default: Workout routines initialized for user_id 1
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Warnw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// userIDFromQuery reads the mandatory user_id query parameter.
func userIDFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, errMissingUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidUserID
	}
	return id, nil
}

// itemIDFromPath reads the {id} route parameter.
func itemIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidItemID
	}
	return id, nil
}
