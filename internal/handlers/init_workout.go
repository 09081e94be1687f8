package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/workout-tracker/internal/services"
)

//go:generate mockgen -source=init_workout.go -destination=mock_init_workout.go -package=handlers

// RoutineInitializer seeds the default routine for users that own no items.
type RoutineInitializer interface {
	InitRoutine(ctx context.Context, userID int64) (bool, int, error)
}

// NewInitWorkoutHandler returns an HTTP handler that seeds the default routine once per user.
// @Summary Initialize workout routine
// @Description Seeds the default routine unless the user already owns items.
// @Tags workout
// @Produce json
// @Param user_id query int true "User id"
// @Success 200 {object} handlers.MessageResponse "Initialized or already present"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid user_id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/init_workout [post]
func NewInitWorkoutHandler(svc RoutineInitializer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		seeded, _, err := svc.InitRoutine(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUnknownUser) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		msg := fmt.Sprintf("Workout routines already exist for user_id %d", userID)
		if seeded {
			msg = fmt.Sprintf("Workout routines initialized for user_id %d", userID)
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
	}
}
