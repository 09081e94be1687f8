package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// LoginOrRegisterer defines the interface that the auth service must implement.
type LoginOrRegisterer interface {
	LoginOrRegister(ctx context.Context, username, password string) (*models.LoginResult, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: pw1
	Password string `json:"password"`
}

// LoginResponse represents a successful login or registration
// swagger:model LoginResponse
type LoginResponse struct {
	// Outcome message
	// default: Login successful
	Message string `json:"message"`

	// User id
	// default: 2
	UserID int64 `json:"userId"`

	// Username
	// default: alice
	Username string `json:"username"`
}

const (
	loginSuccessMessage    = "Login successful"
	registerSuccessMessage = "User registered and routines initialized"
)

// NewLoginHandler returns an HTTP handler that logs a user in, registering unknown usernames.
// @Summary Login or register
// @Description Authenticates an existing user. An unknown username is registered and gets the default workout routine.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Logged in or registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / username already exists"
// @Failure 401 {object} handlers.ErrorResponse "Invalid password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/login [post]
func NewLoginHandler(svc LoginOrRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		result, err := svc.LoginOrRegister(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid password")
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "Username already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		message := loginSuccessMessage
		if result.Status == models.LoginStatusRegistered {
			message = registerSuccessMessage
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:  message,
			UserID:   result.UserID,
			Username: result.Username,
		})
	}
}
