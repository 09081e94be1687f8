package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginOrRegisterer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "existing user",
			inputBody: LoginRequest{Username: "alice", Password: "pw1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginOrRegister(gomock.Any(), "alice", "pw1").
					Return(&models.LoginResult{Status: models.LoginStatusAuthenticated, UserID: 2, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{Message: "Login successful", UserID: 2, Username: "alice"},
		},
		{
			name:      "new user",
			inputBody: LoginRequest{Username: "bob", Password: "pw2"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginOrRegister(gomock.Any(), "bob", "pw2").
					Return(&models.LoginResult{Status: models.LoginStatusRegistered, UserID: 3, Username: "bob"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{Message: "User registered and routines initialized", UserID: 3, Username: "bob"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:         "missing password",
			inputBody:    LoginRequest{Username: "alice"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "username and password are required"},
		},
		{
			name:      "wrong password",
			inputBody: LoginRequest{Username: "alice", Password: "bad"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginOrRegister(gomock.Any(), "alice", "bad").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Invalid password"},
		},
		{
			name:      "username taken",
			inputBody: LoginRequest{Username: "carol", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginOrRegister(gomock.Any(), "carol", "pw").
					Return(nil, services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Username already exists"},
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Username: "dave", Password: "pw"},
			mockSetup: func() {
				mockSvc.EXPECT().
					LoginOrRegister(gomock.Any(), "dave", "pw").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			switch expected := tt.expectedBody.(type) {
			case *LoginResponse:
				var got LoginResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *expected, got)
			case *ErrorResponse:
				var got ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *expected, got)
			}
		})
	}
}
