package models

// LoginStatus tells whether a login call matched an existing account or created one.
type LoginStatus string

const (
	LoginStatusAuthenticated LoginStatus = "authenticated"
	LoginStatusRegistered    LoginStatus = "registered"
)

// LoginResult is the outcome of a successful login-or-register call.
type LoginResult struct {
	Status   LoginStatus `json:"status"`
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
}
