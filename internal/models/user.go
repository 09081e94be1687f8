package models

// User represents a user record in the database
type User struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never the plaintext
}
