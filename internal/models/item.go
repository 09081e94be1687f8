package models

// ExerciseItem represents one exercise of a user's routine, stored in the todos table.
type ExerciseItem struct {
	ID          int64  `json:"id" db:"id"`                     // Primary key
	OwnerID     int64  `json:"user_id" db:"user_id"`           // References users.id
	BodyPart    string `json:"part" db:"part"`                 // Free-form label, e.g. Glute1, Chest
	Description string `json:"content" db:"content"`           // Exercise name or instruction text
	IsCompleted bool   `json:"is_completed" db:"is_completed"` // Completion flag
}
