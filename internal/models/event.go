package models

// EventType names an activity published to the events topic.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventRoutineSeeded  EventType = "routine_seeded"
	EventItemCreated    EventType = "item_created"
	EventItemUpdated    EventType = "item_updated"
	EventItemToggled    EventType = "item_toggled"
	EventItemDeleted    EventType = "item_deleted"
)

// Event represents a workout activity, published as JSON keyed by EventID.
type Event struct {
	EventID   string    `json:"event_id"`          // EventID is a unique identifier for the event.
	Timestamp int64     `json:"timestamp"`         // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Type      EventType `json:"type"`              // Type describes what happened.
	UserID    int64     `json:"user_id"`           // UserID owns the affected data.
	ItemID    int64     `json:"item_id,omitempty"` // ItemID is set for single-item events.
	Count     int       `json:"count,omitempty"`   // Count is the number of rows affected by bulk events.
}
