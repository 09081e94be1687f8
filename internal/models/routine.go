package models

// DefaultRoutine is the catalog seeded for every new account, in insertion order.
var DefaultRoutine = []ExerciseItem{
	{BodyPart: "Glute1", Description: "Bulgarian Split Squats"},
	{BodyPart: "Glute1", Description: "Dumbbell RDLs"},
	{BodyPart: "Glute2", Description: "Lunges"},
	{BodyPart: "Glute2", Description: "Hip Thrust"},
	{BodyPart: "Chest", Description: "Push-ups"},
	{BodyPart: "Chest", Description: "Bench Press"},
	{BodyPart: "Back", Description: "Lat Pulldown"},
	{BodyPart: "Back", Description: "Pull-Ups"},
}

// RoutineFor returns a fresh copy of DefaultRoutine owned by userID.
func RoutineFor(userID int64) []ExerciseItem {
	items := make([]ExerciseItem, len(DefaultRoutine))
	for i, item := range DefaultRoutine {
		item.OwnerID = userID
		item.IsCompleted = false
		items[i] = item
	}
	return items
}
