package models

// Workout is one logged workout session. Type is a free-text category
// ("Cardio", "Strength", ...); DurationMinutes is the summary measure.
type Workout struct {
	Record
	WorkoutName     string  `gorm:"not null" json:"workout_name" binding:"required"`
	Type            string  `json:"type"`
	DurationMinutes float64 `gorm:"not null" json:"duration_minutes" binding:"gte=0"`
}
