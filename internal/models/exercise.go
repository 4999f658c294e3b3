package models

import "time"

const (
	ExerciseTypeStrength = "strength"
	ExerciseTypeCardio   = "cardio"
)

// NormalizeExerciseType clamps any value outside the known taxonomy to
// strength. Invalid input is silently coerced, never rejected.
func NormalizeExerciseType(exerciseType string) string {
	switch exerciseType {
	case ExerciseTypeStrength, ExerciseTypeCardio:
		return exerciseType
	default:
		return ExerciseTypeStrength
	}
}

type Exercise struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	ExerciseType string    `gorm:"not null;default:strength" json:"exercise_type"`
	MuscleGroup  *string   `json:"muscle_group"`
	Equipment    *string   `json:"equipment"`
	Description  *string   `json:"description"`
	Instructions *string   `json:"instructions"`
	VideoLink    *string   `json:"video_link"`
	ImageLink    *string   `json:"image_link"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
