package models

import "time"

// PublicExercise is a curated catalog entry shared by all users. The catalog
// is seeded by migration and read-only at runtime.
type PublicExercise struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
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
