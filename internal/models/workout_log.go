package models

import "time"

// WorkoutLog is one dated performance record for one exercise. ExerciseName
// and ExerciseType are populated only by queries that join the owning
// exercise; they are never written back.
type WorkoutLog struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	ExerciseID   uint       `gorm:"not null;index" json:"exercise_id"`
	Date         string     `gorm:"type:text;not null" json:"date"`
	Sets         *int       `json:"sets"`
	Reps         *int       `json:"reps"`
	Weight       *float64   `json:"weight"`
	WeightPerSet NumberList `gorm:"type:text" json:"weight_per_set"`
	RestTime     *int       `json:"rest_time"`
	Distance     *float64   `json:"distance"`
	Duration     *int       `json:"duration"`
	Pace         *float64   `json:"pace"`
	LapTimes     NumberList `gorm:"type:text" json:"lap_times"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`

	ExerciseName *string `gorm:"->" json:"exercise_name,omitempty"`
	ExerciseType *string `gorm:"->" json:"exercise_type,omitempty"`
}
