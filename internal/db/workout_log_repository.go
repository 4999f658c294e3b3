package db

import (
	"github.com/avoronin9/ironlog/internal/models"
	"gorm.io/gorm"
)

const joinedLogColumns = "workout_logs.*, exercises.name AS exercise_name, exercises.exercise_type AS exercise_type"

// WorkoutLogFilter narrows a joined listing. Nil fields are not applied;
// dates are inclusive calendar-day bounds in YYYY-MM-DD form.
type WorkoutLogFilter struct {
	ExerciseID *uint
	StartDate  *string
	EndDate    *string
	Limit      *int
}

type WorkoutLogRepository struct {
	database *gorm.DB
}

func NewWorkoutLogRepository(database *gorm.DB) *WorkoutLogRepository {
	return &WorkoutLogRepository{database: database}
}

func (repo *WorkoutLogRepository) joined(userID uint) *gorm.DB {
	return repo.database.Model(&models.WorkoutLog{}).
		Select(joinedLogColumns).
		Joins("JOIN exercises ON workout_logs.exercise_id = exercises.id").
		Where("workout_logs.user_id = ?", userID)
}

func (repo *WorkoutLogRepository) ListJoined(userID uint, filter WorkoutLogFilter) ([]models.WorkoutLog, error) {
	query := repo.joined(userID)
	if filter.ExerciseID != nil {
		query = query.Where("workout_logs.exercise_id = ?", *filter.ExerciseID)
	}
	if filter.StartDate != nil {
		query = query.Where("workout_logs.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("workout_logs.date <= ?", *filter.EndDate)
	}
	query = query.Order("workout_logs.date DESC, workout_logs.created_at DESC, workout_logs.id DESC")
	if filter.Limit != nil {
		query = query.Limit(*filter.Limit)
	}

	logs := make([]models.WorkoutLog, 0)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WorkoutLogRepository) FindJoinedByIDForUser(logID uint, userID uint) (models.WorkoutLog, bool, error) {
	entry := models.WorkoutLog{}
	result := repo.joined(userID).
		Where("workout_logs.id = ?", logID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WorkoutLog{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *WorkoutLogRepository) FindByIDForUser(logID uint, userID uint) (models.WorkoutLog, bool, error) {
	entry := models.WorkoutLog{}
	result := repo.database.
		Where("id = ? AND user_id = ?", logID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WorkoutLog{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *WorkoutLogRepository) Create(entry *models.WorkoutLog) error {
	return repo.database.Create(entry).Error
}

func (repo *WorkoutLogRepository) UpdateFields(logID uint, userID uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.Model(&models.WorkoutLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Updates(updates).Error
}

func (repo *WorkoutLogRepository) DeleteByIDForUser(logID uint, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WorkoutLog{}).Error
}

// LastForExercise returns the most recent log for the exercise/user pair,
// newest date first with creation time as the tie-break.
func (repo *WorkoutLogRepository) LastForExercise(userID uint, exerciseID uint) (models.WorkoutLog, bool, error) {
	entry := models.WorkoutLog{}
	result := repo.database.
		Where("exercise_id = ? AND user_id = ?", exerciseID, userID).
		Order("date DESC, created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WorkoutLog{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

// ListForExerciseChronological returns every log for the exercise oldest
// first, the order a progress chart consumes.
func (repo *WorkoutLogRepository) ListForExerciseChronological(userID uint, exerciseID uint) ([]models.WorkoutLog, error) {
	logs := make([]models.WorkoutLog, 0)
	if err := repo.database.
		Where("exercise_id = ? AND user_id = ?", exerciseID, userID).
		Order("date ASC, created_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListJoinedRangeChronological returns the user's logs within the inclusive
// date range joined with exercise metadata, oldest first. Feeds the weekly
// report builder.
func (repo *WorkoutLogRepository) ListJoinedRangeChronological(userID uint, startDate string, endDate string) ([]models.WorkoutLog, error) {
	logs := make([]models.WorkoutLog, 0)
	if err := repo.joined(userID).
		Where("workout_logs.date >= ? AND workout_logs.date <= ?", startDate, endDate).
		Order("workout_logs.date ASC, workout_logs.created_at ASC, workout_logs.id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
