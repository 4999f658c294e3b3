package db

import (
	"github.com/avoronin9/ironlog/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) ListByUser(userID uint) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByIDForUser(exerciseID uint, userID uint) (models.Exercise, bool, error) {
	exercise := models.Exercise{}
	result := repo.database.
		Where("id = ? AND user_id = ?", exerciseID, userID).
		Limit(1).
		Find(&exercise)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	return exercise, result.RowsAffected > 0, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) UpdateFields(exerciseID uint, userID uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return repo.database.Model(&models.Exercise{}).
		Where("id = ? AND user_id = ?", exerciseID, userID).
		Updates(updates).Error
}

// DeleteWithLogs removes the exercise and its workout logs in one
// transaction. The schema also cascades, but the explicit delete keeps the
// behavior independent of the foreign_keys pragma.
func (repo *ExerciseRepository) DeleteWithLogs(exerciseID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("exercise_id = ? AND user_id = ?", exerciseID, userID).
			Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ? AND user_id = ?", exerciseID, userID).
			Delete(&models.Exercise{}).Error
	})
}
