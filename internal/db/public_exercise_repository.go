package db

import (
	"github.com/avoronin9/ironlog/internal/models"
	"gorm.io/gorm"
)

type PublicExerciseRepository struct {
	database *gorm.DB
}

func NewPublicExerciseRepository(database *gorm.DB) *PublicExerciseRepository {
	return &PublicExerciseRepository{database: database}
}

func (repo *PublicExerciseRepository) List() ([]models.PublicExercise, error) {
	exercises := make([]models.PublicExercise, 0)
	if err := repo.database.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *PublicExerciseRepository) FindByID(exerciseID uint) (models.PublicExercise, bool, error) {
	exercise := models.PublicExercise{}
	result := repo.database.Limit(1).Find(&exercise, exerciseID)
	if result.Error != nil {
		return models.PublicExercise{}, false, result.Error
	}
	return exercise, result.RowsAffected > 0, nil
}
