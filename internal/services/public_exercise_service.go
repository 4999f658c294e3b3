package services

import "github.com/avoronin9/ironlog/internal/models"

// PublicExerciseRepository reads the shared seeded catalog.
type PublicExerciseRepository interface {
	List() ([]models.PublicExercise, error)
	FindByID(id uint) (models.PublicExercise, bool, error)
}

type PublicExerciseService struct {
	catalog PublicExerciseRepository
}

func NewPublicExerciseService(catalog PublicExerciseRepository) *PublicExerciseService {
	return &PublicExerciseService{catalog: catalog}
}

func (service *PublicExerciseService) List() ([]models.PublicExercise, error) {
	return service.catalog.List()
}

func (service *PublicExerciseService) Get(id uint) (models.PublicExercise, error) {
	exercise, found, err := service.catalog.FindByID(id)
	if err != nil {
		return models.PublicExercise{}, err
	}
	if !found {
		return models.PublicExercise{}, NewNotFoundError("Public exercise not found")
	}
	return exercise, nil
}
