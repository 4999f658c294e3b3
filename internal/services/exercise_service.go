package services

import (
	"strings"

	"github.com/avoronin9/ironlog/internal/models"
)

// ExerciseRepository is the persistence surface the exercise service needs.
type ExerciseRepository interface {
	ListByUser(userID uint) ([]models.Exercise, error)
	FindByIDForUser(id, userID uint) (models.Exercise, bool, error)
	Create(exercise *models.Exercise) error
	UpdateFields(id, userID uint, fields map[string]any) error
	DeleteWithLogs(id, userID uint) error
}

type ExerciseService struct {
	exercises ExerciseRepository
}

func NewExerciseService(exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

// ExerciseInput carries a create request. Name is the only required field.
type ExerciseInput struct {
	Name         string  `json:"name"`
	ExerciseType string  `json:"exercise_type"`
	MuscleGroup  *string `json:"muscle_group"`
	Equipment    *string `json:"equipment"`
	Description  *string `json:"description"`
	Instructions *string `json:"instructions"`
	VideoLink    *string `json:"video_link"`
	ImageLink    *string `json:"image_link"`
}

// ExercisePatch carries a partial update. Absent keys leave columns alone,
// null keys clear them.
type ExercisePatch struct {
	Name         Field[string] `json:"name"`
	ExerciseType Field[string] `json:"exercise_type"`
	MuscleGroup  Field[string] `json:"muscle_group"`
	Equipment    Field[string] `json:"equipment"`
	Description  Field[string] `json:"description"`
	Instructions Field[string] `json:"instructions"`
	VideoLink    Field[string] `json:"video_link"`
	ImageLink    Field[string] `json:"image_link"`
}

func (service *ExerciseService) List(userID uint) ([]models.Exercise, error) {
	return service.exercises.ListByUser(userID)
}

func (service *ExerciseService) Get(id, userID uint) (models.Exercise, error) {
	exercise, found, err := service.exercises.FindByIDForUser(id, userID)
	if err != nil {
		return models.Exercise{}, err
	}
	if !found {
		return models.Exercise{}, NewNotFoundError("Exercise not found")
	}
	return exercise, nil
}

func (service *ExerciseService) Create(userID uint, input ExerciseInput) (models.Exercise, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Exercise{}, NewValidationError("Exercise name is required")
	}
	exercise := models.Exercise{
		UserID:       userID,
		Name:         name,
		ExerciseType: models.NormalizeExerciseType(input.ExerciseType),
		MuscleGroup:  normalizeOptionalText(input.MuscleGroup),
		Equipment:    normalizeOptionalText(input.Equipment),
		Description:  normalizeOptionalText(input.Description),
		Instructions: normalizeOptionalText(input.Instructions),
		VideoLink:    normalizeOptionalText(input.VideoLink),
		ImageLink:    normalizeOptionalText(input.ImageLink),
	}
	if err := service.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (service *ExerciseService) Update(id, userID uint, patch ExercisePatch) (models.Exercise, error) {
	if _, err := service.Get(id, userID); err != nil {
		return models.Exercise{}, err
	}

	fields := map[string]any{}
	if patch.Name.Set {
		name := strings.TrimSpace(patch.Name.Value)
		if !patch.Name.Valid || name == "" {
			return models.Exercise{}, NewValidationError("Exercise name is required")
		}
		fields["name"] = name
	}
	if patch.ExerciseType.Set {
		raw := ""
		if patch.ExerciseType.Valid {
			raw = patch.ExerciseType.Value
		}
		fields["exercise_type"] = models.NormalizeExerciseType(raw)
	}
	applyTextField(fields, "muscle_group", patch.MuscleGroup)
	applyTextField(fields, "equipment", patch.Equipment)
	applyTextField(fields, "description", patch.Description)
	applyTextField(fields, "instructions", patch.Instructions)
	applyTextField(fields, "video_link", patch.VideoLink)
	applyTextField(fields, "image_link", patch.ImageLink)

	if err := service.exercises.UpdateFields(id, userID, fields); err != nil {
		return models.Exercise{}, err
	}
	return service.Get(id, userID)
}

// Delete removes an exercise together with its workout logs.
func (service *ExerciseService) Delete(id, userID uint) error {
	if _, err := service.Get(id, userID); err != nil {
		return err
	}
	return service.exercises.DeleteWithLogs(id, userID)
}

func normalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func applyTextField(fields map[string]any, column string, field Field[string]) {
	if !field.Set {
		return
	}
	if !field.Valid {
		fields[column] = nil
		return
	}
	trimmed := strings.TrimSpace(field.Value)
	if trimmed == "" {
		fields[column] = nil
		return
	}
	fields[column] = trimmed
}
