package services

import (
	"time"

	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/models"
)

const (
	cardioFieldsMessage   = "Distance, duration, pace, and lap times can only be used for cardio exercises"
	strengthFieldsMessage = "Weight and weight per set can only be used for strength exercises"
)

// WorkoutLogRepository is the persistence surface the workout log service
// needs.
type WorkoutLogRepository interface {
	ListJoined(userID uint, filter db.WorkoutLogFilter) ([]models.WorkoutLog, error)
	FindJoinedByIDForUser(logID uint, userID uint) (models.WorkoutLog, bool, error)
	FindByIDForUser(logID uint, userID uint) (models.WorkoutLog, bool, error)
	Create(entry *models.WorkoutLog) error
	UpdateFields(logID uint, userID uint, updates map[string]any) error
	DeleteByIDForUser(logID uint, userID uint) error
	LastForExercise(userID uint, exerciseID uint) (models.WorkoutLog, bool, error)
	ListForExerciseChronological(userID uint, exerciseID uint) ([]models.WorkoutLog, error)
}

type WorkoutLogService struct {
	logs      WorkoutLogRepository
	exercises ExerciseRepository
}

func NewWorkoutLogService(logs WorkoutLogRepository, exercises ExerciseRepository) *WorkoutLogService {
	return &WorkoutLogService{logs: logs, exercises: exercises}
}

// WorkoutLogInput carries a create request. The type gate checks which keys
// were supplied, so optional fields track JSON presence. Zero numbers and
// empty strings still store as NULL; a supplied empty list stores as an
// empty list.
type WorkoutLogInput struct {
	ExerciseID   uint             `json:"exercise_id"`
	Date         string           `json:"date"`
	Sets         Field[int]       `json:"sets"`
	Reps         Field[int]       `json:"reps"`
	Weight       Field[float64]   `json:"weight"`
	WeightPerSet Field[[]float64] `json:"weight_per_set"`
	RestTime     Field[int]       `json:"rest_time"`
	Distance     Field[float64]   `json:"distance"`
	Duration     Field[int]       `json:"duration"`
	Pace         Field[float64]   `json:"pace"`
	LapTimes     Field[[]float64] `json:"lap_times"`
	Notes        Field[string]    `json:"notes"`
}

// WorkoutLogPatch carries a partial update. Only supplied keys are checked
// against the exercise type and written.
type WorkoutLogPatch struct {
	ExerciseID   Field[uint]      `json:"exercise_id"`
	Date         Field[string]    `json:"date"`
	Sets         Field[int]       `json:"sets"`
	Reps         Field[int]       `json:"reps"`
	Weight       Field[float64]   `json:"weight"`
	WeightPerSet Field[[]float64] `json:"weight_per_set"`
	RestTime     Field[int]       `json:"rest_time"`
	Distance     Field[float64]   `json:"distance"`
	Duration     Field[int]       `json:"duration"`
	Pace         Field[float64]   `json:"pace"`
	LapTimes     Field[[]float64] `json:"lap_times"`
	Notes        Field[string]    `json:"notes"`
}

func (service *WorkoutLogService) List(userID uint, filter db.WorkoutLogFilter) ([]models.WorkoutLog, error) {
	if filter.StartDate != nil {
		if err := validateDate(*filter.StartDate); err != nil {
			return nil, err
		}
	}
	if filter.EndDate != nil {
		if err := validateDate(*filter.EndDate); err != nil {
			return nil, err
		}
	}
	return service.logs.ListJoined(userID, filter)
}

func (service *WorkoutLogService) Get(logID, userID uint) (models.WorkoutLog, error) {
	entry, found, err := service.logs.FindJoinedByIDForUser(logID, userID)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	if !found {
		return models.WorkoutLog{}, NewNotFoundError("Workout log not found")
	}
	return entry, nil
}

func (service *WorkoutLogService) Create(userID uint, input WorkoutLogInput) (models.WorkoutLog, error) {
	if input.ExerciseID == 0 {
		return models.WorkoutLog{}, NewValidationError("Exercise ID is required")
	}
	if input.Date == "" {
		return models.WorkoutLog{}, NewValidationError("Date is required")
	}
	if err := validateDate(input.Date); err != nil {
		return models.WorkoutLog{}, err
	}

	exercise, err := service.ownedExercise(input.ExerciseID, userID)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	carriesCardio := input.Distance.Carried() || input.Duration.Carried() ||
		input.Pace.Carried() || input.LapTimes.Carried()
	if carriesCardio && exercise.ExerciseType != models.ExerciseTypeCardio {
		return models.WorkoutLog{}, NewValidationError(cardioFieldsMessage)
	}
	carriesStrength := input.Weight.Carried() || input.WeightPerSet.Carried()
	if carriesStrength && exercise.ExerciseType != models.ExerciseTypeStrength {
		return models.WorkoutLog{}, NewValidationError(strengthFieldsMessage)
	}

	entry := models.WorkoutLog{
		UserID:       userID,
		ExerciseID:   input.ExerciseID,
		Date:         input.Date,
		Sets:         nullableInt(input.Sets.Value),
		Reps:         nullableInt(input.Reps.Value),
		Weight:       nullableFloat(input.Weight.Value),
		WeightPerSet: models.NumberList(input.WeightPerSet.Value),
		RestTime:     nullableInt(input.RestTime.Value),
		Distance:     nullableFloat(input.Distance.Value),
		Duration:     nullableInt(input.Duration.Value),
		Pace:         nullableFloat(input.Pace.Value),
		LapTimes:     models.NumberList(input.LapTimes.Value),
		Notes:        nullableText(input.Notes.Value),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.WorkoutLog{}, err
	}
	return service.Get(entry.ID, userID)
}

func (service *WorkoutLogService) Update(logID, userID uint, patch WorkoutLogPatch) (models.WorkoutLog, error) {
	entry, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return models.WorkoutLog{}, err
	}
	if !found {
		return models.WorkoutLog{}, NewNotFoundError("Workout log not found")
	}

	exerciseID := entry.ExerciseID
	if patch.ExerciseID.Set {
		if !patch.ExerciseID.Valid || patch.ExerciseID.Value == 0 {
			return models.WorkoutLog{}, NewValidationError("Exercise ID is required")
		}
		exerciseID = patch.ExerciseID.Value
	}
	exercise, err := service.ownedExercise(exerciseID, userID)
	if err != nil {
		return models.WorkoutLog{}, err
	}

	// Only fields carried by this request are checked against the
	// exercise type; stored values from earlier requests are left alone.
	carriesCardio := patch.Distance.Carried() || patch.Duration.Carried() ||
		patch.Pace.Carried() || patch.LapTimes.Carried()
	if carriesCardio && exercise.ExerciseType != models.ExerciseTypeCardio {
		return models.WorkoutLog{}, NewValidationError(cardioFieldsMessage)
	}
	carriesStrength := patch.Weight.Carried() || patch.WeightPerSet.Carried()
	if carriesStrength && exercise.ExerciseType != models.ExerciseTypeStrength {
		return models.WorkoutLog{}, NewValidationError(strengthFieldsMessage)
	}

	updates := map[string]any{}
	if patch.ExerciseID.Set {
		updates["exercise_id"] = exerciseID
	}
	if patch.Date.Set {
		if !patch.Date.Valid || patch.Date.Value == "" {
			return models.WorkoutLog{}, NewValidationError("Date is required")
		}
		if err := validateDate(patch.Date.Value); err != nil {
			return models.WorkoutLog{}, err
		}
		updates["date"] = patch.Date.Value
	}
	applyIntField(updates, "sets", patch.Sets)
	applyIntField(updates, "reps", patch.Reps)
	applyFloatField(updates, "weight", patch.Weight)
	applyListField(updates, "weight_per_set", patch.WeightPerSet)
	applyIntField(updates, "rest_time", patch.RestTime)
	applyFloatField(updates, "distance", patch.Distance)
	applyIntField(updates, "duration", patch.Duration)
	applyFloatField(updates, "pace", patch.Pace)
	applyListField(updates, "lap_times", patch.LapTimes)
	if patch.Notes.Set {
		if patch.Notes.Valid && patch.Notes.Value != "" {
			updates["notes"] = patch.Notes.Value
		} else {
			updates["notes"] = nil
		}
	}

	if err := service.logs.UpdateFields(logID, userID, updates); err != nil {
		return models.WorkoutLog{}, err
	}
	return service.Get(logID, userID)
}

func (service *WorkoutLogService) Delete(logID, userID uint) error {
	_, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return err
	}
	if !found {
		return NewNotFoundError("Workout log not found")
	}
	return service.logs.DeleteByIDForUser(logID, userID)
}

// LastValues returns the newest log for an exercise, or nil when the user
// has not logged it yet.
func (service *WorkoutLogService) LastValues(userID, exerciseID uint) (*models.WorkoutLog, error) {
	if _, err := service.ownedExercise(exerciseID, userID); err != nil {
		return nil, err
	}
	entry, found, err := service.logs.LastForExercise(userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &entry, nil
}

// Progress returns every log for an exercise in chronological order.
func (service *WorkoutLogService) Progress(userID, exerciseID uint) ([]models.WorkoutLog, error) {
	if _, err := service.ownedExercise(exerciseID, userID); err != nil {
		return nil, err
	}
	return service.logs.ListForExerciseChronological(userID, exerciseID)
}

func (service *WorkoutLogService) ownedExercise(exerciseID, userID uint) (models.Exercise, error) {
	exercise, found, err := service.exercises.FindByIDForUser(exerciseID, userID)
	if err != nil {
		return models.Exercise{}, err
	}
	if !found {
		return models.Exercise{}, NewNotFoundError("Exercise not found")
	}
	return exercise, nil
}

func validateDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return NewValidationError("Date must be in YYYY-MM-DD format")
	}
	return nil
}

func nullableInt(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}

func nullableFloat(value float64) *float64 {
	if value == 0 {
		return nil
	}
	return &value
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func applyIntField(updates map[string]any, column string, field Field[int]) {
	if !field.Set {
		return
	}
	if field.Valid && field.Value != 0 {
		updates[column] = field.Value
		return
	}
	updates[column] = nil
}

func applyFloatField(updates map[string]any, column string, field Field[float64]) {
	if !field.Set {
		return
	}
	if field.Valid && field.Value != 0 {
		updates[column] = field.Value
		return
	}
	updates[column] = nil
}

func applyListField(updates map[string]any, column string, field Field[[]float64]) {
	if !field.Set {
		return
	}
	if !field.Valid {
		updates[column] = nil
		return
	}
	updates[column] = models.NumberList(field.Value)
}
