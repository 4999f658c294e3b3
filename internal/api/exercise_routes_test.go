package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestExerciseCRUD(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	cookie := registerTestAccount(t, app, "crud")

	created := apiRequest(t, app, http.MethodPost, "/exercises", cookie, fiber.Map{
		"name":          "Bench Press",
		"exercise_type": "strength",
		"muscle_group":  "chest",
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", created.StatusCode)
	}
	var createdBody struct {
		Exercise struct {
			ID           uint    `json:"id"`
			Name         string  `json:"name"`
			ExerciseType string  `json:"exercise_type"`
			MuscleGroup  *string `json:"muscle_group"`
		} `json:"exercise"`
	}
	decodeBody(t, created, &createdBody)
	exercise := createdBody.Exercise
	if exercise.Name != "Bench Press" || exercise.ExerciseType != "strength" {
		t.Fatalf("unexpected exercise %+v", exercise)
	}

	path := fmt.Sprintf("/exercises/%d", exercise.ID)
	updated := apiRequest(t, app, http.MethodPut, path, cookie, fiber.Map{
		"muscle_group": nil,
		"equipment":    "barbell",
	})
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, body %s", updated.StatusCode, readBody(t, updated))
	}
	var patchedBody struct {
		Exercise struct {
			MuscleGroup *string `json:"muscle_group"`
			Equipment   *string `json:"equipment"`
			Name        string  `json:"name"`
		} `json:"exercise"`
	}
	decodeBody(t, updated, &patchedBody)
	patched := patchedBody.Exercise
	if patched.MuscleGroup != nil {
		t.Fatalf("muscle group not cleared: %v", patched.MuscleGroup)
	}
	if patched.Equipment == nil || *patched.Equipment != "barbell" {
		t.Fatalf("equipment = %v", patched.Equipment)
	}
	if patched.Name != "Bench Press" {
		t.Fatalf("name changed to %q", patched.Name)
	}

	listed := apiRequest(t, app, http.MethodGet, "/exercises", cookie, nil)
	var listedBody struct {
		Exercises []struct {
			ID uint `json:"id"`
		} `json:"exercises"`
	}
	decodeBody(t, listed, &listedBody)
	if len(listedBody.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(listedBody.Exercises))
	}

	deleted := apiRequest(t, app, http.MethodDelete, path, cookie, nil)
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", deleted.StatusCode)
	}
	if got := apiRequest(t, app, http.MethodGet, path, cookie, nil); got.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", got.StatusCode)
	}
}

func TestExerciseTypeCoercionOverHTTP(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	cookie := registerTestAccount(t, app, "coercion")

	created := apiRequest(t, app, http.MethodPost, "/exercises", cookie, fiber.Map{
		"name":          "Mystery Move",
		"exercise_type": "yoga",
	})
	var createdBody struct {
		Exercise struct {
			ExerciseType string `json:"exercise_type"`
		} `json:"exercise"`
	}
	decodeBody(t, created, &createdBody)
	if createdBody.Exercise.ExerciseType != "strength" {
		t.Fatalf("expected coercion to strength, got %q", createdBody.Exercise.ExerciseType)
	}
}

func TestExerciseRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)

	for _, path := range []string{"/exercises", "/workout-logs", "/public-exercises"} {
		response := apiRequest(t, app, http.MethodGet, path, "", nil)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s without cookie status = %d", path, response.StatusCode)
		}
	}
}
