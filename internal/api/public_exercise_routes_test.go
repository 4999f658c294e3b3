package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestPublicExerciseCatalogSeeded(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, nil)
	cookie := registerTestAccount(t, app, "browser")

	listed := apiRequest(t, app, http.MethodGet, "/public-exercises", cookie, nil)
	if listed.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", listed.StatusCode)
	}
	var listedBody struct {
		Exercises []struct {
			ID           uint   `json:"id"`
			Name         string `json:"name"`
			ExerciseType string `json:"exercise_type"`
		} `json:"exercises"`
	}
	decodeBody(t, listed, &listedBody)
	catalog := listedBody.Exercises
	if len(catalog) != 12 {
		t.Fatalf("expected 12 seeded exercises, got %d", len(catalog))
	}

	names := make(map[string]string, len(catalog))
	for _, entry := range catalog {
		names[entry.Name] = entry.ExerciseType
	}
	if names["Bench Press"] != "strength" {
		t.Fatalf("Bench Press type = %q", names["Bench Press"])
	}
	if names["Running"] != "cardio" {
		t.Fatalf("Running type = %q", names["Running"])
	}

	single := apiRequest(t, app, http.MethodGet, fmt.Sprintf("/public-exercises/%d", catalog[0].ID), cookie, nil)
	if single.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", single.StatusCode)
	}

	missing := apiRequest(t, app, http.MethodGet, "/public-exercises/424242", cookie, nil)
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing status = %d", missing.StatusCode)
	}
}
