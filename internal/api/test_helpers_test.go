package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avoronin9/ironlog/internal/config"
	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/logger"
	"github.com/avoronin9/ironlog/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type recordingMailer struct {
	to   []string
	html []string
}

func (mailer *recordingMailer) Send(_ context.Context, to string, _ string, _ string, htmlBody string) error {
	mailer.to = append(mailer.to, to)
	mailer.html = append(mailer.html, htmlBody)
	return nil
}

func newTestApp(t *testing.T, mailer services.Mailer) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ironlog-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	cfg := config.Config{
		SecretKey:  "test-secret-key",
		TOTPIssuer: "IronLog Test",
	}
	handler := NewHandler(database, cfg, mailer, logger.Nop())

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func apiRequest(t *testing.T, app *fiber.App, method string, path string, cookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = strings.NewReader(string(encoded))
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func sessionCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

func registerTestAccount(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response := apiRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": username,
		"password": "test password",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, response.StatusCode, readBody(t, response))
	}
	return sessionCookie(t, response)
}

func createExerciseViaAPI(t *testing.T, app *fiber.App, cookie string, name string, exerciseType string) uint {
	t.Helper()

	response := apiRequest(t, app, http.MethodPost, "/exercises", cookie, fiber.Map{
		"name":          name,
		"exercise_type": exerciseType,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create exercise: status %d, body %s", response.StatusCode, readBody(t, response))
	}
	var created struct {
		Exercise struct {
			ID uint `json:"id"`
		} `json:"exercise"`
	}
	decodeBody(t, response, &created)
	return created.Exercise.ID
}
