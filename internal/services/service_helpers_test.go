package services

import (
	"path/filepath"
	"testing"

	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/models"
	"gorm.io/gorm"
)

func newServiceTestDB(t *testing.T) (*gorm.DB, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ironlog-service-test.db")
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

	return database, db.NewRepositories(database)
}

func createTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "test-hash",
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestExercise(t *testing.T, repos *db.Repositories, userID uint, name string, exerciseType string) models.Exercise {
	t.Helper()

	exercise := models.Exercise{
		UserID:       userID,
		Name:         name,
		ExerciseType: exerciseType,
	}
	if err := repos.Exercises.Create(&exercise); err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	return exercise
}
