package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openMigrationTestDB(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
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
	return database
}

func TestMigrationsApplyOnceAndAreIdempotent(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "ironlog-migration-test.db")
	database := openMigrationTestDB(t, databasePath)

	var count int64
	if err := database.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 applied migrations, got %d", count)
	}

	var seeded int64
	if err := database.Raw(`SELECT COUNT(*) FROM public_exercises`).Scan(&seeded).Error; err != nil {
		t.Fatalf("count seeded catalog: %v", err)
	}
	if seeded != 12 {
		t.Fatalf("expected 12 seeded public exercises, got %d", seeded)
	}

	// A second open against the same file must not re-apply anything.
	reopened := openMigrationTestDB(t, databasePath)
	if err := reopened.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count).Error; err != nil {
		t.Fatalf("count migrations after reopen: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 applied migrations after reopen, got %d", count)
	}
	if err := reopened.Raw(`SELECT COUNT(*) FROM public_exercises`).Scan(&seeded).Error; err != nil {
		t.Fatalf("count seeded catalog after reopen: %v", err)
	}
	if seeded != 12 {
		t.Fatalf("expected catalog unchanged after reopen, got %d", seeded)
	}
}

func TestReadEmbeddedMigrationsSortedUnique(t *testing.T) {
	t.Parallel()

	found, err := readEmbeddedMigrations()
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	if len(found) < 3 {
		t.Fatalf("expected at least 3 migrations, got %d", len(found))
	}
	for index := 1; index < len(found); index++ {
		if found[index].version <= found[index-1].version {
			t.Fatalf("migrations out of order: %s before %s", found[index-1].name, found[index].name)
		}
	}
}

func TestDeleteWithLogsRemovesExerciseAndItsLogs(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "ironlog-delete-test.db")
	database := openMigrationTestDB(t, databasePath)

	statements := []string{
		`INSERT INTO users(username, password_hash) VALUES ('fk', 'hash')`,
		`INSERT INTO exercises(user_id, name, exercise_type) VALUES (1, 'Squat', 'strength')`,
		`INSERT INTO workout_logs(user_id, exercise_id, date) VALUES (1, 1, '2026-08-24')`,
	}
	for _, statement := range statements {
		if err := database.Exec(statement).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if err := NewExerciseRepository(database).DeleteWithLogs(1, 1); err != nil {
		t.Fatalf("delete exercise: %v", err)
	}

	var remaining int64
	if err := database.Raw(`SELECT COUNT(*) FROM workout_logs`).Scan(&remaining).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected logs removed with the exercise, got %d remaining", remaining)
	}
	var exercises int64
	if err := database.Raw(`SELECT COUNT(*) FROM exercises`).Scan(&exercises).Error; err != nil {
		t.Fatalf("count exercises: %v", err)
	}
	if exercises != 0 {
		t.Fatalf("expected exercise removed, got %d remaining", exercises)
	}
}
