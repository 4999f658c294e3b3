package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestRunRestoreAccessCommand(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "ironlog-cli-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	oldHash, err := bcrypt.GenerateFromPassword([]byte("forgotten"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	secret := "old-totp-secret"
	user := models.User{
		Username:     "lockedout",
		PasswordHash: string(oldHash),
		TOTPEnabled:  true,
		TOTPSecret:   &secret,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	if err := RunRestoreAccessCommand(databasePath, "lockedout", false); err != nil {
		t.Fatalf("restore access returned error: %v", err)
	}

	reopened, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	restored, found, err := db.NewUserRepository(reopened).FindByUsername("lockedout")
	if err != nil || !found {
		t.Fatalf("reload user: found=%v err=%v", found, err)
	}
	if restored.PasswordHash == string(oldHash) {
		t.Fatal("expected password hash replaced")
	}
	if restored.TOTPEnabled || restored.TOTPSecret != nil {
		t.Fatal("expected two-factor auth cleared")
	}
	if restored.RecoveryUUID == nil || restored.RecoverySecretHash == nil {
		t.Fatal("expected fresh recovery credentials")
	}
}

func TestRunRestoreAccessCommandUnknownUser(t *testing.T) {
	t.Parallel()

	databasePath := filepath.Join(t.TempDir(), "ironlog-cli-missing-test.db")
	if err := RunRestoreAccessCommand(databasePath, "ghost", false); err == nil {
		t.Fatal("expected error for unknown user")
	}
	if err := RunRestoreAccessCommand(databasePath, "   ", false); err == nil {
		t.Fatal("expected error for blank username")
	}
}
