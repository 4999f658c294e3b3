// Package cli implements the offline admin commands shipped alongside the
// server binary. They operate directly on the sqlite database, for the case
// where a user has lost both their password and recovery credentials.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/avoronin9/ironlog/internal/db"
	"github.com/avoronin9/ironlog/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// RunRestoreAccessCommand sets a new password for the named user and rotates
// their recovery credentials. With interactive set, the password is read from
// the terminal without echo; otherwise a temporary one is generated and
// printed.
func RunRestoreAccessCommand(dbPath string, username string, interactive bool) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	user, found, err := users.FindByUsername(username)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", username)
	}

	var password string
	if interactive {
		password, err = promptNewPassword(os.Stdin, os.Stdout)
	} else {
		password, err = generateTemporaryPassword(12)
	}
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	recovery, err := security.GenerateRecoveryCredentials()
	if err != nil {
		return fmt.Errorf("generate recovery credentials: %w", err)
	}

	err = users.UpdateByID(user.ID, map[string]any{
		"password_hash":        string(passwordHash),
		"recovery_uuid":        recovery.UUID,
		"recovery_secret_hash": recovery.SecretHash,
		"totp_enabled":         false,
		"totp_secret":          nil,
		"totp_backup_codes":    nil,
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	fmt.Printf("Access restored for %s\n", username)
	if !interactive {
		fmt.Printf("Temporary password: %s\n", password)
	}
	fmt.Printf("New recovery UUID: %s\n", recovery.UUID)
	fmt.Printf("New recovery secret: %s\n", recovery.Secret)
	fmt.Println("Two-factor authentication has been disabled for this account.")

	return nil
}

func promptNewPassword(stdin *os.File, stdout *os.File) (string, error) {
	fmt.Fprint(stdout, "New password: ")
	first, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(stdout, "Repeat password: ")
	second, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) < 6 {
		return "", errors.New("password must be at least 6 characters")
	}
	return string(first), nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
