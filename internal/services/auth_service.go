package services

import (
	"strings"

	"github.com/avoronin9/ironlog/internal/models"
	"github.com/avoronin9/ironlog/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// AuthUserRepository is the persistence surface the auth service needs.
type AuthUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByUsername(username string) (models.User, bool, error)
	FindByRecoveryUUID(recoveryUUID string) (models.User, bool, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) error
}

type AuthService struct {
	users      AuthUserRepository
	totpIssuer string
}

func NewAuthService(users AuthUserRepository, totpIssuer string) *AuthService {
	return &AuthService{users: users, totpIssuer: totpIssuer}
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterResult carries the new user plus the one-time recovery
// credentials. The plain secret is never retrievable again.
type RegisterResult struct {
	User           models.User
	RecoveryUUID   string
	RecoverySecret string
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code"`
}

// LoginResult reports either an authenticated user or, when the account has
// two-factor enabled and no code was supplied, that a code is still needed.
type LoginResult struct {
	User         models.User
	RequiresTOTP bool
}

type ResetPasswordInput struct {
	RecoveryUUID   string `json:"recoveryUuid"`
	RecoverySecret string `json:"recoverySecret"`
	NewPassword    string `json:"newPassword"`
}

// TOTPSetup is returned by SetupTOTP; the QR code is a PNG data URI.
type TOTPSetup struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	QRCode     string `json:"qr_code"`
}

func (service *AuthService) Register(input RegisterInput) (RegisterResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return RegisterResult{}, NewValidationError("Username is required")
	}
	if len(input.Password) < minPasswordLength {
		return RegisterResult{}, NewValidationError("Password must be at least 6 characters")
	}

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return RegisterResult{}, err
	}
	if taken {
		return RegisterResult{}, NewValidationError("Username is already taken")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, err
	}
	recovery, err := security.GenerateRecoveryCredentials()
	if err != nil {
		return RegisterResult{}, err
	}

	user := models.User{
		Username:            username,
		Email:               normalizeOptionalText(&input.Email),
		PasswordHash:        string(passwordHash),
		RecoveryUUID:        &recovery.UUID,
		RecoverySecretHash:  &recovery.SecretHash,
		WeeklyReportEnabled: true,
	}
	if err := service.users.Create(&user); err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{
		User:           user,
		RecoveryUUID:   recovery.UUID,
		RecoverySecret: recovery.Secret,
	}, nil
}

func (service *AuthService) Login(input LoginInput) (LoginResult, error) {
	user, found, err := service.users.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		return LoginResult{}, err
	}
	if !found {
		return LoginResult{}, NewAuthError("Invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return LoginResult{}, NewAuthError("Invalid username or password")
	}

	if user.TOTPEnabled {
		code := strings.TrimSpace(input.TOTPCode)
		if code == "" {
			return LoginResult{RequiresTOTP: true}, nil
		}
		if err := service.checkSecondFactor(&user, code); err != nil {
			return LoginResult{}, err
		}
	}

	return LoginResult{User: user}, nil
}

func (service *AuthService) Me(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, NewNotFoundError("User not found")
	}
	return user, nil
}

// ResetPassword exchanges valid recovery credentials for a new password and
// rotates the credentials so the used pair cannot be replayed.
func (service *AuthService) ResetPassword(input ResetPasswordInput) (RegisterResult, error) {
	if strings.TrimSpace(input.RecoveryUUID) == "" || input.RecoverySecret == "" || input.NewPassword == "" {
		return RegisterResult{}, NewValidationError("Recovery UUID, recovery secret, and new password are required")
	}
	if len(input.NewPassword) < minPasswordLength {
		return RegisterResult{}, NewValidationError("Password must be at least 6 characters")
	}

	user, found, err := service.users.FindByRecoveryUUID(strings.TrimSpace(input.RecoveryUUID))
	if err != nil {
		return RegisterResult{}, err
	}
	if !found || user.RecoverySecretHash == nil {
		return RegisterResult{}, NewAuthError("Invalid recovery credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.RecoverySecretHash), []byte(input.RecoverySecret)) != nil {
		return RegisterResult{}, NewAuthError("Invalid recovery credentials")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, err
	}
	recovery, err := security.GenerateRecoveryCredentials()
	if err != nil {
		return RegisterResult{}, err
	}

	err = service.users.UpdateByID(user.ID, map[string]any{
		"password_hash":        string(passwordHash),
		"recovery_uuid":        recovery.UUID,
		"recovery_secret_hash": recovery.SecretHash,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	return RegisterResult{
		User:           user,
		RecoveryUUID:   recovery.UUID,
		RecoverySecret: recovery.Secret,
	}, nil
}

// SetupTOTP stores a fresh secret for the user and returns the enrollment
// material. The secret stays inactive until VerifyTOTP confirms a code.
func (service *AuthService) SetupTOTP(userID uint) (TOTPSetup, error) {
	user, err := service.Me(userID)
	if err != nil {
		return TOTPSetup{}, err
	}
	if user.TOTPEnabled {
		return TOTPSetup{}, NewValidationError("Two-factor authentication is already enabled")
	}

	key, err := security.GenerateTOTPKey(service.totpIssuer, user.Username)
	if err != nil {
		return TOTPSetup{}, err
	}
	qrCode, err := security.TOTPKeyDataURI(key)
	if err != nil {
		return TOTPSetup{}, err
	}

	secret := key.Secret()
	if err := service.users.UpdateByID(user.ID, map[string]any{"totp_secret": secret}); err != nil {
		return TOTPSetup{}, err
	}

	return TOTPSetup{
		Secret:     secret,
		OTPAuthURL: key.URL(),
		QRCode:     qrCode,
	}, nil
}

// VerifyTOTP confirms a code against the pending secret, enables two-factor
// auth, and returns the one-time backup codes.
func (service *AuthService) VerifyTOTP(userID uint, code string) ([]string, error) {
	user, err := service.Me(userID)
	if err != nil {
		return nil, err
	}
	if user.TOTPSecret == nil || *user.TOTPSecret == "" {
		return nil, NewValidationError("Two-factor authentication setup has not been started")
	}
	if !security.ValidateTOTP(*user.TOTPSecret, strings.TrimSpace(code)) {
		return nil, NewValidationError("Invalid verification code")
	}

	backupCodes, err := security.GenerateBackupCodes(10)
	if err != nil {
		return nil, err
	}
	packedHashes, err := security.HashBackupCodes(backupCodes)
	if err != nil {
		return nil, err
	}

	err = service.users.UpdateByID(user.ID, map[string]any{
		"totp_enabled":      true,
		"totp_backup_codes": packedHashes,
	})
	if err != nil {
		return nil, err
	}
	return backupCodes, nil
}

// checkSecondFactor accepts either a current TOTP code or an unused backup
// code. A matched backup code is removed from the stored set.
func (service *AuthService) checkSecondFactor(user *models.User, code string) error {
	if user.TOTPSecret != nil && security.ValidateTOTP(*user.TOTPSecret, code) {
		return nil
	}
	if user.TOTPBackupCodes != nil {
		remaining, matched := security.ConsumeBackupCode(*user.TOTPBackupCodes, code)
		if matched {
			return service.users.UpdateByID(user.ID, map[string]any{"totp_backup_codes": remaining})
		}
	}
	return NewAuthError("Invalid verification code")
}
