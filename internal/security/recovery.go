package security

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	recoverySecretLength  = 32
	recoverySecretCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// RecoveryCredentials is the UUID + secret pair that substitutes for
// email-based password reset. The plain secret is returned to the user once
// at registration; only its bcrypt hash is stored.
type RecoveryCredentials struct {
	UUID       string
	Secret     string
	SecretHash string
}

func GenerateRecoveryCredentials() (RecoveryCredentials, error) {
	secret, err := RandomString(recoverySecretLength, recoverySecretCharset)
	if err != nil {
		return RecoveryCredentials{}, err
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return RecoveryCredentials{}, err
	}

	return RecoveryCredentials{
		UUID:       uuid.NewString(),
		Secret:     secret,
		SecretHash: string(secretHash),
	}, nil
}
