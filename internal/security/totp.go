package security

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

const backupCodeDigits = "0123456789"

// GenerateTOTPKey creates a fresh TOTP key for the given account.
func GenerateTOTPKey(issuer string, accountName string) (*otp.Key, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
	})
	if err != nil {
		return nil, fmt.Errorf("generate totp key: %w", err)
	}
	return key, nil
}

// TOTPKeyDataURI renders the key's otpauth URL as a PNG QR code wrapped in a
// base64 data URI, ready for an <img> tag.
func TOTPKeyDataURI(key *otp.Key) (string, error) {
	image, err := key.Image(256, 256)
	if err != nil {
		return "", fmt.Errorf("render totp qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image); err != nil {
		return "", fmt.Errorf("encode totp qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ValidateTOTP checks a 6-digit code against the stored secret.
func ValidateTOTP(secret string, code string) bool {
	return totp.Validate(code, secret)
}

// GenerateBackupCodes returns count random 8-digit single-use codes.
func GenerateBackupCodes(count int) ([]string, error) {
	codes := make([]string, 0, count)
	for index := 0; index < count; index++ {
		code, err := RandomString(8, backupCodeDigits)
		if err != nil {
			return nil, fmt.Errorf("generate backup code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// HashBackupCodes bcrypt-hashes every code and packs the hashes as JSON text
// for storage. Plain codes are shown to the user exactly once.
func HashBackupCodes(codes []string) (string, error) {
	hashes := make([]string, 0, len(codes))
	for _, code := range codes {
		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash backup code: %w", err)
		}
		hashes = append(hashes, string(hash))
	}

	packed, err := json.Marshal(hashes)
	if err != nil {
		return "", fmt.Errorf("pack backup codes: %w", err)
	}
	return string(packed), nil
}

// ConsumeBackupCode checks code against the stored hash pack. On a match it
// returns the pack with that hash removed so the code cannot be replayed.
func ConsumeBackupCode(packedHashes string, code string) (string, bool) {
	hashes := make([]string, 0)
	if err := json.Unmarshal([]byte(packedHashes), &hashes); err != nil {
		return packedHashes, false
	}

	for index, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			remaining := append(hashes[:index:index], hashes[index+1:]...)
			repacked, err := json.Marshal(remaining)
			if err != nil {
				return packedHashes, false
			}
			return string(repacked), true
		}
	}
	return packedHashes, false
}
