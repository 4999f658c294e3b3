package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var ErrEmptyCharset = errors.New("charset must not be empty")

// RandomString returns a cryptographically secure string of length characters
// drawn uniformly from charset. rand.Int keeps the draw unbiased regardless
// of the charset size.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(charset) == 0 {
		return "", ErrEmptyCharset
	}

	max := big.NewInt(int64(len(charset)))
	buf := make([]byte, length)
	for index := range buf {
		pick, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[index] = charset[pick.Int64()]
	}
	return string(buf), nil
}
