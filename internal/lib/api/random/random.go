package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

var ErrInvalidSize = errors.New("size must be positive")

// NewRandomString generates a cryptographically secure random alphanumeric string of the specified size.
func NewRandomString(size int) (string, error) {
	const op = "lib.api.random.NewRandomString"

	if size <= 0 {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidSize)
	}

	n := big.NewInt(int64(len(alphabet)))

	b := make([]byte, size)
	for i := range b {
		num, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		b[i] = alphabet[num.Int64()]
	}

	return string(b), nil
}
