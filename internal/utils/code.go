package utils

import (
	"crypto/rand"
	"math/big"
)

// NewConfirmationCode returns a 4-digit verification code in the
// inclusive range [1000,9999], generated from crypto/rand so codes are
// not guessable from previous ones.
func NewConfirmationCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return 0, err
	}
	return 1000 + int(n.Int64()), nil
}
