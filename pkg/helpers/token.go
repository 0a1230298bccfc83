package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// ResetTokenBytes is the entropy of a password reset token (256 bits).
const ResetTokenBytes = 32

// GenResetToken returns a hex-encoded random token of ResetTokenBytes bytes.
func GenResetToken() (string, error) {
	b := make([]byte, ResetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
