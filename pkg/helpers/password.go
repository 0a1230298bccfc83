package helpers

import "golang.org/x/crypto/bcrypt"

// maxPasswordBytes is the most bcrypt reads from a password; the rest is ignored.
const maxPasswordBytes = 72

// HashPassword hashes the plain text password using bcrypt at the given cost
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(truncate(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
