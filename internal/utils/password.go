package utils

import "golang.org/x/crypto/bcrypt"

// HashKey returns the bcrypt hash of an organizer key using the given cost.
// The server only ever stores the hash (ORGANIZER_KEY_HASH).
func HashKey(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyKey safely compares a bcrypt hash and a plain key.
func VerifyKey(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
