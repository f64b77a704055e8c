package service

import "golang.org/x/crypto/bcrypt"

// hashPassword is the single hashing path for stored credentials. Both
// registration and password rotation go through it, so a credential is never
// persisted in plaintext.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword compares a candidate against a stored hash in constant time.
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
