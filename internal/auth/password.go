package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain text password. The cost factor controls the
// embedded salt rounds.
func HashPassword(pw string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

// CheckPassword compares a hashed password with the plain text password.
func CheckPassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
