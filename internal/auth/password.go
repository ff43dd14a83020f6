package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash with a per-hash random salt. Equal
// passwords produce different hashes, so comparison goes through
// CheckPassword rather than string equality.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
