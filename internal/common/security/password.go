package security

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 10

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// dummyHash is compared against when a login names an unknown email, so both
// branches spend one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("todo-challenge-dummy-password"), bcryptCost)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck runs a comparison whose result is discarded.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
