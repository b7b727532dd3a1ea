package auth

import "golang.org/x/crypto/bcrypt"

// HashPin hashes a plaintext PIN with the configured bcrypt cost.
func HashPin(pin string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePin verifies a presented PIN against its stored hash using bcrypt's
// own constant-time comparison. Never compare PINs as plain strings.
func ComparePin(hashed, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pin))
}
