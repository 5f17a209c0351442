package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies user credentials with bcrypt.
// The produced hash is self-describing (algorithm, cost and salt are part
// of the encoded string), so verification needs no extra parameters.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash hashes the plain text password using bcrypt.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares a stored bcrypt hash with a plain password.
// A malformed hash simply fails verification.
func (h *PasswordHasher) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
