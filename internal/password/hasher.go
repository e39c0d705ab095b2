package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/anhminhnguyen3110/chatbot/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the default bcrypt cost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of password. The salt is generated per call,
// so hashing the same password twice yields different strings.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash. Any mismatch, including a
// malformed hash, verifies as false.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
