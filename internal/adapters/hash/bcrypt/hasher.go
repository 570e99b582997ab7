package bcrypt

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/kxng0109/taskflow/internal/core/ports"
)

// Hasher wraps bcrypt. Each call to Hash salts independently, and Compare is
// constant-time with respect to where a mismatch occurs.
type Hasher struct {
	cost int
}

func NewHasher() ports.PasswordHasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *Hasher) Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
