package ports

import (
	"context"

	"github.com/kxng0109/taskflow/internal/core/domain"
)

// TokenService issues and verifies stateless bearer tokens. Verify returns
// the subject the token was issued for, or one of the domain token errors
// (ErrTokenMalformed, ErrTokenExpired, ErrTokenSignature, ErrTokenUnsupported).
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
