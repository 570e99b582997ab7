package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

// Provider issues and verifies HS256-signed bearer tokens. The signing secret
// and expiry are fixed at construction; there is no rotation path.
type Provider struct {
	secret []byte
	expiry time.Duration
	log    *logrus.Logger
}

func NewProvider(secret []byte, expiry time.Duration, log *logrus.Logger) ports.TokenService {
	return &Provider{
		secret: secret,
		expiry: expiry,
		log:    log,
	}
}

func (p *Provider) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify decodes the token, checks the signature against the configured
// secret and rejects anything malformed, expired (the expiry instant itself
// counts as expired), signed with another key, or signed with another
// algorithm. On success it returns the subject unchanged.
func (p *Provider) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, p.keyFunc,
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		kindErr := p.classify(err)
		p.log.WithError(err).WithField("kind", kindErr.Error()).Warn("token verification failed")
		return "", kindErr
	}

	return claims.Subject, nil
}

func (p *Provider) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, domain.ErrTokenUnsupported
	}
	return p.secret, nil
}

// classify maps golang-jwt parse failures onto the domain token error kinds so
// callers can log and count them separately. Every kind still results in the
// same external rejection.
func (p *Provider) classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrTokenUnsupported):
		return domain.ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenUnsupported
	}
}
