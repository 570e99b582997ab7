package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kxng0109/taskflow/internal/core/domain"
	"github.com/kxng0109/taskflow/internal/core/ports"
)

type contextKey string

// userKey carries the authenticated *domain.User for the lifetime of one
// request.
const userKey contextKey = "currentUser"

// CurrentUser returns the identity attached by the Authenticator middleware,
// or nil for public routes.
func CurrentUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// Authenticator gates every request behind bearer-token verification. Paths
// matching the public prefixes pass through with no identity attached; all
// other requests must carry a verifiable token whose subject resolves to an
// existing user. The token failure kind is logged but never leaked: every
// rejection looks the same to the caller.
func Authenticator(tokens ports.TokenService, users ports.UserRepository, publicPrefixes []string, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByEmail(r.Context(), subject)
			if err != nil {
				log.WithError(err).Error("failed to resolve token subject")
				writeError(w, err)
				return
			}
			if user == nil {
				log.WithField("subject", subject).Warn("token subject no longer exists")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "authentication required"})
}
