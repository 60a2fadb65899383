package graphql

import (
	"context"
	"net/http"
	"strings"

	"github.com/readshelf/readshelf/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the verified caller attached to a request. It is built once
// per request by the auth-context middleware and read-only afterwards.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// WithIdentity returns a child context carrying the identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the caller identity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok && id != nil
}

// BearerToken pulls the token out of the Authorization header. Both
// "Bearer <token>" and a bare token value are accepted.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(header)
}

// authContext derives the per-request identity context. A missing,
// malformed, expired or tampered token all degrade to "no identity";
// the middleware never rejects a request itself. Operations that need
// authentication fail later, in their resolver.
func (s *Server) authContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithIdentity(r.Context(), &Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
