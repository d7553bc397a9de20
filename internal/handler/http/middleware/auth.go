package middleware

import (
	"context"
	"net/http"

	"github.com/awash-hr/job-portal/internal/domain/auth"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
	"github.com/awash-hr/job-portal/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFrom returns the caller set by AuthRequired, or auth.Anonymous.
func IdentityFrom(ctx context.Context) auth.Identity {
	if identity, ok := ctx.Value(identityKey{}).(auth.Identity); ok {
		return identity
	}
	return auth.Anonymous
}

// AuthRequired rejects requests without a verified access token and stores
// the caller's identity in the request context. It expects jwtauth.Verifier
// to have run first.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		accessClaims, err := jwt.ClaimsFromMap(claims)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		identity := auth.Identity{
			AccountID:       accessClaims.AccountID,
			EmployeeID:      accessClaims.EmployeeID,
			IsAuthenticated: true,
			IsStaff:         accessClaims.IsStaff,
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}
