package http

import (
	"context"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// ContextWithClaims returns a context carrying the validated token claims.
// Only the auth middleware writes this key.
func ContextWithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetUserIDFromContext extracts the authenticated user id from the request
// context. It fails with ErrUnauthorized when the request never passed the
// auth middleware.
func GetUserIDFromContext(ctx context.Context) (int32, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return 0, domain.ErrUnauthorized
	}
	return claims.UserID, nil
}
