package middleware

import (
	"context"
	"net/http"

	"auth_api/internal/common"
	"auth_api/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey    contextKey = "userID"
	UserEmailCtxKey contextKey = "userEmail"
)

// Authenticator runs after jwtauth.Verifier and rejects requests whose token
// is missing, invalid, expired, or not an access token. On success the user
// ID and email claims are stored in the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header

		if err != nil || token == nil {
			common.RespondWithDomainError(w, common.ErrInvalidToken)
			return
		}

		tokenType, err := security.GetTokenTypeFromClaims(claims)
		if err != nil || tokenType != security.TokenTypeAccess {
			// Refresh tokens never authorize requests.
			common.RespondWithDomainError(w, common.ErrInvalidToken)
			return
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			common.RespondWithDomainError(w, common.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, UserEmailCtxKey, security.GetEmailFromClaims(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get the informational email claim from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
