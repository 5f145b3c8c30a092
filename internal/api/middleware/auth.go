package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common/security"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	UserUUIDCtxKey  contextKey = "userUUID"
	UserEmailCtxKey contextKey = "userEmail"
)

const (
	MsgMissingAuthHeader = "Missing or invalid Authorization header"
	MsgInvalidToken      = "Invalid or expired token"

	bearerPrefix = "Bearer "
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*security.Claims, error)
}

// BearerToken returns the second space-separated field of an
// "Authorization: Bearer ..." header. ok is false when the header is absent or
// does not start with "Bearer ". The token is not trimmed, so "Bearer  abc"
// yields "" and fails verification.
func BearerToken(r *http.Request) (token string, ok bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.Split(header, " ")[1], true
}

// Authenticator rejects requests without a valid bearer token and otherwise
// stores the caller's uuid and email in the request context. It does not look
// at resource ownership.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				common.RespondWithError(w, http.StatusUnauthorized, MsgMissingAuthHeader)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				zerolog.Ctx(r.Context()).Debug().Err(err).Msg("bearer token rejected")
				common.RespondWithError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), UserUUIDCtxKey, claims.UUID)
			ctx = context.WithValue(ctx, UserEmailCtxKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper to get user uuid from context
func GetUserUUIDFromContext(ctx context.Context) (string, bool) {
	userUUID, ok := ctx.Value(UserUUIDCtxKey).(string)
	return userUUID, ok && userUUID != ""
}

// Helper to get user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}
