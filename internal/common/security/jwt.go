package security

import (
	"errors"
	"time"

	"auth_api/internal/common"
	"auth_api/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the validated content of an access token.
type Claims struct {
	UserID string
	Email  string
}

// TokenManager issues and validates signed token pairs. The signing key is
// read-only after construction.
type TokenManager struct {
	auth       *jwtauth.JWTAuth
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret []byte, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		auth:       jwtauth.New("HS256", secret, nil),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Auth exposes the underlying verifier for the jwtauth router middleware.
func (m *TokenManager) Auth() *jwtauth.JWTAuth { return m.auth }

// IssueTokenPair mints a short-lived access token and a longer-lived refresh
// token for the user. The email claim rides on the access token only and is
// informational; authorization keys off user_id.
func (m *TokenManager) IssueTokenPair(user *model.User) (*model.TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"type":    TokenTypeAccess,
		"exp":     now.Add(m.accessTTL).Unix(),
		"iat":     now.Unix(),
	}
	_, access, err := m.auth.Encode(accessClaims)
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": user.ID,
		"type":    TokenTypeRefresh,
		"exp":     now.Add(m.refreshTTL).Unix(),
		"iat":     now.Unix(),
	}
	_, refresh, err := m.auth.Encode(refreshClaims)
	if err != nil {
		return nil, err
	}

	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

// ValidateAccessToken checks signature, expiry and the type claim. No store
// lookup happens here; callers re-fetch the user by ID when freshness matters.
func (m *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if typ, _ := token.Get("type"); typ != TokenTypeAccess {
		return nil, common.ErrInvalidToken
	}
	uid, ok := token.Get("user_id")
	userID, isString := uid.(string)
	if !ok || !isString || userID == "" {
		return nil, common.ErrInvalidToken
	}
	email, _ := token.Get("email")
	emailStr, _ := email.(string)
	return &Claims{UserID: userID, Email: emailStr}, nil
}

// ValidateRefreshToken checks signature, expiry and that the token is of the
// refresh type, returning the embedded user ID.
func (m *TokenManager) ValidateRefreshToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(m.auth, tokenString)
	if err != nil {
		return "", common.ErrInvalidToken
	}
	if typ, _ := token.Get("type"); typ != TokenTypeRefresh {
		return "", common.ErrInvalidToken
	}
	uid, ok := token.Get("user_id")
	userID, isString := uid.(string)
	if !ok || !isString || userID == "" {
		return "", common.ErrInvalidToken
	}
	return userID, nil
}

// Helper functions to extract claims, used by the middleware.
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetEmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}

func GetTokenTypeFromClaims(claims jwt.MapClaims) (string, error) {
	typ, ok := claims["type"].(string)
	if !ok {
		return "", errors.New("type claim is missing or not a string")
	}
	return typ, nil
}
