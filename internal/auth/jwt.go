package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed lifetime of an issued token. Tokens are stateless
// and cannot be revoked before they expire; logout is the client discarding
// its token, not a server-side invalidation.
const tokenTTL = 24 * time.Hour

var (
	// ErrMissingToken signals that the request carried no bearer credential.
	ErrMissingToken = errors.New("missing auth token")
	// ErrInvalidToken signals a tampered, malformed or expired token.
	ErrInvalidToken = errors.New("invalid auth token")
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type contextKey string

// userIDKey is the context key for the authenticated user ID.
const userIDKey = contextKey("userID")

// Service issues and verifies signed bearer tokens. The signing key is
// process-wide configuration, injected once at construction.
type Service struct {
	key []byte
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{key: []byte(secret)}
}

// Issue creates a new signed token embedding the user ID, valid for 24 hours.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify parses and validates a token string and returns the embedded user
// ID. Any tampering or expiry yields ErrInvalidToken, never a partial
// identity.
func (s *Service) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// Authenticate extracts the bearer credential from the Authorization header
// and verifies it. A missing header and a rejected token are distinct
// failures, but callers must treat both as unauthorized.
func (s *Service) Authenticate(header http.Header) (string, error) {
	authHeader := header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenStr == "" {
		return "", ErrMissingToken
	}
	return s.Verify(tokenStr)
}

// Middleware protects routes: it authenticates the request and passes the
// verified user ID down via context, or stops the pipeline with 401.
func (s *Service) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := s.Authenticate(r.Header)
			if err != nil {
				if errors.Is(err, ErrMissingToken) {
					http.Error(w, "Missing auth token", http.StatusUnauthorized)
				} else {
					http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user ID injected by Middleware.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
