// Package auth implements the clinic's shared-PIN session gate. A correct
// PIN yields a short-lived JWT; logout revokes the token's jti. The
// persistence layer has no dependency on this package.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	// ErrInvalidPIN is returned when the supplied PIN does not match.
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrInvalidToken is returned for missing, malformed, expired, or
	// revoked session tokens.
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager issues and validates session tokens against the configured PIN.
type Manager struct {
	pin     []byte
	secret  []byte
	ttl     time.Duration
	revoked *RevocationStore
}

// NewManager creates a session manager. ttl bounds how long a login lasts.
func NewManager(pin, secret string, ttl time.Duration) *Manager {
	return &Manager{
		pin:     []byte(pin),
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: NewRevocationStore(),
	}
}

// Close stops the revocation store's cleanup loop.
func (m *Manager) Close() { m.revoked.Close() }

// Login exchanges the clinic PIN for a signed session token.
func (m *Manager) Login(pin string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(pin), m.pin) != 1 {
		return "", time.Time{}, ErrInvalidPIN
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   "clinic",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses and validates a session token, rejecting revoked ones.
func (m *Manager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if m.revoked.IsRevoked(claims.ID) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Logout invalidates the given session token. Already-invalid tokens are
// not an error; logout is idempotent.
func (m *Manager) Logout(token string) {
	claims, err := m.Verify(token)
	if err != nil {
		return
	}
	m.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
}

// Middleware requires a valid Bearer session token on every request.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}
			if _, err := m.Verify(token); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
