package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionTTL is the nominal lifetime of a session token and its cookie.
const SessionTTL = 24 * time.Hour

// AuthCookieName is the cookie carrying the session token.
const AuthCookieName = "auth_token"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingSub   = errors.New("token does not contain a valid 'sub' claim")
)

// TokenManager signs and verifies HS256 session tokens whose only
// application claim is the user id in "sub".
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager returns a manager for the given secret and lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime given to new tokens.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// GenerateToken creates a signed token for the user id.
func (m *TokenManager) GenerateToken(userID string) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (m *TokenManager) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
}

// ExtractIDFromToken returns the subject of a valid token and its expiry.
func (m *TokenManager) ExtractIDFromToken(tokenString string) (string, time.Time, error) {
	token, err := m.ValidateToken(tokenString)
	if err != nil {
		return "", time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", time.Time{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", time.Time{}, ErrMissingSub
	}

	var exp time.Time
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0)
	}
	return sub, exp, nil
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
