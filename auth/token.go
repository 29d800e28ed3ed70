package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajnish018/portfolio-admin-backend/errs"
)

// RoleAdmin is the only role this deployment issues.
const RoleAdmin = "admin"

// DefaultTokenTTL is the token lifetime used when no expiry is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the token payload: the administrator identity plus a fixed role
// claim on top of the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IssueToken signs an HS256 token embedding the identity and the admin role.
func IssueToken(email string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errs.ErrConfiguration
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email: email,
		Role:  RoleAdmin,
	})

	return token.SignedString(secret)
}

// VerifyToken parses and validates a token string. It returns
// errs.ErrExpiredToken for expired tokens and errs.ErrInvalidToken for any
// other verification failure, so callers can map them to 401 responses.
// Verification is stateless; the persistence layer is never consulted.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errs.ErrConfiguration
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrExpiredToken
		}
		return nil, errs.ErrInvalidToken
	}

	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	return claims, nil
}
