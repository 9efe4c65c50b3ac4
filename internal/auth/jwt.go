// Package auth issues and verifies the bearer tokens that identify
// admins, users, vendors and sales executives on API requests.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"cityinbox_backend/internal/models"
	"cityinbox_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated actor carried through a request.
type Principal struct {
	ID        uint
	Role      models.ActorRole
	AdminRole models.AdminRole // set only when Role is admin
	Section   string           // allotted section for sub admins
}

// Claims is the JWT payload.
type Claims struct {
	Role      models.ActorRole `json:"role"`
	AdminRole models.AdminRole `json:"admin_role,omitempty"`
	Section   string           `json:"section,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "cityinbox",
	}
}

// Issue creates a signed token for the principal.
func (m *TokenManager) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:      p.Role,
		AdminRole: p.AdminRole,
		Section:   p.Section,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.ID), 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and expiry and returns the principal.
func (m *TokenManager) Parse(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return &Principal{
		ID:        uint(id),
		Role:      claims.Role,
		AdminRole: claims.AdminRole,
		Section:   claims.Section,
	}, nil
}
