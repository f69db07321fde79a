package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "orgchart-auth"

// Claims are the JWT claims understood by the service.
type Claims struct {
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Actor returns the authenticated caller described by the claims.
func (c *Claims) Actor() Actor {
	return Actor{ID: c.Subject, Role: c.Role, Permissions: c.Permissions}
}

// GenerateToken signs an HS256 token for userID valid for ttl.
func GenerateToken(userID, role string, permissions []string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:        role,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// validateToken checks the token signature and returns parsed claims if valid.
func validateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// Actor is the authenticated caller of a request.
type Actor struct {
	ID          string
	Role        string
	Permissions []string
}

// Has reports whether the actor was granted permission.
func (a Actor) Has(permission string) bool {
	return slices.Contains(a.Permissions, permission)
}
