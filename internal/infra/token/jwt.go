package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTGenerator issues and verifies HS256 tokens whose subject is the
// authenticated user's email.
type JWTGenerator struct {
	signingKey []byte
	issuer     string
	expiry     time.Duration
}

func NewJWTGenerator(signingKey, issuer string, expiry time.Duration) *JWTGenerator {
	return &JWTGenerator{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		expiry:     expiry,
	}
}

func (g *JWTGenerator) Generate(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    g.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.expiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.signingKey)
}

// Validate returns the token subject and ok=true when signature, issuer and
// expiry all check out. Any verification failure yields ok=false; it is a
// normal unauthenticated outcome, never an error.
func (g *JWTGenerator) Validate(raw string) (string, bool) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return g.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", false
	}

	return claims.Subject, true
}
