package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload. The email is the only identity claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed bearer token and its absolute expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenCodec issues and verifies HS256 bearer tokens. It holds no mutable state
// and is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec builds a codec signing with secret; tokens live for ttl.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the codec reading the current time from now.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	cp := *c
	cp.now = now
	return &cp
}

// TTL reports the lifetime given to issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token carrying email that expires ttl from now.
func (c *TokenCodec) Issue(email string) (Token, error) {
	now := c.now()
	exp := jwt.NewNumericDate(now.Add(c.ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: exp,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ExpiresAt: exp.Time}, nil
}

// Verify checks the signature and expiry of tokenString and returns the embedded
// email unchanged. The signature is checked before expiry, so a forged token is
// always ErrInvalidToken even when its exp has passed.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
