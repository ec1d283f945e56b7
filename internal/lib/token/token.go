// Package token issues and parses the session JWTs handed out as cookies.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes access tokens from refresh tokens so one can never be
// replayed as the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongKind    = errors.New("token kind mismatch")
)

type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

type Issuer struct {
	secret            []byte
	accessExpiration  time.Duration
	refreshExpiration time.Duration
	now               func() time.Time
}

func NewIssuer(secret string, accessExpiration, refreshExpiration time.Duration) *Issuer {
	return &Issuer{
		secret:            []byte(secret),
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
		now:               time.Now,
	}
}

func (i *Issuer) AccessExpiration() time.Duration {
	return i.accessExpiration
}

func (i *Issuer) RefreshExpiration() time.Duration {
	return i.refreshExpiration
}

func (i *Issuer) GenerateAccessToken(userID int64) (string, error) {
	return i.generate(userID, KindAccess, i.accessExpiration)
}

func (i *Issuer) GenerateRefreshToken(userID int64) (string, error) {
	return i.generate(userID, KindRefresh, i.refreshExpiration)
}

func (i *Issuer) generate(userID int64, kind Kind, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			// jti keeps two tokens issued in the same second distinct.
			ID: strconv.FormatInt(now.UnixNano(), 36),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Parse validates signature, expiry and kind, and returns the user id.
func (i *Issuer) Parse(tokenString string, kind Kind) (int64, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Kind != kind {
		return 0, ErrWrongKind
	}

	userID, err := claims.UserID()
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}
	return userID, nil
}
