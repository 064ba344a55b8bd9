package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original accounts were hashed with, so
// existing hashes keep verifying.
const bcryptCost = 10

// dummyHash is compared against when no account matches the email, so login
// latency does not reveal whether an address is registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type TokenService struct {
	Secret   []byte
	TokenTTL time.Duration
}

// SessionClaims is the token payload: the account id plus the registered
// expiry. Nothing else is embedded.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func (t TokenService) HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (t TokenService) VerifyPassword(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}

// VerifyDummy burns a bcrypt comparison without ever succeeding.
func (t TokenService) VerifyDummy(raw string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(raw))
}

func (t TokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.TokenTTL)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

// Verify returns the account id embedded in a valid token. Malformed,
// expired, and badly signed tokens all fail the same way.
func (t TokenService) Verify(tokenStr string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}
