// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Issuer checks the admin credential pair and mints/verifies admin tokens
type Issuer struct {
	secret   []byte
	username string
	password string
	ttl      time.Duration
	now      func() time.Time
}

func NewIssuer(secret, username, password string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		username: username,
		password: password,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Subject returns the admin identity tokens are issued for
func (i *Issuer) Subject() string {
	return i.username
}

// Login compares the pair against the configured admin identity and
// issues a token on match
func (i *Issuer) Login(username, password string) (string, error) {
	userOK := i.equal(username, i.username)
	passOK := i.equal(password, i.password)
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return i.Issue(username)
}

// Issue mints an HS256 token for subject that expires after the configured TTL
func (i *Issuer) Issue(subject string) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		ID:        uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature, expiry, and subject. It returns ErrTokenExpired
// for an otherwise valid token past its expiry and ErrInvalidToken for
// anything else.
func (i *Issuer) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject != i.username {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// equal compares HMACs of both values so timing does not depend on
// where or whether the inputs differ
func (i *Issuer) equal(got, want string) bool {
	return hmac.Equal(i.mac(got), i.mac(want))
}

func (i *Issuer) mac(v string) []byte {
	h := hmac.New(sha256.New, i.secret)
	h.Write([]byte(v))
	return h.Sum(nil)
}
