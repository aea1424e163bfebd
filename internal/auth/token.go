// Package auth issues and verifies the device access token. The app is
// single-user per device: login checks a configured passphrase hash and
// hands out a short-lived HS256 token that gates every mutating route.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DeviceSubject is the fixed subject claim of every issued token. There is
// exactly one principal: the device owner.
const DeviceSubject = "device"

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT; Exp its UTC expiration time.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT for the device owner. The
// token carries the standard subject, expiration and issued-at claims.
func NewAccessToken(secret string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": DeviceSubject,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
