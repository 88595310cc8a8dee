package model

import (
	"errors"
	"time"
)

var errInvalidFingerprint = errors.New("invalid fingerprint for refresh token provided")
var errRefreshTokenExpired = errors.New("refresh token already expired")

// RefreshToken is refresh token model entity
type RefreshToken struct {
	ID          string
	UserID      string
	Fingerprint string
	ExpiresIn   int
	CreatedAt   time.Time
}

// Verify checks that token belongs to the same client and is not expired yet
func (r *RefreshToken) Verify(fingerprint string, now time.Time) error {
	if r.Fingerprint != fingerprint {
		return errInvalidFingerprint
	}

	if r.CreatedAt.Add(time.Duration(r.ExpiresIn) * time.Second).Before(now) {
		return errRefreshTokenExpired
	}
	return nil
}
