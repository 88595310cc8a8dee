package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenVerify(t *testing.T) {
	now := time.Now().UTC()
	fingerprint := "87c37298-2f3d-40a1-9438-f45d2d819206"

	token := &RefreshToken{
		ID:          "1165dfc0-2dd0-4bea-ac69-4462f1cacacf",
		UserID:      "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		Fingerprint: fingerprint,
		ExpiresIn:   3600,
		CreatedAt:   now,
	}

	t.Log("valid fingerprint within lifetime")
	{
		err := token.Verify(fingerprint, now.Add(time.Minute))
		assert.NoError(t, err, "token is valid but error was raised")
	}

	t.Log("foreign fingerprint")
	{
		err := token.Verify("461b07b5-3373-495d-b26b-d689a0c8a557", now)
		assert.Error(t, err, "fingerprint differs but no error raised")
	}

	t.Log("expired token")
	{
		err := token.Verify(fingerprint, now.Add(2*time.Hour))
		assert.Error(t, err, "token already expired but no error raised")
	}
}
