package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-signing-key", "pbmledger")

	t.Run("participant token", func(t *testing.T) {
		signed, err := svc.GenerateAccessToken("bank-dbs", false, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, id.Identity("bank-dbs"), claims.Caller)
		assert.False(t, claims.Owner)
	})

	t.Run("owner token", func(t *testing.T) {
		signed, err := svc.GenerateAccessToken("pbm-owner", true, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(signed)
		require.NoError(t, err)
		assert.True(t, claims.Owner)
	})
}

func TestValidateToken(t *testing.T) {
	svc := NewService("test-signing-key", "pbmledger")

	t.Run("expired token", func(t *testing.T) {
		signed, err := svc.GenerateAccessToken("bank-dbs", false, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewService("other-key", "pbmledger")
		signed, err := other.GenerateAccessToken("bank-dbs", false, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("token without identity", func(t *testing.T) {
		signed, err := svc.GenerateAccessToken("", false, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
