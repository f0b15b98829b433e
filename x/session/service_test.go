package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/campsite/core"
)

const testSecret = "unittest-secret"

func setupService(t *testing.T) (core.SessionService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := NewRepository(rdb)
	return NewService(repo, core.Config{SessionSecret: testSecret}), mr
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	s, _ := setupService(t)

	token, err := Sign(testSecret, core.SessionClaims{
		Subject:   "user-1",
		Role:      "admin",
		JTI:       "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)

	claims, err := s.Verify(ctx, token)
	if assert.NoError(t, err) {
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "jti-1", claims.JTI)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	s, _ := setupService(t)

	token, err := Sign("another-secret", core.SessionClaims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)

	_, err = s.Verify(ctx, token)
	assert.True(t, errors.Is(err, core.ErrorUnauthorized{}))
}

func TestVerifyRejectsExpired(t *testing.T) {
	ctx := context.Background()
	s, _ := setupService(t)

	token, err := Sign(testSecret, core.SessionClaims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.NoError(t, err)

	_, err = s.Verify(ctx, token)
	assert.Error(t, err)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	s, mr := setupService(t)

	exp := time.Now().Add(time.Hour)
	token, err := Sign(testSecret, core.SessionClaims{
		Subject:   "user-1",
		JTI:       "jti-revoke",
		ExpiresAt: exp,
	})
	assert.NoError(t, err)

	_, err = s.Verify(ctx, token)
	assert.NoError(t, err)

	err = s.Revoke(ctx, "jti-revoke", exp)
	assert.NoError(t, err)
	assert.True(t, mr.Exists(revokedPrefix+"jti-revoke"))

	_, err = s.Verify(ctx, token)
	assert.True(t, errors.Is(err, core.ErrorUnauthorized{}))

	// the revocation disappears together with the token
	mr.FastForward(2 * time.Hour)
	assert.False(t, mr.Exists(revokedPrefix+"jti-revoke"))
}
