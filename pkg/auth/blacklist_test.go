package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pricewatch/pricewatch/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	return client, mr
}

func TestTokenBlacklist_AddAndCheck(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "revoked.jwt.token"

	err := blacklist.Add(ctx, token, time.Hour)
	assert.NoError(t, err)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted)

	// An unknown token stays valid.
	isBlacklisted, err = blacklist.IsBlacklisted(ctx, "still.valid.token")
	assert.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestTokenBlacklist_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "expiring.jwt.token"

	err := blacklist.Add(ctx, token, time.Second)
	assert.NoError(t, err)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted)

	// The entry drops out on its own once the token itself has expired.
	mr.FastForward(2 * time.Second)

	isBlacklisted, err = blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestTokenBlacklist_HashToken(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)

	hash1 := blacklist.hashToken("some.jwt.token")
	hash2 := blacklist.hashToken("some.jwt.token")
	other := blacklist.hashToken("other.jwt.token")

	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, other)
	assert.Len(t, hash1, 64, "SHA256 hash should be 64 hex characters")
}
