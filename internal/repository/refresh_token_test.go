package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/model"
)

func newTestRefreshTokenRepository(t *testing.T) (*RefreshTokenRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRefreshTokenRepository(client), mr
}

func TestRefreshTokenRepository_SaveFindDelete(t *testing.T) {
	repo, mr := newTestRefreshTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.RefreshToken{Token: "abc", UserID: 42}, time.Hour))

	assert.True(t, mr.Exists("refresh_token:abc"))
	assert.Equal(t, time.Hour, mr.TTL("refresh_token:abc"))

	token, err := repo.Find(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Find(ctx, "abc")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRefreshTokenRepository_Expires(t *testing.T) {
	repo, mr := newTestRefreshTokenRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, model.RefreshToken{Token: "short", UserID: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Find(ctx, "short")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRefreshTokenRepository_DeleteUnknownToken(t *testing.T) {
	repo, _ := newTestRefreshTokenRepository(t)

	assert.NoError(t, repo.Delete(context.Background(), "missing"))
}
