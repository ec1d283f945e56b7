package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/corecord/corecord-backend/internal/model"
)

const refreshTokenPrefix = "refresh_token:"

// RefreshTokenRepository stores refresh tokens as "refresh_token:<token>"
// keys holding the owning user id. Missing tokens surface as redis.Nil.
type RefreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) *RefreshTokenRepository {
	return &RefreshTokenRepository{client: client}
}

func refreshTokenKey(token string) string {
	return refreshTokenPrefix + token
}

// Save overwrites any previous entry for the same token.
func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken, ttl time.Duration) error {
	if err := r.client.Set(ctx, refreshTokenKey(token.Token), token.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (*model.RefreshToken, error) {
	value, err := r.client.Get(ctx, refreshTokenKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed refresh token entry: %w", err)
	}
	return &model.RefreshToken{Token: token, UserID: userID}, nil
}

// Delete is a no-op for unknown tokens.
func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, refreshTokenKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
