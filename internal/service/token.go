package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/model"
)

// TokenService issues session token pairs and reissues access tokens from
// refresh tokens kept in Redis.
type TokenService struct {
	issuer        *token.Issuer
	refreshTokens RefreshTokenRepository
}

func NewTokenService(issuer *token.Issuer, refreshTokens RefreshTokenRepository) *TokenService {
	return &TokenService{
		issuer:        issuer,
		refreshTokens: refreshTokens,
	}
}

// IssueTokens signs a fresh pair and stores the refresh token for the
// lifetime of its cookie.
func (s *TokenService) IssueTokens(ctx context.Context, userID int64) (*dto.TokenPair, error) {
	accessToken, err := s.issuer.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issuer.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	err = s.refreshTokens.Save(ctx, model.RefreshToken{Token: refreshToken, UserID: userID}, s.issuer.RefreshExpiration())
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *TokenService) ReissueAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errs.New(errs.TokenInvalidRefresh)
	}

	userID, err := s.issuer.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		return "", errs.New(errs.TokenInvalidRefresh)
	}

	stored, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errs.New(errs.TokenRefreshNotFound)
		}
		return "", err
	}
	if stored.UserID != userID {
		return "", errs.New(errs.TokenInvalidRefresh)
	}

	accessToken, err := s.issuer.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to reissue access token: %w", err)
	}
	return accessToken, nil
}

// RevokeRefreshToken forgets the token. Empty tokens are ignored.
func (s *TokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.refreshTokens.Delete(ctx, refreshToken)
}
