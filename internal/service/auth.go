package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwks"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"

	"github.com/corecord/corecord-backend/internal/server"
)

// AuthService verifies Clerk session tokens presented on registration and
// login. Clerk is initialized with the secret key from the auth config.
type AuthService struct {
	server     *server.Server
	jwksClient *jwks.Client
	keys       sync.Map
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
		jwksClient: jwks.NewClient(&clerk.ClientConfig{
			BackendConfig: clerk.BackendConfig{
				Key: clerk.String(s.Config.Auth.SecretKey),
			},
		}),
	}
}

// VerifyToken returns the provider id (the token subject) of a valid
// session token.
func (a *AuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	unsafeClaims, err := jwt.Decode(ctx, &jwt.DecodeParams{Token: token})
	if err != nil {
		return "", fmt.Errorf("failed to decode provider token: %w", err)
	}

	jwk, err := a.jsonWebKey(ctx, unsafeClaims.KeyID)
	if err != nil {
		return "", err
	}

	claims, err := jwt.Verify(ctx, &jwt.VerifyParams{
		Token: token,
		JWK:   jwk,
	})
	if err != nil {
		return "", fmt.Errorf("failed to verify provider token: %w", err)
	}

	return claims.Subject, nil
}

func (a *AuthService) jsonWebKey(ctx context.Context, keyID string) (*clerk.JSONWebKey, error) {
	if cached, ok := a.keys.Load(keyID); ok {
		return cached.(*clerk.JSONWebKey), nil
	}

	jwk, err := jwt.GetJSONWebKey(ctx, &jwt.GetJSONWebKeyParams{
		KeyID:      keyID,
		JWKSClient: a.jwksClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch json web key: %w", err)
	}

	a.keys.Store(keyID, jwk)
	return jwk, nil
}

// PrimaryEmail looks up the user's primary e-mail address. An empty string
// means the provider has none on file.
func (a *AuthService) PrimaryEmail(ctx context.Context, providerID string) (string, error) {
	u, err := user.Get(ctx, providerID)
	if err != nil {
		return "", fmt.Errorf("failed to get provider user: %w", err)
	}

	if u.PrimaryEmailAddressID == nil {
		return "", nil
	}
	for _, address := range u.EmailAddresses {
		if address.ID == *u.PrimaryEmailAddressID {
			return address.EmailAddress, nil
		}
	}
	return "", nil
}
