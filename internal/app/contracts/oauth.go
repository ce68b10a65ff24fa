package contracts

import (
	"context"
	"mhr-fhir-client/internal/app/models"
)

type ConsumerOAuthClient interface {
	GetLoginURI() string
	GetToken(ctx context.Context, authorisationCode string) (*models.OAuthResponse, error)
	GetRefreshToken(ctx context.Context, refreshToken string) (*models.OAuthResponse, error)
}

type ProviderOAuthClient interface {
	GetProviderToken(ctx context.Context, userID, userName string) (*models.OAuthResponse, error)
}
