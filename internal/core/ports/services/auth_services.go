package services

import (
	"context"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken validates a refresh token string against a user's stored token details.
	// It returns the user if the token is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleSignInSvcFacade defines the interface for Google ID token sign-in.
type GoogleSignInSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)

	// SignInWithGoogle validates an ID token and returns the matching user,
	// creating one on first sign-in.
	SignInWithGoogle(ctx context.Context, idTokenString string) (*domain.User, error)
}
