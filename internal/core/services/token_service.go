package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/platform/config"
	"github.com/CondoSphere/condo_management_app/internal/utils"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new refresh token for the given user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	// 32 random bytes give a 64-character hex string.
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	return rawRefreshToken, expiryTime, nil
}

// ValidateAndParseRefreshToken validates a refresh token string and returns the associated user.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	storedHash, expiryTime, err := s.userService.GetRefreshTokenDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve refresh token details: %w", err)
	}

	if storedHash == "" {
		return nil, apperrors.ErrUnauthorized // No refresh token to validate against
	}
	if time.Now().After(expiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshTokenString, storedHash) {
		return nil, apperrors.ErrUnauthorized // Token mismatch
	}

	return user, nil
}

// --- GoogleSignInSvcFacade implementation ---

// googleSignInService verifies Google ID tokens and provisions users on first sign-in.
type googleSignInService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewGoogleSignInService creates a new instance of googleSignInService.
func NewGoogleSignInService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.GoogleSignInSvcFacade {
	return &googleSignInService{
		cfg:         cfg,
		userService: userService,
	}
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleSignInService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		// This should ideally be caught at startup, but as a safeguard:
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	return payload, nil
}

// SignInWithGoogle validates the ID token and returns the matching user,
// creating one keyed on the verified email at first sign-in.
func (s *googleSignInService) SignInWithGoogle(ctx context.Context, idTokenString string) (*domain.User, error) {
	payload, err := s.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.NewValidationFailedError("google token carries no email claim")
	}

	user, err := s.userService.GetUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	// First sign-in: provision the account with an unguessable password.
	randomPassword, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password for google user: %w", err)
	}

	created, err := s.userService.CreateUser(ctx, dto.CreateUserRequest{
		Username: email,
		Password: randomPassword,
		Name:     name,
		Email:    email,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User provisioned via google sign-in")
	return created, nil
}
