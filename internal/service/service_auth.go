package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
)

type authService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration
	now           func() time.Time

	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(cfg *config.StubConfig, validator validators.Validator, logger *logger.Logger) (AuthService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyNotSpecified
	}

	return &authService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		validator:     validator,
		logger:        logger,
	}, nil
}

// SignIn trusts any well-formed external credential: the stub stands in for
// the identity provider as well.
func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return "", err
	}

	token, err := utils.GenerateIdentityToken(a.issuer, normalizeEmail(creds.Email), a.tokenDuration, a.signKey, a.now())
	if err != nil {
		return "", fmt.Errorf("issue credential: %w", err)
	}

	logger.FromContext(ctx).Info().Str("email", creds.Email).Msg("credential issued")
	return token, nil
}

func (a *authService) Verify(ctx context.Context, email, token string) (models.IdentityClaims, error) {
	claims, err := utils.ValidateIdentityToken(token, a.signKey, a.issuer, false)
	if errors.Is(err, utils.ErrTokenExpired) {
		return models.IdentityClaims{}, ErrTokenExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("credential rejected")
		return models.IdentityClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Email != normalizeEmail(email) {
		return models.IdentityClaims{}, fmt.Errorf("%w: credential belongs to another user", ErrInvalidToken)
	}

	return claims, nil
}

func (a *authService) Refresh(ctx context.Context, email, token string) (string, error) {
	claims, err := utils.ValidateIdentityToken(token, a.signKey, a.issuer, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Email != normalizeEmail(email) {
		return "", fmt.Errorf("%w: credential belongs to another user", ErrInvalidToken)
	}

	fresh, err := utils.GenerateIdentityToken(a.issuer, claims.Email, a.tokenDuration, a.signKey, a.now())
	if err != nil {
		return "", fmt.Errorf("issue credential: %w", err)
	}

	logger.FromContext(ctx).Info().Str("email", claims.Email).Msg("credential refreshed")
	return fresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
