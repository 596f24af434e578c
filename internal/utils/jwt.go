package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jander15/BathroomPass-sub000/models"
)

// ErrTokenExpired is returned by ValidateIdentityToken for a correctly
// signed credential whose exp claim has passed.
var ErrTokenExpired = errors.New("token expired")

// GenerateIdentityToken creates a signed HMAC-SHA256 credential for email.
//
// The token carries:
//   - Issuer    (iss): identifies the issuing backend
//   - Subject   (sub): the email address
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - ID        (jti): a fresh trace-style UUID, so re-issued tokens always differ
//   - email:           the email address
//
// All parameters are required.
func GenerateIdentityToken(issuer, email string, tokenDuration time.Duration, signKey string, now time.Time) (string, error) {
	email = strings.TrimSpace(email)
	if issuer == "" || email == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating identity token")
	}

	claims := models.IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        NewTraceID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return signed, nil
}

// ValidateIdentityToken verifies the signature and issuer of tokenString and
// returns its claims.
//
// When allowExpired is false an expired token yields ErrTokenExpired. When it
// is true the expiry is not checked; the refresh action uses this to accept a
// credential that is stale but genuine.
func ValidateIdentityToken(tokenString, signKey, issuer string, allowExpired bool) (models.IdentityClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var claims models.IdentityClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.IdentityClaims{}, ErrTokenExpired
	}
	if err != nil {
		return models.IdentityClaims{}, fmt.Errorf("error occurred validating identity token: %w", err)
	}

	if allowExpired && claims.Issuer != issuer {
		return models.IdentityClaims{}, errors.New("unexpected token issuer")
	}
	if claims.Email == "" {
		return models.IdentityClaims{}, errors.New("empty email claim")
	}

	return claims, nil
}

// PeekIdentityClaims decodes the claims of a JWT credential without
// verifying it. The client uses it for display only (who is signed in, when
// the credential lapses); it never grants anything.
func PeekIdentityClaims(tokenString string) (models.IdentityClaims, error) {
	var claims models.IdentityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.IdentityClaims{}, fmt.Errorf("credential is not a JWT: %w", err)
	}
	return claims, nil
}
