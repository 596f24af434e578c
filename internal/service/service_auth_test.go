package service

import (
	"context"
	"testing"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/utils"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "stub-sign-key"
	testIssuer  = "bathroompass-stub"
)

func newTestAuthService(t *testing.T) *authService {
	t.Helper()
	svc, err := NewAuthService(&config.StubConfig{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}, validators.NewRequestValidator(), logger.Nop())
	require.NoError(t, err)
	return svc.(*authService)
}

func TestNewAuthService_NoSignKey(t *testing.T) {
	_, err := NewAuthService(&config.StubConfig{TokenIssuer: testIssuer}, validators.NewRequestValidator(), logger.Nop())
	assert.ErrorIs(t, err, ErrTokenSignKeyNotSpecified)
}

func TestAuthService_SignInAndVerify(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.SignIn(ctx, models.Credentials{Email: "Teacher@School.example", Credential: "g"})
	require.NoError(t, err)

	claims, err := svc.Verify(ctx, "teacher@school.example", token)
	require.NoError(t, err)
	assert.Equal(t, "teacher@school.example", claims.Email)

	_, err = svc.Verify(ctx, "someone@else.example", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_SignIn_Invalid(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.SignIn(context.Background(), models.Credentials{Email: "teacher@school.example"})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}

func TestAuthService_Verify(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	email := "teacher@school.example"

	expired, err := utils.GenerateIdentityToken(testIssuer, email, time.Minute, testSignKey, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	foreign, err := utils.GenerateIdentityToken(testIssuer, email, time.Hour, "other-key", time.Now())
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateIdentityToken("elsewhere", email, time.Hour, testSignKey, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong key", token: foreign, wantErr: ErrInvalidToken},
		{name: "wrong issuer", token: otherIssuer, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "empty", token: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(ctx, email, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()
	email := "teacher@school.example"

	expired, err := utils.GenerateIdentityToken(testIssuer, email, time.Minute, testSignKey, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, email, expired)
	require.NoError(t, err)
	assert.NotEqual(t, expired, fresh)

	_, err = svc.Verify(ctx, email, fresh)
	assert.NoError(t, err)

	again, err := svc.Refresh(ctx, email, fresh)
	require.NoError(t, err)
	assert.NotEqual(t, fresh, again, "re-issued credentials differ even within one second")
}

func TestAuthService_Refresh_Rejects(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	foreign, err := utils.GenerateIdentityToken(testIssuer, "a@b.example", time.Hour, "other-key", time.Now())
	require.NoError(t, err)
	own, err := utils.GenerateIdentityToken(testIssuer, "a@b.example", time.Hour, testSignKey, time.Now())
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, "a@b.example", foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(ctx, "c@d.example", own)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
