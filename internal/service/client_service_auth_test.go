package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/mock"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/store"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc is a helper that builds clientAuthService with mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientAuthService,
	*mock.MockBackendAdapter,
	*mock.MockSessionRepository,
	*session.Session,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockRepo := mock.NewMockSessionRepository(ctrl)
	sess := session.New()

	storages := &store.ClientStorages{SessionRepository: mockRepo}
	svc := NewClientAuthService(storages, mockAdapter, sess, validators.NewRequestValidator(), logger.Nop()).(*clientAuthService)

	return svc, mockAdapter, mockRepo, sess
}

var testCreds = models.Credentials{Email: "teacher@school.example", Credential: "google-credential"}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestClientAuthService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo, sess := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Exchange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.Request) (models.Response, error) {
			assert.Equal(t, models.ActionVerifyGoogleToken, req.Action())
			assert.Equal(t, testCreds.Email, req[models.FieldEmail])
			assert.Equal(t, testCreds.Credential, req[models.FieldCredential])
			return models.Response{"result": "success", "idToken": "T1", "email": "Teacher@School.example"}, nil
		})
	mockRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) error {
			assert.Equal(t, "T1", s.IDToken)
			return nil
		})

	got, err := svc.SignIn(ctx, testCreds)

	require.NoError(t, err)
	assert.Equal(t, "T1", got.IDToken)
	assert.Equal(t, "Teacher@School.example", got.Email, "backend email wins")
	assert.Equal(t, got, sess.Snapshot())
	assert.Equal(t, got, svc.Current())
}

func TestClientAuthService_SignIn_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, sess := newTestAuthSvc(t, ctrl)

	_, err := svc.SignIn(context.Background(), models.Credentials{Email: "not-an-email"})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.False(t, sess.Authenticated())
}

func TestClientAuthService_SignIn_Rejected(t *testing.T) {
	tests := []struct {
		name string
		resp models.Response
		err  error
	}{
		{name: "domain error", resp: models.Response{"result": "error", "error": "Unknown staff member"}},
		{name: "no token", resp: models.Response{"result": "success"}},
		{name: "expiry marker", err: adapter.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _, sess := newTestAuthSvc(t, ctrl)

			mockAdapter.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(tt.resp, tt.err)

			_, err := svc.SignIn(context.Background(), testCreds)

			assert.ErrorIs(t, err, ErrSignInRejected)
			assert.False(t, sess.Authenticated())
		})
	}
}

func TestClientAuthService_SignIn_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)

	httpErr := &adapter.HTTPError{Status: 502, Body: "bad gateway"}
	mockAdapter.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(nil, httpErr)

	_, err := svc.SignIn(context.Background(), testCreds)

	assert.ErrorIs(t, err, httpErr)
	assert.NotErrorIs(t, err, ErrSignInRejected)
}

func TestClientAuthService_SignIn_StoreErrorKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo, sess := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Exchange(gomock.Any(), gomock.Any()).
		Return(models.Response{"result": "success", "idToken": "T1"}, nil)
	mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	got, err := svc.SignIn(context.Background(), testCreds)

	require.NoError(t, err)
	assert.Equal(t, testCreds.Email, got.Email)
	assert.True(t, sess.Authenticated())
}

// ── persistence of refreshed credentials ─────────────────────────────────────

func TestClientAuthService_PersistsRotatedCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, _, mockRepo, sess := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.Session) error {
				assert.Equal(t, "T1", s.IDToken)
				return nil
			}),
		mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.Session) error {
				assert.Equal(t, "T2", s.IDToken)
				return nil
			}),
	)

	sess.Start(testCreds.Email, "T1")
	require.True(t, sess.Rotate("T1", "T2"))
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo, sess := newTestAuthSvc(t, ctrl)

	saved := models.Session{Email: testCreds.Email, IDToken: "T7", UpdatedAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)}
	mockRepo.EXPECT().LoadSession(gomock.Any()).Return(saved, nil)
	// restoring must not write the same state back
	mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Restore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, saved, sess.Snapshot())
}

func TestClientAuthService_Restore_NothingSaved(t *testing.T) {
	tests := []struct {
		name  string
		saved models.Session
		err   error
	}{
		{name: "not found", err: store.ErrSessionNotFound},
		{name: "empty token", saved: models.Session{Email: testCreds.Email}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockRepo, sess := newTestAuthSvc(t, ctrl)

			mockRepo.EXPECT().LoadSession(gomock.Any()).Return(tt.saved, tt.err)

			_, err := svc.Restore(context.Background())

			assert.ErrorIs(t, err, ErrNoSavedSession)
			assert.False(t, sess.Authenticated())
		})
	}
}

func TestClientAuthService_Restore_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo, _ := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrScanningRow)

	_, err := svc.Restore(context.Background())

	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.NotErrorIs(t, err, ErrNoSavedSession)
}

func TestClientAuthService_Restore_NoStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientAuthService(nil, mock.NewMockBackendAdapter(ctrl), session.New(), validators.NewRequestValidator(), logger.Nop())

	_, err := svc.Restore(context.Background())

	assert.ErrorIs(t, err, ErrNoSavedSession)
	assert.NoError(t, svc.SignOut(context.Background()))
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestClientAuthService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo, sess := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	sess.Start(testCreds.Email, "T1")
	require.NoError(t, svc.SignOut(context.Background()))

	assert.False(t, sess.Authenticated())
	assert.Equal(t, models.Session{}, svc.Current())
}

func TestClientAuthService_SignOut_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo, sess := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().DeleteSession(gomock.Any()).Return(errors.New("database is locked"))

	err := svc.SignOut(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.False(t, sess.Authenticated(), "memory is cleared even when the store fails")
}
