package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jander15/BathroomPass-sub000/internal/config"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/mock"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/store"
	"github.com/jander15/BathroomPass-sub000/internal/tui"
	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedUI plays back a fixed sequence of screen outcomes.
type scriptedUI struct {
	sess     *session.Session
	logins   []error
	consoles []bool

	loginCalls   int
	consoleCalls int
}

func (s *scriptedUI) LoginFlow(context.Context) (models.Session, error) {
	err := s.logins[s.loginCalls]
	s.loginCalls++
	if err != nil {
		return models.Session{}, err
	}
	s.sess.Start("teacher@school.example", "T1")
	return s.sess.Snapshot(), nil
}

func (s *scriptedUI) Console(context.Context) (bool, error) {
	signOut := s.consoles[s.consoleCalls]
	s.consoleCalls++
	return signOut, nil
}

func newTestApp(t *testing.T, storages *store.ClientStorages, ui *scriptedUI) *App {
	t.Helper()
	backend := mock.NewMockBackendAdapter(gomock.NewController(t))
	services := service.NewClientServices(storages, backend, ui.sess, logger.Nop())

	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_LoginThenQuit(t *testing.T) {
	ui := &scriptedUI{sess: session.New(), logins: []error{nil}, consoles: []bool{false}}

	require.NoError(t, newTestApp(t, nil, ui).Run(context.Background()))

	assert.Equal(t, 1, ui.loginCalls)
	assert.Equal(t, 1, ui.consoleCalls)
}

func TestApp_SignOutReturnsToLogin(t *testing.T) {
	ui := &scriptedUI{sess: session.New(), logins: []error{nil, tui.ErrUserQuit}, consoles: []bool{true}}

	require.NoError(t, newTestApp(t, nil, ui).Run(context.Background()))

	assert.Equal(t, 2, ui.loginCalls)
	assert.False(t, ui.sess.Authenticated())
}

func TestApp_SignOutDeletesSavedSessionOnce(t *testing.T) {
	repo := mock.NewMockSessionRepository(gomock.NewController(t))
	repo.EXPECT().LoadSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().DeleteSession(gomock.Any()).Return(nil).Times(1)

	ui := &scriptedUI{sess: session.New(), logins: []error{nil, tui.ErrUserQuit}, consoles: []bool{true}}
	app := newTestApp(t, &store.ClientStorages{SessionRepository: repo}, ui)

	require.NoError(t, app.Run(context.Background()))
	assert.False(t, ui.sess.Authenticated())
}

func TestApp_LoginFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &scriptedUI{sess: session.New(), logins: []error{boom}}

	err := newTestApp(t, nil, ui).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, ui.consoleCalls)
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	storages, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	require.NoError(t, storages.SessionRepository.SaveSession(context.Background(), models.Session{
		Email: "teacher@school.example", IDToken: "SAVED",
	}))

	ui := &scriptedUI{sess: session.New(), consoles: []bool{false}}
	require.NoError(t, newTestApp(t, storages, ui).Run(context.Background()))

	assert.Zero(t, ui.loginCalls)
	assert.Equal(t, "SAVED", ui.sess.Snapshot().IDToken)
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}
