package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/store"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
	"github.com/jander15/BathroomPass-sub000/models"
)

const persistTimeout = 5 * time.Second

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.BackendAdapter
	session   *session.Session
	validator validators.Validator
	logger    *logger.Logger

	// mu serializes writes to the local store; saved is the last state
	// written there.
	mu    sync.Mutex
	saved models.Session
}

// NewClientAuthService wires the auth service to sess. Every credential the
// session takes on, including those rotated by the adapter's refresh, is
// written to the local session repository when storages provides one.
func NewClientAuthService(
	storages *store.ClientStorages,
	backend adapter.BackendAdapter,
	sess *session.Session,
	validator validators.Validator,
	logger *logger.Logger,
) ClientAuthService {
	svc := &clientAuthService{
		adapter:   backend,
		session:   sess,
		validator: validator,
		logger:    logger,
	}
	if storages != nil {
		svc.sessions = storages.SessionRepository
	}

	sess.Subscribe(svc.persist)
	return svc
}

func (a *clientAuthService) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	resp, err := a.adapter.Exchange(ctx, models.NewRequest(models.ActionVerifyGoogleToken, creds.Fields()))
	if errors.Is(err, adapter.ErrSessionExpired) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSignInRejected, err)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}

	if !resp.IsSuccess() {
		return models.Session{}, fmt.Errorf("%w: %s", ErrSignInRejected, resp.ErrorMessage())
	}

	token := strings.TrimSpace(resp.String(models.FieldIDToken))
	if token == "" {
		return models.Session{}, fmt.Errorf("%w: no credential in response", ErrSignInRejected)
	}

	email := resp.String(models.FieldEmail)
	if email == "" {
		email = creds.Email
	}

	a.session.Start(email, token)
	a.logger.Info().Str("email", email).Msg("signed in")

	return a.session.Snapshot(), nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	if a.sessions == nil {
		return models.Session{}, ErrNoSavedSession
	}

	saved, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSavedSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load saved session: %w", err)
	}
	if !saved.Authenticated() {
		return models.Session{}, ErrNoSavedSession
	}

	a.mu.Lock()
	a.saved = saved
	a.mu.Unlock()

	a.session.Restore(saved)
	a.logger.Info().Str("email", saved.Email).Msg("session restored")

	return saved, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	a.session.Clear()

	if a.sessions == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.saved = models.Session{}
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete saved session: %w", err)
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *clientAuthService) Current() models.Session {
	return a.session.Snapshot()
}

// persist is the session listener. Sign-out is handled by SignOut, which
// reports store errors to its caller.
func (a *clientAuthService) persist(s models.Session) {
	if a.sessions == nil || !s.Authenticated() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// skip duplicates and states superseded while waiting for the lock
	if s == a.saved || s != a.session.Snapshot() {
		return
	}

	ctx, cancel := context.WithTimeout(a.logger.WithContext(context.Background()), persistTimeout)
	defer cancel()

	if err := a.sessions.SaveSession(ctx, s); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.persist").Msg("failed to persist session")
		return
	}
	a.saved = s
}
