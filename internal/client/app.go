package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/internal/tui"
)

var errNoUI = errors.New("ui is not provided")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	auth := a.services.AuthService

	if _, err := auth.Restore(ctx); err != nil && !errors.Is(err, service.ErrNoSavedSession) {
		// a broken local store must not block signing in
		a.logger.Err(err).Msg("restore session")
	}

	for {
		if !auth.Current().Authenticated() {
			_, err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		signOut, err := a.ui.Console(ctx)
		if err != nil {
			return fmt.Errorf("console: %w", err)
		}
		if !signOut {
			return nil
		}

		if err = auth.SignOut(ctx); err != nil {
			a.logger.Err(err).Msg("sign out")
		}
	}
}
