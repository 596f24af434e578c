package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/models"
)

var (
	ErrUserQuit   = errors.New("user quit")
	errNoServices = errors.New("client services are not provided")
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the sign-in form until the user signs in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.AuthService),
		pageAbout: newAboutModel(t.buildInfo),
	}

	root := NewRootModel(pages, pageLogin)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Str("email", result.session.Email).Msg("login flow finished")
	return result.session, nil
}

// Console runs the action console. It reports whether the session has to
// end, either because the user asked to sign out or because the credential
// could not be refreshed. Ending the session is left to the caller.
func (t *TUI) Console(ctx context.Context) (signOut bool, err error) {
	model := newConsoleModel(ctx, t.services, time.Now)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*consoleModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.exit == exitSignOut || result.exit == exitSignInRequired, nil
}
