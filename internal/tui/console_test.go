package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/mock"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsole(t *testing.T) (*consoleModel, *mock.MockBackendAdapter, *session.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)

	sess := session.New()
	sess.Start("teacher@school.example", "T1")

	services := service.NewClientServices(nil, backend, sess, logger.Nop())
	now := func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }
	return newConsoleModel(context.Background(), services, now), backend, sess
}

// press feeds k to m, runs the resulting command and feeds its message
// back. Commands returned by the second update are not run.
func press(t *testing.T, m *consoleModel, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(k)
	if cmd == nil {
		return nil
	}
	_, next := m.Update(cmd())
	return next
}

func TestConsole_SendShowsResponse(t *testing.T) {
	m, backend, _ := newTestConsole(t)
	backend.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.Request) (models.Response, error) {
			assert.Equal(t, models.ActionGetReportData, req.Action())
			assert.Equal(t, "5A", req["class"])
			return models.Response{"result": "success", "data": []any{map[string]any{"student": "Ada"}}}, nil
		})

	m.inputs[0].SetValue(models.ActionGetReportData)
	m.inputs[1].SetValue(`{"class": "5A"}`)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.sending)
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.lastResponse, `"student": "Ada"`)
	assert.Equal(t, models.ActionGetReportData+": success", m.status)
	assert.Equal(t, exitNone, m.exit)
}

func TestConsole_DomainErrorIsShown(t *testing.T) {
	m, backend, _ := newTestConsole(t)
	backend.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(models.Response{"result": "error", "error": "Class not found"}, nil)

	m.inputs[0].SetValue(models.ActionGetReportData)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, models.ActionGetReportData+": Class not found", m.errMsg)
	assert.Contains(t, m.lastResponse, "Class not found")
	assert.Equal(t, exitNone, m.exit)
}

func TestConsole_UnrecoverableExpiryEndsConsole(t *testing.T) {
	m, backend, _ := newTestConsole(t)
	backend.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(adapter.ErrSessionExpired, adapter.ErrRefreshRejected))

	m.inputs[0].SetValue(models.ActionGetReportData)
	quit := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, quit)
	assert.Equal(t, exitSignInRequired, m.exit)
}

func TestConsole_InputErrors(t *testing.T) {
	m, _, _ := newTestConsole(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Action is required", m.errMsg)

	m.inputs[0].SetValue(models.ActionGetReportData)
	m.inputs[1].SetValue(`["5A"]`)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, errFieldsNotObject.Error())
}

func TestConsole_CopyResponse(t *testing.T) {
	m, _, _ := newTestConsole(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "Nothing to copy", m.status)

	m.lastResponse = `{"result": "success"}`
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, m.lastResponse, copied)
	assert.Equal(t, "Response copied", m.status)
}

func TestConsole_SignOutOnlyEndsConsole(t *testing.T) {
	m, _, sess := newTestConsole(t)

	_, quit := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})

	require.NotNil(t, quit)
	assert.Equal(t, exitSignOut, m.exit)
	assert.True(t, sess.Authenticated(), "the client app owns sign-out")
}

func TestConsole_TabSwitchesFocus(t *testing.T) {
	m, _, _ := newTestConsole(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	assert.True(t, m.inputs[1].Focused())
	assert.False(t, m.inputs[0].Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
}

func TestConsole_ViewShowsHeader(t *testing.T) {
	m, _, _ := newTestConsole(t)

	assert.Contains(t, m.View(), "Signed in as teacher@school.example")
	assert.Contains(t, m.View(), "ACTION CONSOLE")
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr bool
	}{
		{name: "empty", raw: "  "},
		{name: "object", raw: `{"class":"5A","minutes":30}`, want: map[string]any{"class": "5A", "minutes": float64(30)}},
		{name: "array", raw: `[1]`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "garbage", raw: `{class}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFields(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, errFieldsNotObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
