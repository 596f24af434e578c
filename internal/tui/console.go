package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jander15/BathroomPass-sub000/internal/service"
	"github.com/jander15/BathroomPass-sub000/models"
)

const (
	headerTick  = 30 * time.Second
	statusDelay = 2 * time.Second
)

var errFieldsNotObject = errors.New("fields must be a JSON object")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type consoleExit int

const (
	exitNone consoleExit = iota
	exitQuit
	exitSignOut
	exitSignInRequired
)

// consoleModel sends arbitrary actions as the signed-in user and shows the
// response envelope.
type consoleModel struct {
	ctx      context.Context
	services *service.ClientServices
	now      func() time.Time

	inputs []textinput.Model
	focus  int
	output viewport.Model
	help   help.Model

	sending      bool
	lastResponse string
	status       string
	errMsg       string
	exit         consoleExit
}

func newConsoleModel(ctx context.Context, services *service.ClientServices, now func() time.Time) *consoleModel {
	actionInput := textinput.New()
	actionInput.Placeholder = models.ActionGetReportData
	actionInput.CharLimit = 64
	actionInput.Width = 40
	actionInput.Focus()

	fieldsInput := textinput.New()
	fieldsInput.Placeholder = `{"class": "5A"}`
	fieldsInput.CharLimit = 4096
	fieldsInput.Width = 60

	return &consoleModel{
		ctx:      ctx,
		services: services,
		now:      now,
		inputs:   []textinput.Model{actionInput, fieldsInput},
		output:   viewport.New(80, 16),
		help:     help.New(),
	}
}

func (m *consoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickHeader())
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.output.Width = max(msg.Width-6, 20)
		m.output.Height = max(msg.Height-16, 5)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tickHeader()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case actionDoneMsg:
		return m.onActionDone(msg)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Response copied"
		return m, clearStatusAfter(statusDelay)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.exit = exitQuit
			return m, tea.Quit
		case key.Matches(msg, keys.signOut):
			m.exit = exitSignOut
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if m.lastResponse == "" {
				m.status = "Nothing to copy"
				return m, clearStatusAfter(statusDelay)
			}
			return m, cmdCopy(m.lastResponse)
		case key.Matches(msg, keys.clear):
			m.lastResponse = ""
			m.errMsg = ""
			m.output.SetContent("")
			return m, nil
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.switchFocus()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		case msg.String() == "pgup", msg.String() == "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *consoleModel) submit() (tea.Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	action := strings.TrimSpace(m.inputs[0].Value())
	if action == "" {
		m.errMsg = "Action is required"
		return m, nil
	}

	fields, err := parseFields(m.inputs[1].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.sending = true
	return m, m.cmdRun(action, fields)
}

func (m *consoleModel) onActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.sending = false

	if errors.Is(msg.err, service.ErrSignInRequired) {
		m.exit = exitSignInRequired
		return m, tea.Quit
	}
	if msg.err != nil {
		m.errMsg = humanizeError(msg.err)
		return m, nil
	}

	pretty, err := json.MarshalIndent(msg.resp, "", "  ")
	if err != nil {
		m.errMsg = fmt.Sprintf("Cannot display response: %v", err)
		return m, nil
	}

	m.lastResponse = string(pretty)
	m.output.SetContent(m.lastResponse)
	m.output.GotoTop()

	if msg.resp.IsError() {
		m.errMsg = msg.action + ": " + msg.resp.ErrorMessage()
		return m, nil
	}
	m.status = msg.action + ": " + msg.resp.Result()
	return m, clearStatusAfter(statusDelay)
}

func (m *consoleModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(sessionHeader(m.services.AuthService.Current(), m.now())))
	b.WriteString("\n\nAction  │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nFields  │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.sending {
		b.WriteString("[Sending...]\n")
	}
	b.WriteString(outputStyle.Render(m.output.View()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ACTION CONSOLE", strings.TrimRight(b.String(), "\n"), m.help.View(consoleKeys{}))
}

func (m *consoleModel) cmdRun(action string, fields map[string]any) tea.Cmd {
	ctx := m.ctx
	actions := m.services.ActionService

	return func() tea.Msg {
		resp, err := actions.Run(ctx, action, fields)
		return actionDoneMsg{action: action, resp: resp, err: err}
	}
}

func (m *consoleModel) switchFocus() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// parseFields decodes the fields input. An empty input means no fields.
func parseFields(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", errFieldsNotObject, err)
	}
	if fields == nil {
		return nil, errFieldsNotObject
	}
	return fields, nil
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func tickHeader() tea.Cmd {
	return tea.Tick(headerTick, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
