package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/otterbagel/cardiolog/internal/session"
	"github.com/otterbagel/cardiolog/internal/tui/components/connection"
	"github.com/otterbagel/cardiolog/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	loginPage page = iota
	dashboardPage
)

// Refresher runs one sync cycle outside the periodic schedule.
type Refresher interface {
	Trigger()
}

type Deps struct {
	Controller *session.Controller
	Refresher  Refresher
}

type state struct {
	login     LoginState
	dashboard DashboardState
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	return Model{
		page:  loginPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			login:     LoginState{Checking: true},
			dashboard: DashboardState{},
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return bootstrapCmd(m.deps.Controller)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.page {
		case loginPage:
			return m.updateLogin(msg)
		case dashboardPage:
			return m.updateDashboard(msg)
		}

	case SessionMsg:
		m.state.login.Checking = false
		m.state.login.Submitting = false

		if msg.State == session.StateLoggedIn && msg.User != nil {
			m.page = dashboardPage
			m.state.dashboard = DashboardState{User: msg.User}
			m.state.login = LoginState{}
			return m, nil
		}

		m.page = loginPage
		m.state.dashboard = DashboardState{}
		if msg.Err != nil {
			// failure detail goes to the log, not the screen
			m.state.login.ErrorMsg = "Login failed - check your API key and user id"
		}

	case ConnectionMsg:
		m.state.dashboard.Indicator = connection.Indicator{
			Checked:   true,
			Connected: msg.Connected,
		}

	case TotalsMsg:
		totals := msg.Totals
		m.state.dashboard.Totals = &totals

	case ConnectDoneMsg:
		if msg.Err != nil {
			m.state.dashboard.Notice = "connect request failed"
		} else {
			m.state.dashboard.Notice = ""
		}
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case loginPage:
		content = m.LoginView()
	case dashboardPage:
		content = m.DashboardView()
	}

	view.SetContent(lipgloss.Place(
		m.viewportWidth,
		m.viewportHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	))
	return view
}
