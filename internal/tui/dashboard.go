package tui

import (
	"image/color"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/otterbagel/cardiolog/internal/client/cardio"
	"github.com/otterbagel/cardiolog/internal/tui/components/connection"
	"github.com/otterbagel/cardiolog/internal/tui/theme"
	"github.com/otterbagel/cardiolog/internal/xsync"
)

type DashboardState struct {
	User      *cardio.User
	Indicator connection.Indicator
	Totals    *xsync.Snapshot
	Notice    string
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "l":
		return m, logoutCmd(m.deps.Controller)

	case "c":
		m.state.dashboard.Notice = "requesting connect..."
		return m, connectCmd(m.deps.Controller)

	case "r":
		if m.deps.Refresher != nil {
			m.deps.Refresher.Trigger()
		}
	}

	return m, nil
}

func (m *Model) DashboardView() string {
	s := m.state.dashboard

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorPulse).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim)

	noticeStyle := lipgloss.NewStyle().
		Foreground(theme.ColorPoints)

	header := titleStyle.Render("CARDIOLOG")
	if s.User != nil && s.User.Name != "" {
		header += lipgloss.NewStyle().Foreground(theme.ColorWhite).Render("  " + s.User.Name)
	}

	var day, week *xsync.Metrics
	if s.Totals != nil {
		day = &s.Totals.Day
		week = &s.Totals.Week
	}

	panelSpacing := "  "
	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.totalsPanel("TODAY", day),
		panelSpacing,
		m.totalsPanel("THIS WEEK", week),
	)

	rows := []string{
		header,
		"",
		s.Indicator.Render(),
		"",
		panels,
		"",
	}

	if s.Notice != "" {
		rows = append(rows, noticeStyle.Render(s.Notice), "")
	}

	rows = append(rows, hintStyle.Render("c connect, r refresh, l log out, q quit"))

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) totalsPanel(label string, metrics *xsync.Metrics) string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(1, 3).
		Width(24)

	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Bold(true)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		labelStyle.Render(label),
		"",
		statLine("points", metricValue(metrics, func(m xsync.Metrics) int { return m.Points }), theme.ColorPoints),
		statLine("active min", metricValue(metrics, func(m xsync.Metrics) int { return m.ActiveMinutes }), theme.ColorActiveTime),
	)

	return panelStyle.Render(content)
}

func statLine(name, value string, c color.Color) string {
	valueStyle := lipgloss.NewStyle().
		Foreground(c).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim)

	return valueStyle.Render(value) + " " + nameStyle.Render(name)
}

// metricValue renders a placeholder until the first full cycle lands.
func metricValue(metrics *xsync.Metrics, pick func(xsync.Metrics) int) string {
	if metrics == nil {
		return "--"
	}
	return strconv.Itoa(pick(*metrics))
}
