package tui

import (
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/otterbagel/cardiolog/internal/tui/theme"
)

type loginField uint

const (
	fieldAPIKey loginField = iota
	fieldUserID
)

type LoginState struct {
	// Checking is the silent re-login window between program start and
	// the first SessionMsg.
	Checking   bool
	Submitting bool
	Focus      loginField
	APIKey     string
	UserID     string
	ErrorMsg   string
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.state.login
	if s.Checking || s.Submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down", "shift+tab", "up":
		if s.Focus == fieldAPIKey {
			s.Focus = fieldUserID
		} else {
			s.Focus = fieldAPIKey
		}

	case "enter":
		if s.APIKey == "" || s.UserID == "" {
			s.ErrorMsg = "Both fields are required"
			return m, nil
		}
		s.Submitting = true
		s.ErrorMsg = ""
		return m, loginCmd(m.deps.Controller, s.APIKey, s.UserID)

	case "backspace":
		field := m.focusedField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}

	case "space":
		*m.focusedField() += " "

	default:
		runes := []rune(msg.String())
		if len(runes) == 1 && unicode.IsPrint(runes[0]) {
			*m.focusedField() += string(runes)
		}
	}

	return m, nil
}

func (m *Model) focusedField() *string {
	if m.state.login.Focus == fieldAPIKey {
		return &m.state.login.APIKey
	}
	return &m.state.login.UserID
}

func (m *Model) LoginView() string {
	s := m.state.login

	titleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorPulse).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorWhite)

	hintStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim)

	errorStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDisconnected)

	title := titleStyle.Render("CARDIOLOG")

	if s.Checking {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			title,
			"",
			subtitleStyle.Render("Checking stored credentials..."),
		)
	}

	if s.Submitting {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			title,
			"",
			subtitleStyle.Render("Logging in..."),
		)
	}

	rows := []string{
		title,
		"",
		subtitleStyle.Render("Log in to Cardiologger"),
		"",
		m.fieldView("API key", maskValue(s.APIKey), s.Focus == fieldAPIKey),
		m.fieldView("User id", s.UserID, s.Focus == fieldUserID),
		"",
	}

	if s.ErrorMsg != "" {
		rows = append(rows, errorStyle.Render(s.ErrorMsg), "")
	}

	rows = append(rows, hintStyle.Render("tab to switch fields, enter to log in, esc to quit"))

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) fieldView(label, value string, focused bool) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Width(9)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Width(34)

	if focused {
		boxStyle = boxStyle.BorderForeground(theme.ColorPulse)
		value += "█"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStyle.Render(label),
		" ",
		boxStyle.Render(value),
	)
}

func maskValue(v string) string {
	return strings.Repeat("*", len([]rune(v)))
}
