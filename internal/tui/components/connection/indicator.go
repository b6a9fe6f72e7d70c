package connection

import (
	"charm.land/lipgloss/v2"

	"github.com/otterbagel/cardiolog/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Checked   bool
	Connected bool
}

func (i Indicator) Render() string {
	if !i.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	if i.Connected {
		return lipgloss.NewStyle().
			Foreground(theme.ColorConnected).
			Render(statusDot + " tracker connected")
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorDisconnected).
		Render(statusDot + " tracker disconnected")
}
