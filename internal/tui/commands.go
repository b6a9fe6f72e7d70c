package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/otterbagel/cardiolog/internal/session"
)

func bootstrapCmd(controller *session.Controller) tea.Cmd {
	return func() tea.Msg {
		err := controller.Bootstrap(context.Background())
		return SessionMsg{State: controller.State(), User: controller.User(), Err: err}
	}
}

func loginCmd(controller *session.Controller, apiKey, userID string) tea.Cmd {
	return func() tea.Msg {
		err := controller.Login(context.Background(), apiKey, userID)
		return SessionMsg{State: controller.State(), User: controller.User(), Err: err}
	}
}

func logoutCmd(controller *session.Controller) tea.Cmd {
	return func() tea.Msg {
		controller.Logout(context.Background())
		return SessionMsg{State: controller.State()}
	}
}

func connectCmd(controller *session.Controller) tea.Cmd {
	return func() tea.Msg {
		return ConnectDoneMsg{Err: controller.Connect(context.Background())}
	}
}
