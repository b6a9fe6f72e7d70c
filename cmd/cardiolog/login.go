package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <api-key> <user-id>",
		Short: "Validate and store Cardiologger credentials",
		Long:  "Validates the pair against the Cardiologger API and persists it for future runs.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := newApp(stderrLogger())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.controller.Login(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			user := app.controller.User()
			fmt.Printf("Logged in as %s\n", user.ID)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := newApp(stderrLogger())
			if err != nil {
				return err
			}
			defer cleanup()

			app.controller.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and tracker connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := newApp(stderrLogger())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.controller.Bootstrap(ctx); err != nil {
				return fmt.Errorf("stored credentials rejected: %w", err)
			}

			if !app.controller.LoggedIn() {
				fmt.Println("Not logged in")
				return nil
			}

			user := app.controller.User()
			fmt.Printf("Logged in as %s\n", user.ID)

			connected, err := app.client.Connection.Status(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("fetching connection status: %w", err)
			}
			if connected {
				fmt.Println("Tracker connected")
			} else {
				fmt.Println("Tracker disconnected")
			}
			return nil
		},
	}
}
