package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/otterbagel/cardiolog/internal/clock"
	"github.com/otterbagel/cardiolog/internal/tui"
	"github.com/otterbagel/cardiolog/internal/xslog"
	"github.com/otterbagel/cardiolog/internal/xsync"
)

func runTUI(cmd *cobra.Command, args []string) error {
	logger, err := fileLogger()
	if err != nil {
		return err
	}

	app, cleanup, err := newApp(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("cardiolog starting", xslog.Version(), xslog.SessionID(app.sessionID))

	renderer := tui.NewProgramRenderer()

	scheduler := xsync.New(
		app.client.Connection,
		app.client.Totals,
		clock.SystemClock{},
		renderer,
		app.controller,
		xsync.WithInterval(app.cfg.RefreshInterval),
		xsync.WithFallbackTimezone(app.cfg.DefaultTimezone),
		xsync.WithLogger(logger),
	)
	app.controller.SetScheduler(scheduler)
	defer scheduler.Stop()

	model := tui.New(tui.Deps{
		Controller: app.controller,
		Refresher:  scheduler,
	})

	p := tea.NewProgram(&model)
	renderer.Attach(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
