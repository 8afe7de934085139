// taskman is an interactive, single-user console to-do list manager that
// keeps its state in one local file.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"taskman/internal/app"
	"taskman/internal/config"
	"taskman/internal/store"
	"taskman/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	cfg, err := config.Load("")
	if err != nil {
		// Bad config never blocks startup; defaults apply.
		logger.Warn("using default configuration", "err", err)
	}
	if !cfg.Color {
		ui.Disable()
	}

	st := store.New(cfg.File, logger)
	app.New(st, os.Stdin, os.Stdout).Run()
}
