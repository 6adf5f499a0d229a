package app

import (
	"io"

	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/service"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *pterm.Logger
}

// NewApp wires the session store, logger and services. The returned cleanup
// must run when the session ends; nothing is persisted by it.
func NewApp(cfg *config.Config, logOut io.Writer) (*App, func()) {
	logger := cfg.NewLogger(logOut)
	memStore := store.NewMemoryStore()

	svc := service.NewService(memStore, cfg, logger)

	logger.Debug("session started", logger.Args("currency", cfg.Defaults.Currency, "config", cfg.ConfigPath))

	cleanup := func() {
		logger.Debug("session ended", logger.Args("discarded", memStore.Len()))
	}

	return &App{
		Service: svc,
		Store:   memStore,
		Logger:  logger,
	}, cleanup
}
