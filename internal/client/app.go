package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/internal/tui"
)

// App is the scim-owner terminal client.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

// NewApp wires the services to ui.
func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer func() {
		if a.services.RefreshJob != nil {
			a.services.RefreshJob.Stop()
		}
		a.logger.Info().Msg("client stopped")
	}()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(err).Msg("interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
