package builder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// App is the HTTP backend: the server plus the resources it owns.
type App struct {
	server *http.Server
	db     *pgxpool.Pool
	logger *zap.Logger
}

// Run serves until SIGINT/SIGTERM or a listener error. In-flight generation
// requests get shutdownTimeout to finish.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
			a.release()
			return fmt.Errorf("serve http: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
	err := a.server.Shutdown(ctx)
	if err != nil {
		a.logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	a.release()
	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func (a *App) release() {
	if a.db != nil {
		a.logger.Info("Closing database pool")
		a.db.Close()
	}
	a.logger.Info("Application stopped")
	_ = a.logger.Sync()
}
