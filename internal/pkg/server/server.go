package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
)

// GracefulServer runs an echo server and shuts it down cleanly on SIGINT or
// SIGTERM
type GracefulServer struct {
	echo   *echo.Echo
	config models.ServerConfig
	log    *logger.ZapLogger
}

// NewGracefulServer wraps an echo instance with graceful lifecycle handling
func NewGracefulServer(e *echo.Echo, cfg models.ServerConfig, log *logger.ZapLogger) *GracefulServer {
	e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second

	return &GracefulServer{
		echo:   e,
		config: cfg,
		log:    log,
	}
}

// Run starts the server and blocks until a shutdown signal arrives
func (s *GracefulServer) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		s.log.Info("shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}
