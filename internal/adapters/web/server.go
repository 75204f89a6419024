package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"mergington/internal/application"
	"mergington/internal/config"
	"mergington/internal/ports/output"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP adapter.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server and wires ports: output adapters -> application (use cases) -> handler.
func NewServer(
	cfg *config.Config,
	activityRepo output.ActivityRepository,
	sessions output.SessionStore,
	credentials output.CredentialSource,
	notifier output.RosterNotifier,
	translator output.T,
) *Server {
	activityUC := application.NewActivityService(activityRepo, notifier)
	authUC := application.NewAuthService(credentials, sessions)

	handler := NewHandler(activityUC, authUC, translator)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewRouter(handler, cfg.StaticDir),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()
	log.Printf("🏫 Mergington API listening on %s. Press CTRL+C to quit.", s.httpServer.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("👋 Server stopped.")
	return nil
}
