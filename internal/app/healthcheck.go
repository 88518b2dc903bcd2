package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vk/stepflow/internal/ctxlog"
)

// startHealthcheckServer exposes a liveness endpoint for long procedure
// runs driven by an external supervisor. Port 0 asks the OS for a free
// port; the bound address is available from HealthcheckAddr.
func (a *App) startHealthcheckServer(ctx context.Context, port int) {
	logger := ctxlog.FromContext(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		logger.Error("Health check server could not listen", "port", port, "error", err)
		return
	}
	a.healthAddr = ln.Addr().String()
	a.httpServer = &http.Server{Handler: mux}

	go func() {
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost:%d/health", ln.Addr().(*net.TCPAddr).Port))
		// Serve returns ErrServerClosed on graceful shutdown; anything
		// else is a real failure.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
}

// stopHealthcheckServer gracefully shuts the liveness endpoint down once
// the run is over. A nil server (healthcheck disabled) is a no-op.
func (a *App) stopHealthcheckServer(ctx context.Context) {
	if a.httpServer == nil {
		return
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		ctxlog.FromContext(ctx).Error("Health check server shutdown failed", "error", err)
	}
	a.httpServer = nil
}

// HealthcheckAddr returns the bound listener address. This is primarily
// for testing.
func (a *App) HealthcheckAddr() string {
	return a.healthAddr
}
