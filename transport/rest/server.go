package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 10 * time.Second

const apiPrefix = "/api/v1"

// NewRouter registers the read-only scoreboard API. Routes sit on the root router
// so that a wrong method on a known path answers 405 rather than 404.
func NewRouter(logger *slog.Logger, scoreboard scoreboard) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", NewPingHandler(logger).PingHandler).Methods(http.MethodGet)

	handler := NewScoreboardHandler(logger, scoreboard)

	router.HandleFunc(apiPrefix+"/standings", handler.ListStandings).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/standings/{player}", handler.GetStanding).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/results/{id}", handler.GetResult).Methods(http.MethodGet)

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return router
}

// Start serves handler on port until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	log := logger.With("component", "http-server")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
