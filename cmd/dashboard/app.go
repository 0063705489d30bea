package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/form"
	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
	"github.com/goodnatureofminers/paychain-dashboard/internal/metrics"
	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// app holds the components shared by every command.
type app struct {
	cfg    config
	logger *zap.Logger
	ledger *ledger.ObservedClient
	form   *form.Store
}

func newApp(cfg config, logger *zap.Logger) (*app, error) {
	client, err := ledger.NewClient(
		cfg.APIBaseURL,
		ledger.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		ledger.WithRateLimit(cfg.RPS),
	)
	if err != nil {
		return nil, fmt.Errorf("init ledger client: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		ledger: ledger.NewObservedClient(client, metrics.NewLedgerClient()),
		form: form.NewStore(form.Fields{
			From:   cfg.From,
			To:     cfg.To,
			Amount: cfg.Amount,
			User:   cfg.User,
		}),
	}, nil
}

func (a *app) newCache(opts ...readmodel.Option) (*readmodel.Cache, error) {
	cache, err := readmodel.New(a.ledger, metrics.NewReadModel(), a.logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("init read model: %w", err)
	}
	return cache, nil
}

func (a *app) newCoordinator(cache mutation.Invalidator, notifier mutation.Notifier) (*mutation.Coordinator, error) {
	coordinator, err := mutation.NewCoordinator(a.ledger, cache, a.form, notifier, metrics.NewMutation(), a.logger)
	if err != nil {
		return nil, fmt.Errorf("init mutation coordinator: %w", err)
	}
	return coordinator, nil
}

// serveHTTP runs srv until ctx is done, then shuts it down gracefully.
func serveHTTP(ctx context.Context, name string, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting "+name+" server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", name, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down " + name + " server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s server: %w", name, err)
	}
	return nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
