package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func runServe(ctx context.Context, a *app) error {
	grpcZap.ReplaceGrpcLoggerV2(a.logger)

	cache, err := a.newCache()
	if err != nil {
		return err
	}
	// Reading the viewed user's entry creates its key before polling starts.
	cache.Balance(a.form.User())

	notifications := a.logger.Named("notifications")
	coordinator, err := a.newCoordinator(cache, mutation.NotifierFunc(func(n mutation.Notification) {
		notifications.Info(n.Message,
			zap.Stringer("mutation_id", n.ID),
			zap.String("kind", string(n.Kind)),
			zap.String("state", string(n.State)),
		)
	}))
	if err != nil {
		return err
	}

	handler, err := transport.NewDashboardHandler(cache, a.form, coordinator, a.logger)
	if err != nil {
		return fmt.Errorf("init dashboard handler: %w", err)
	}
	reporter := transport.NewHealthReporter(cache, a.logger)
	grpcServer := transport.NewGRPCServer(reporter, a.logger)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	g, gctx := errgroup.WithContext(ctx)
	cache.Start(gctx)
	defer cache.Stop()

	g.Go(func() error {
		return reporter.Run(gctx)
	})
	g.Go(func() error {
		return serveHTTP(gctx, "metrics", newHTTPServer(a.cfg.MetricsAddr, metricsMux), a.logger)
	})
	g.Go(func() error {
		return serveHTTP(gctx, "dashboard", newHTTPServer(a.cfg.HTTPAddr, transport.WithCORS(handler)), a.logger)
	})
	g.Go(func() error {
		return serveGRPC(gctx, a.cfg.GRPCAddr, grpcServer, a.logger)
	})
	return g.Wait()
}

func serveGRPC(ctx context.Context, addr string, server *grpc.Server, logger *zap.Logger) error {
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting grpc server", zap.String("addr", addr))
		errCh <- server.Serve(socket)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down grpc server")
		server.GracefulStop()
		return nil
	}
}
