package transport

import (
	"context"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the service name reported alongside the overall status.
const HealthService = "paychain.dashboard"

// ChainWatcher exposes the chain entry and its change notifications.
type ChainWatcher interface {
	Chain() readmodel.Entry[[]model.Block]
	Subscribe() (<-chan readmodel.Key, func())
}

// HealthReporter mirrors the chain entry into a gRPC health server: SERVING
// while the chain holds data and its last refresh succeeded.
type HealthReporter struct {
	watcher ChainWatcher
	server  *health.Server
	logger  *zap.Logger
}

// NewHealthReporter builds a reporter starting in NOT_SERVING.
func NewHealthReporter(watcher ChainWatcher, logger *zap.Logger) *HealthReporter {
	h := &HealthReporter{
		watcher: watcher,
		server:  health.NewServer(),
		logger:  logger.Named("health"),
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Server returns the health server to register on a grpc.Server.
func (h *HealthReporter) Server() *health.Server {
	return h.server
}

// Run follows chain updates until ctx is done or the subscription closes.
func (h *HealthReporter) Run(ctx context.Context) error {
	updates, unsubscribe := h.watcher.Subscribe()
	defer unsubscribe()

	h.refresh()
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return nil
		case key, ok := <-updates:
			if !ok {
				h.server.Shutdown()
				return nil
			}
			if key.Kind() == readmodel.KindChain {
				h.refresh()
			}
		}
	}
}

func (h *HealthReporter) refresh() {
	entry := h.watcher.Chain()
	status := healthpb.HealthCheckResponse_SERVING
	if !entry.HasData || entry.Err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.set(status)
}

func (h *HealthReporter) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(HealthService, status)
	h.logger.Debug("health status", zap.Stringer("status", status))
}
