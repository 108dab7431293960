package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/volunteer-server/internal/logger"
)

const pingTimeout = 2 * time.Second

// Pinger checks that a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Watcher mirrors database reachability into the gRPC health service.
type Watcher struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger
}

// NewWatcher creates a Watcher probing pinger every interval.
func NewWatcher(server *health.Server, pinger Pinger, interval time.Duration, logger *logger.Logger) *Watcher {
	return &Watcher{
		server:   server,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Check pings once and publishes the resulting status for the whole server.
func (w *Watcher) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(ctx); err != nil {
		w.logger.Warn("Health watcher: database ping failed",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	w.server.SetServingStatus("", status)
	return status
}

// Run checks immediately and then on every tick until ctx is done, when every
// service is reported NOT_SERVING.
func (w *Watcher) Run(ctx context.Context) {
	w.Check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}
