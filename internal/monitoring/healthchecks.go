package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorFeedHealth keeps the producer informed about the scraping actor's
// availability so ingestion pauses instead of hammering a dead endpoint.
func MonitorFeedHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := clients.GetFeedClient().IsHealthy(ctx)
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Review feed is unhealthy")
			}
		}
	}
}

func MonitorReplyServiceHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := clients.GetOpenAIClient().Client.ListModels(ctx)
			isHealthy := err == nil
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Reply service is unhealthy",
					slog.String("error", err.Error()))
			}
		}
	}
}

func MonitorSearchHealth(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := clients.GetOpensearchClient(ctx).IsHealthy(ctx)
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Search cluster is unhealthy")
			}
		}
	}
}
