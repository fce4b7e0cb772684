package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/tubepulse/internal/clients"
)

const (
	HEALTHCHECK_TIMER   = 15
	HEALTHCHECK_TIMEOUT = 10 * time.Second
)

// MonitorEnricherHealth polls the OpenAI API and keeps the shared flag
// current. The enricher reads the flag before every enrichment so a dead API
// degrades requests to pattern-mined ideas instead of stalling them on
// retries.
func MonitorEnricherHealth(ctx context.Context, client *clients.OpenAIClient, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
			err := client.Ping(pingCtx)
			cancel()

			isHealthy := err == nil
			wasHealthy := healthy.Swap(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] OpenAI is unhealthy",
					slog.String("error", err.Error()))
			} else if !wasHealthy {
				slog.Info("[HealthCheck] OpenAI recovered")
			}
		}
	}
}
