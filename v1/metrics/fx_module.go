package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/ovis-hpc/maestro/v1/logger"
	"github.com/ovis-hpc/maestro/v1/observability"
)

// FXModule integrates the Prometheus metrics server into an Fx-based
// application. It provides the NewMetrics factory, exposes the instance
// as an observability.Observer so the schema registry client picks it
// up, and registers startup and shutdown hooks for the HTTP server.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Address:     ":9090",
//	            ServiceName: "msrctl",
//	        }
//	    }),
//	    // other modules...
//	)
//
// A metrics.Config instance must be available in the container.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the metrics HTTP server in a
// background goroutine on application start and shuts it down
// gracefully on stop. It is invoked by FXModule and does not need to be
// called directly.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
