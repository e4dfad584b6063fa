// Package metrics provides Prometheus instrumentation for the schema
// registry client.
//
// The Metrics type owns an isolated Prometheus registry, pre-registers
// per-operation counters and histograms, and serves them over a
// configurable /metrics endpoint. It implements
// observability.Observer, so it plugs directly into
// registry.Client.WithObserver or into the fx wiring.
//
// Exposed metrics:
//
//	msr_operations_total{operation,status}      counter
//	msr_operation_duration_seconds{operation}   histogram
//	msr_response_bytes{operation}               histogram
//
// All metrics carry a constant service label taken from
// Config.ServiceName.
//
// # Direct Usage (Without FX)
//
//	import "github.com/ovis-hpc/maestro/v1/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "msrctl",
//	})
//	go m.Server.ListenAndServe()
//
//	client, err := registry.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//	client.WithObserver(m)
//
// # Usage with FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    registry.FXModule,
//	    fx.Provide(
//	        func() metrics.Config { ... },
//	        func() registry.Config { ... },
//	        func() logger.Config { ... },
//	    ),
//	)
//
// The module provides the instance both as *Metrics and as
// observability.Observer, so the registry module picks it up through
// its optional observer dependency.
package metrics
