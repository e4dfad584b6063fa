// Package logger provides structured logging for the maestro client
// packages and tools.
//
// It wraps Uber's Zap logger with a small surface: leveled logging
// methods that accept an optional error and free-form field maps, JSON
// output to stderr, and an fx module for dependency injection.
//
// Direct usage:
//
//	import "github.com/ovis-hpc/maestro/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "msrctl",
//	})
//	log.Info("schema registered", nil, map[string]interface{}{
//	    "id":   id,
//	    "name": sch.Name(),
//	})
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(
//	        func() logger.Config {
//	            return logger.Config{Level: "info", ServiceName: "my-service"}
//	        },
//	    ),
//	)
//
// The package also provides Observer, an observability.Observer that
// logs every completed registry operation, for wiring into
// registry.Client via WithObserver.
package logger
