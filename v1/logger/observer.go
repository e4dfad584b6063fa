package logger

import (
	"github.com/ovis-hpc/maestro/v1/observability"
)

// Observer is an observability.Observer that writes one log entry per
// completed operation. Failed operations log at error level, successful
// ones at debug level so routine traffic stays quiet at the default
// info level.
type Observer struct {
	log *Logger
}

// NewObserver returns an Observer that logs through log.
func NewObserver(log *Logger) *Observer {
	return &Observer{log: log}
}

// ObserveOperation implements observability.Observer.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	fields := map[string]interface{}{
		"component":   ctx.Component,
		"operation":   ctx.Operation,
		"duration_ms": ctx.Duration.Milliseconds(),
	}
	if ctx.Resource != "" {
		fields["resource"] = ctx.Resource
	}
	if ctx.Size > 0 {
		fields["size"] = ctx.Size
	}
	for key, value := range ctx.Metadata {
		fields[key] = value
	}

	if ctx.Error != nil {
		o.log.Error("operation failed", ctx.Error, fields)
		return
	}
	o.log.Debug("operation completed", nil, fields)
}
