package metrics

import (
	"github.com/ovis-hpc/maestro/v1/observability"
)

// ObserveOperation implements observability.Observer. Every completed
// operation increments msr_operations_total with the operation name and
// an "ok" or "error" status, and records its duration. Response sizes
// are recorded when the operation reports one.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	status := "ok"
	if ctx.Error != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(ctx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		m.responseBytes.WithLabelValues(ctx.Operation).Observe(float64(ctx.Size))
	}
}
