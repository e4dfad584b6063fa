package observability

// NoopObserver is an Observer that discards everything. Useful as a
// default and in tests.
type NoopObserver struct{}

func (NoopObserver) ObserveOperation(OperationContext) {}
