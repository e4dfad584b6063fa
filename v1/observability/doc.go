// Package observability defines the Observer contract shared by the
// maestro client packages. Infrastructure packages report completed
// operations through the Observer interface; applications plug in
// metrics, tracing, or logging backends (see v1/metrics and v1/logger)
// without the client packages knowing about them.
package observability
