package metrics

// Default listening address for the metrics server when none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address is the network address where the metrics HTTP server
	// listens, e.g. ":9090" or "127.0.0.1:9100".
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"MAESTRO_METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process collectors are registered. When true, metrics such as
	// goroutine count, GC stats, and CPU usage are included
	// automatically.
	//
	// Default: false
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"MAESTRO_METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName is attached to every metric as a constant "service"
	// label.
	ServiceName string `yaml:"service_name" envconfig:"MAESTRO_SERVICE_NAME"`
}

func (cfg Config) withDefaults() Config {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}
	return cfg
}
