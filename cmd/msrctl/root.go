package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovis-hpc/maestro/v1/logger"
	"github.com/ovis-hpc/maestro/v1/registry"
)

var (
	flagURLs    []string
	flagCACert  string
	flagTimeout time.Duration
	flagMaxResp int
	flagLevel   string

	log    *logger.Logger
	client *registry.Client
)

var rootCmd = &cobra.Command{
	Use:   "msrctl",
	Short: "Client for the maestro schema registry",
	Long: `msrctl manages metric set schemas stored in a maestro schema registry.

Schemas are identified by a registry-assigned id and carry a SHA-1
digest over their field definitions, so renamed copies of the same
layout can be found by digest.

Examples:
  # Register a schema from a JSON definition
  msrctl add schema.json --url http://head1:8080

  # Fetch it back by id
  msrctl get 1b49...-1 --url http://head1:8080

  # Multiple --url flags provide failover
  msrctl names --url http://head1:8080 --url http://head2:8080`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.NewLoggerClient(logger.Config{
			Level:       flagLevel,
			ServiceName: "msrctl",
		})

		cfg := registry.Config{
			URLs:            flagURLs,
			CACert:          flagCACert,
			Timeout:         flagTimeout,
			MaxResponseSize: flagMaxResp,
		}
		c, err := registry.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("configuring client: %w", err)
		}
		client = c.WithObserver(logger.NewObserver(log))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&flagURLs, "url", nil,
		"registry base URL (repeatable, tried in order on connect failures)")
	rootCmd.PersistentFlags().StringVar(&flagCACert, "ca-cert", "",
		"path to a CA certificate (PEM) for self-signed registries")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second,
		"request timeout")
	rootCmd.PersistentFlags().IntVar(&flagMaxResp, "max-response-size", 0,
		"cap on buffered response bytes (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "log-level", logger.Warning,
		"log level (debug, info, warning, error)")

	_ = rootCmd.MarkPersistentFlagRequired("url")
}

func setVersion(v, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", v, commit)
}
