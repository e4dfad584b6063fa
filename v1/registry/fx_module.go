package registry

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/ovis-hpc/maestro/v1/observability"
)

// FXModule is an fx.Module that provides and configures the schema
// registry client, making it available to other components in the
// application.
//
// Usage:
//
//	app := fx.New(
//	    registry.FXModule,
//	    fx.Provide(
//	        func() registry.Config {
//	            return registry.Config{
//	                URLs:   strings.Split(os.Getenv("MSR_URLS"), ","),
//	                CACert: os.Getenv("MSR_CA_CERT"),
//	            }
//	        },
//	    ),
//	)
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterRegistryLifecycle),
)

// RegistryParams groups the dependencies needed to create a registry client
type RegistryParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new registry client using dependency
// injection. Dependencies are provided automatically via the
// RegistryParams struct, which embeds fx.In.
//
// An observability.Observer in the graph is attached when present.
func NewClientWithDI(params RegistryParams) (Registry, error) {
	cli, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		cli.WithObserver(params.Observer)
	}
	return cli, nil
}

// RegistryLifecycleParams groups the dependencies needed for registry
// lifecycle management
type RegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  Registry
}

// RegisterRegistryLifecycle registers the registry client with the fx
// lifecycle system. The client is stateless over plain HTTP, so there is
// nothing to tear down today; the hooks mark the boundaries and host any
// future cleanup.
func RegisterRegistryLifecycle(params RegistryLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("INFO: schema registry client initialized")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: schema registry client shutdown")
			return nil
		},
	})
}
