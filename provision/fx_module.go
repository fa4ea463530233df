package provision

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/eventportal/eventportal"
	"github.com/aalemi-dev/eventportal/minio"
	"github.com/aalemi-dev/eventportal/schema_registry"
)

// FXModule provides a *ContentResolver and a *Provisioner.
//
// Dependencies required by this module:
//   - a provision.Config and an eventportal.Catalog in the container
//   - optionally a schema_registry.Registry and a minio.Client, which enable
//     the registry and object content sources
//   - optionally a provision.Logger
var FXModule = fx.Module("provision",
	fx.Provide(
		NewContentResolverWithDI,
		NewProvisionerWithDI,
	),
)

// ResolverParams groups the optional content source clients.
type ResolverParams struct {
	fx.In

	Registry schema_registry.Registry `optional:"true"`
	Objects  minio.Client             `optional:"true"`
}

// NewContentResolverWithDI builds a resolver from whichever clients are present.
func NewContentResolverWithDI(params ResolverParams) *ContentResolver {
	return NewContentResolver(params.Registry, params.Objects)
}

// ProvisionParams groups the dependencies of NewProvisionerWithDI.
type ProvisionParams struct {
	fx.In

	Config   Config
	Catalog  eventportal.Catalog
	Resolver *ContentResolver
	Logger   Logger `optional:"true"`
}

// NewProvisionerWithDI builds a provisioner from injected dependencies.
func NewProvisionerWithDI(params ProvisionParams) *Provisioner {
	p := NewProvisioner(params.Catalog, params.Resolver, params.Config)
	if params.Logger != nil {
		p.WithLogger(params.Logger)
	}
	return p
}
