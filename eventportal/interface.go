package eventportal

import (
	"context"
)

// Catalog is the Event Portal catalog surface: application domains,
// schemas, events and applications together with their versions.
//
// Create methods reconcile with what already exists. Object creates reuse
// an existing object of the same name in the same domain. Version creates
// with overwrite set patch an existing DRAFT version of the same version
// string and refuse to touch any other state.
//
// Lookups return zero values ("", nil, StateUnknown) when nothing matches.
// params arguments are pre-encoded query strings appended verbatim.
//
// This interface is implemented by the concrete *Client type.
type Catalog interface {
	// CreateApplicationDomain creates a domain or returns the id of the
	// existing domain with the same name.
	CreateApplicationDomain(ctx context.Context, req ApplicationDomainRequest) (string, error)
	GetApplicationDomainID(ctx context.Context, name string) (string, error)
	GetApplicationDomainName(ctx context.Context, domainID string) (string, error)
	GetApplicationDomains(ctx context.Context, params string) (*ListResponse[ApplicationDomain], error)
	GetApplicationDomainByID(ctx context.Context, domainID, params string) (*ApplicationDomain, error)

	CreateSchemaObject(ctx context.Context, req SchemaRequest) (string, error)
	CreateSchemaVersion(ctx context.Context, req SchemaVersionRequest, overwrite bool) (string, error)
	GetSchemaState(ctx context.Context, schemaID, version string) (State, error)
	GetSchemaVersionID(ctx context.Context, schemaID, version string) (string, error)
	GetSchemaName(ctx context.Context, schemaID string) (string, error)
	GetSchemaIDs(ctx context.Context, domainID, name string) ([]string, error)
	GetSchemas(ctx context.Context, params string) (*ListResponse[Schema], error)
	GetSchemaByID(ctx context.Context, schemaID string) (*Schema, error)
	GetSchemaVersions(ctx context.Context, schemaID, params string) (*ListResponse[SchemaVersion], error)
	GetSchemaVersionByID(ctx context.Context, versionID string) (*SchemaVersion, error)

	CreateEventObject(ctx context.Context, req EventRequest) (string, error)
	CreateEventVersion(ctx context.Context, req EventVersionRequest, overwrite bool) (string, error)
	GetEventState(ctx context.Context, eventID, version string) (State, error)
	GetEventVersionID(ctx context.Context, eventID, version string) (string, error)
	GetEventName(ctx context.Context, eventID string) (string, error)
	GetEventIDs(ctx context.Context, domainID, name string) ([]string, error)
	GetEvents(ctx context.Context, params string) (*ListResponse[Event], error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	GetEventVersions(ctx context.Context, eventID, params string) (*ListResponse[EventVersion], error)
	GetEventVersionByID(ctx context.Context, versionID, params string) (*EventVersion, error)

	CreateApplicationObject(ctx context.Context, req ApplicationRequest) (string, error)
	CreateApplicationVersion(ctx context.Context, req ApplicationVersionRequest, overwrite bool) (string, error)
	GetApplicationState(ctx context.Context, applicationID, version string) (State, error)
	GetApplicationVersionID(ctx context.Context, applicationID, version string) (string, error)
	GetApplicationName(ctx context.Context, applicationID string) (string, error)
	GetApplicationIDs(ctx context.Context, domainID, name string) ([]string, error)
	GetApplications(ctx context.Context, params string) (*ListResponse[Application], error)
	GetApplicationByID(ctx context.Context, applicationID string) (*Application, error)
	GetApplicationVersions(ctx context.Context, applicationID, params string) (*ListResponse[ApplicationVersion], error)
	GetApplicationVersionByID(ctx context.Context, versionID string) (*ApplicationVersion, error)
}

// Logger is an interface that matches the logger.Logger interface.
// It provides context-aware structured logging with optional error and field parameters.
type Logger interface {
	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
