// Package eventportal is a client for the Solace Event Portal architecture
// API (v2): application domains, schemas, events, applications and their
// versions.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Catalog interface: the catalog operations
//   - Client struct: concrete implementation of Catalog
//   - Transport interface: one authenticated API call; HTTPTransport is the default
//   - FX module: provides both *Client and Catalog for dependency injection
//
// # Reconciliation
//
// Creates are idempotent by name. CreateApplicationDomain and the
// Create*Object methods send the create and, when the API reports that the
// name is taken (KindDuplicateName), return the id of the existing object
// in the same domain. If that lookup finds several objects the call fails
// with *AmbiguousMatchError.
//
// Create*Version methods take an overwrite flag. Without it, a conflicting
// version string is an error. With it, a conflict (KindVersionConflict)
// leads to a lookup of the existing version:
//
//	DRAFT                          patched in place, its id is returned
//	RELEASED, DEPRECATED, RETIRED  *ImmutableVersionError, nothing is changed
//	not found / unknown state      the original create error is returned
//
// Failures are classified once, by the transport, into an ErrorKind carried
// on *APIError. Nothing is retried.
//
// # Direct Usage (Without FX)
//
//	client, err := eventportal.NewClient(eventportal.Config{
//	    Token: os.Getenv("SOLACE_CLOUD_TOKEN"), // optional, this is the fallback
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	domainID, err := client.CreateApplicationDomain(ctx, eventportal.ApplicationDomainRequest{
//	    Name: "Acme",
//	})
//	schemaID, err := client.CreateSchemaObject(ctx, eventportal.SchemaRequest{
//	    ApplicationDomainID: domainID,
//	    Name:                "OrderSchema",
//	    ContentType:         "json",
//	    SchemaType:          "jsonSchema",
//	})
//	versionID, err := client.CreateSchemaVersion(ctx, eventportal.SchemaVersionRequest{
//	    SchemaID: schemaID,
//	    Version:  "1.0.0",
//	    Content:  `{"type":"object"}`,
//	}, true)
//
// # Error Handling
//
//	switch {
//	case errors.Is(err, eventportal.ErrImmutableVersion):
//	    // bump the version
//	case eventportal.KindOf(err) == eventportal.KindUnauthorized:
//	    // refresh the token
//	}
//
// # Observability
//
// WithObserver receives one observability.OperationContext per public call
// with Component "eventportal". WithTracer wraps each call in a span named
// "eventportal.<operation>" and forwards the trace context to the API.
package eventportal
