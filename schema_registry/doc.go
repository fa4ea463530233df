// Package schema_registry reads schemas from a Confluent Schema Registry.
//
// It is used as a content source when provisioning Event Portal schema
// versions: the schema text registered for a Kafka subject (or under a
// global schema id) becomes the content of the catalog version.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Registry interface: read operations
//   - Client struct: concrete implementation over HTTP
//   - NewClient constructor: returns *Client
//   - FX module: provides both *Client and Registry
//
// Schemas fetched by id, or returned from a subject lookup, are cached by
// id for the lifetime of the client; registry ids never change meaning.
//
// # Direct Usage (Without FX)
//
//	client, err := schema_registry.NewClient(schema_registry.Config{
//	    URL:      "http://localhost:8081",
//	    Username: "user",     // Optional
//	    Password: "password", // Optional
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	latest, err := client.GetLatestSchema(ctx, "orders-value")
//	fmt.Println(latest.ID, latest.Version, latest.Schema)
//
//	schema, err := client.GetSchemaByID(ctx, 42)
//
// # Errors
//
// Non-200 answers are returned as *StatusError. Unknown subjects, versions
// and ids match ErrNotFound:
//
//	if errors.Is(err, schema_registry.ErrNotFound) {
//	    // nothing registered under that subject
//	}
//
// # Observability
//
// WithObserver reports every lookup with Component "schema_registry", the
// subject (or "registry" for id lookups) as Resource, and a cache_hit flag
// in Metadata for id lookups.
package schema_registry
