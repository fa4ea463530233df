package eventportal

import (
	"context"
)

// CreateSchemaObject creates a schema object and returns its id. An
// existing schema with the same name in the same domain is reused.
func (c *Client) CreateSchemaObject(ctx context.Context, req SchemaRequest) (string, error) {
	op := &operation{Name: "create_schema_object", Resource: schemaFamily.resource, SubResource: req.Name}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		var err error
		id, err = c.createObject(ctx, schemaFamily, req.ApplicationDomainID, req.Name, req, op)
		return err
	})
	return id, err
}

// CreateSchemaVersion creates a schema version and returns its id.
// With overwrite set, an existing DRAFT version with the same version string
// is patched with req and its id returned.
func (c *Client) CreateSchemaVersion(ctx context.Context, req SchemaVersionRequest, overwrite bool) (string, error) {
	op := &operation{
		Name:        "create_schema_version",
		Resource:    schemaFamily.resource,
		SubResource: req.Version,
		Metadata:    map[string]interface{}{"overwrite": overwrite},
	}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		target := versionTarget{parentID: req.SchemaID, version: req.Version, displayName: req.DisplayName}
		var err error
		id, err = c.createVersion(ctx, schemaFamily, target, req, overwrite, op)
		return err
	})
	return id, err
}

// GetSchemaState returns the state of version of schemaID, or StateUnknown.
func (c *Client) GetSchemaState(ctx context.Context, schemaID, version string) (State, error) {
	return c.versionState(ctx, schemaFamily, "get_schema_state", schemaID, version)
}

// GetSchemaVersionID returns the id of version of schemaID, or "".
func (c *Client) GetSchemaVersionID(ctx context.Context, schemaID, version string) (string, error) {
	return c.versionID(ctx, schemaFamily, "get_schema_version_id", schemaID, version)
}

// GetSchemaName returns the schema's name, or "" when it does not exist.
func (c *Client) GetSchemaName(ctx context.Context, schemaID string) (string, error) {
	return c.objectName(ctx, schemaFamily, "get_schema_name", schemaID)
}

// GetSchemaIDs returns the ids of schemas named name. An empty domainID
// searches all domains.
func (c *Client) GetSchemaIDs(ctx context.Context, domainID, name string) ([]string, error) {
	return c.objectIDs(ctx, schemaFamily, "get_schema_ids", domainID, name)
}

// GetSchemas returns one page of schemas.
func (c *Client) GetSchemas(ctx context.Context, params string) (*ListResponse[Schema], error) {
	return listOperation[Schema](ctx, c, schemaFamily, "get_schemas", "", withParams(schemaFamily.path, params))
}

// GetSchemaByID returns a single schema object.
func (c *Client) GetSchemaByID(ctx context.Context, schemaID string) (*Schema, error) {
	return getOperation[Schema](ctx, c, schemaFamily, "get_schema_by_id", schemaID, schemaFamily.objectEndpoint(schemaID))
}

// GetSchemaVersions returns one page of the versions of schemaID.
func (c *Client) GetSchemaVersions(ctx context.Context, schemaID, params string) (*ListResponse[SchemaVersion], error) {
	if err := required("schema", "id", schemaID); err != nil {
		return nil, err
	}
	return listOperation[SchemaVersion](ctx, c, schemaFamily, "get_schema_versions", schemaID,
		withParams(schemaFamily.versionsEndpoint(schemaID), params))
}

// GetSchemaVersionByID returns a single schema version.
func (c *Client) GetSchemaVersionByID(ctx context.Context, versionID string) (*SchemaVersion, error) {
	return getOperation[SchemaVersion](ctx, c, schemaFamily, "get_schema_version_by_id", versionID,
		schemaFamily.versionByIDEndpoint(versionID))
}
