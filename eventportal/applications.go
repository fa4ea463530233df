package eventportal

import (
	"context"
)

// CreateApplicationObject creates an application object and returns its id. An
// existing application with the same name in the same domain is reused.
func (c *Client) CreateApplicationObject(ctx context.Context, req ApplicationRequest) (string, error) {
	op := &operation{Name: "create_application_object", Resource: applicationFamily.resource, SubResource: req.Name}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		var err error
		id, err = c.createObject(ctx, applicationFamily, req.ApplicationDomainID, req.Name, req, op)
		return err
	})
	return id, err
}

// CreateApplicationVersion creates an application version and returns its id.
// With overwrite set, an existing DRAFT version with the same version string
// is patched with req and its id returned.
func (c *Client) CreateApplicationVersion(ctx context.Context, req ApplicationVersionRequest, overwrite bool) (string, error) {
	op := &operation{
		Name:        "create_application_version",
		Resource:    applicationFamily.resource,
		SubResource: req.Version,
		Metadata:    map[string]interface{}{"overwrite": overwrite},
	}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		target := versionTarget{parentID: req.ApplicationID, version: req.Version, displayName: req.DisplayName}
		var err error
		id, err = c.createVersion(ctx, applicationFamily, target, req, overwrite, op)
		return err
	})
	return id, err
}

// GetApplicationState returns the state of version of applicationID, or StateUnknown.
func (c *Client) GetApplicationState(ctx context.Context, applicationID, version string) (State, error) {
	return c.versionState(ctx, applicationFamily, "get_application_state", applicationID, version)
}

// GetApplicationVersionID returns the id of version of applicationID, or "".
func (c *Client) GetApplicationVersionID(ctx context.Context, applicationID, version string) (string, error) {
	return c.versionID(ctx, applicationFamily, "get_application_version_id", applicationID, version)
}

// GetApplicationName returns the application's name, or "" when it does not exist.
func (c *Client) GetApplicationName(ctx context.Context, applicationID string) (string, error) {
	return c.objectName(ctx, applicationFamily, "get_application_name", applicationID)
}

// GetApplicationIDs returns the ids of applications named name. An empty domainID
// searches all domains.
func (c *Client) GetApplicationIDs(ctx context.Context, domainID, name string) ([]string, error) {
	return c.objectIDs(ctx, applicationFamily, "get_application_ids", domainID, name)
}

// GetApplications returns one page of applications.
func (c *Client) GetApplications(ctx context.Context, params string) (*ListResponse[Application], error) {
	return listOperation[Application](ctx, c, applicationFamily, "get_applications", "", withParams(applicationFamily.path, params))
}

// GetApplicationByID returns a single application object.
func (c *Client) GetApplicationByID(ctx context.Context, applicationID string) (*Application, error) {
	return getOperation[Application](ctx, c, applicationFamily, "get_application_by_id", applicationID, applicationFamily.objectEndpoint(applicationID))
}

// GetApplicationVersions returns one page of the versions of applicationID.
func (c *Client) GetApplicationVersions(ctx context.Context, applicationID, params string) (*ListResponse[ApplicationVersion], error) {
	if err := required("application", "id", applicationID); err != nil {
		return nil, err
	}
	return listOperation[ApplicationVersion](ctx, c, applicationFamily, "get_application_versions", applicationID,
		withParams(applicationFamily.versionsEndpoint(applicationID), params))
}

// GetApplicationVersionByID returns a single application version.
func (c *Client) GetApplicationVersionByID(ctx context.Context, versionID string) (*ApplicationVersion, error) {
	return getOperation[ApplicationVersion](ctx, c, applicationFamily, "get_application_version_by_id", versionID,
		applicationFamily.versionByIDEndpoint(versionID))
}
