package eventportal

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// family describes one resource family of the catalog. The reconciler and
// the lookup helpers are written once against this descriptor.
type family struct {
	// resource is the observability resource name.
	resource string

	// label names the family in log messages and errors.
	label string

	// path is the object collection endpoint, e.g. "schemas".
	path string

	// versionPath is the flat version collection endpoint, e.g.
	// "schemaVersions". Empty for families without versions.
	versionPath string
}

var (
	domainFamily = family{
		resource: "applicationDomain",
		label:    "Application Domain",
		path:     "applicationDomains",
	}
	schemaFamily = family{
		resource:    "schema",
		label:       "Schema",
		path:        "schemas",
		versionPath: "schemaVersions",
	}
	eventFamily = family{
		resource:    "event",
		label:       "Event",
		path:        "events",
		versionPath: "eventVersions",
	}
	applicationFamily = family{
		resource:    "application",
		label:       "Application",
		path:        "applications",
		versionPath: "applicationVersions",
	}
)

func (f family) objectEndpoint(id string) string {
	return f.path + "/" + url.PathEscape(id)
}

// versionsEndpoint is the version sub-collection of a parent object.
func (f family) versionsEndpoint(parentID string) string {
	return f.objectEndpoint(parentID) + "/versions"
}

func (f family) versionEndpoint(parentID, versionID string) string {
	return f.versionsEndpoint(parentID) + "/" + url.PathEscape(versionID)
}

func (f family) versionByIDEndpoint(versionID string) string {
	return f.versionPath + "/" + url.PathEscape(versionID)
}

// withParams appends a pre-encoded query string verbatim.
func withParams(endpoint, params string) string {
	if params == "" {
		return endpoint
	}
	return endpoint + "?" + params
}

// objectRef is the subset of an object used by name lookups.
type objectRef struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	ApplicationDomainID string `json:"applicationDomainId"`
}

// versionRef is the subset of a version used by state and id lookups.
type versionRef struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	StateID string `json:"stateId"`
}

func (v versionRef) State() State { return ParseState(v.StateID) }

func getOne[T any](ctx context.Context, t Transport, endpoint string) (*T, error) {
	var resp response[T]
	if err := t.Send(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func getList[T any](ctx context.Context, t Transport, endpoint string) (*ListResponse[T], error) {
	var resp ListResponse[T]
	if err := t.Send(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// findObjectIDs returns the ids of objects named exactly name. A non-empty
// domainID restricts the search to that domain.
func (c *Client) findObjectIDs(ctx context.Context, f family, domainID, name string) ([]string, error) {
	query := url.Values{}
	query.Set("name", name)
	if domainID != "" {
		query.Set("applicationDomainId", domainID)
	}

	list, err := getList[objectRef](ctx, c.transport, withParams(f.path, query.Encode()))
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, ref := range list.Data {
		if ref.Name != name {
			continue
		}
		if domainID != "" && ref.ApplicationDomainID != "" && ref.ApplicationDomainID != domainID {
			continue
		}
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

// findVersion returns the version of parentID whose version string is
// exactly version, or nil when there is none.
func (c *Client) findVersion(ctx context.Context, f family, parentID, version string) (*versionRef, error) {
	query := url.Values{}
	query.Set("version", version)

	list, err := getList[versionRef](ctx, c.transport, withParams(f.versionsEndpoint(parentID), query.Encode()))
	if err != nil {
		return nil, err
	}
	for _, ref := range list.Data {
		if ref.Version == version {
			return &ref, nil
		}
	}
	return nil, nil
}

// Shared lookups. Each is one public operation.

func (c *Client) versionState(ctx context.Context, f family, opName, parentID, version string) (State, error) {
	state := StateUnknown
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: version}, func(ctx context.Context) error {
		if err := required(f.resource, "parent id", parentID); err != nil {
			return err
		}
		ref, err := c.findVersion(ctx, f, parentID, version)
		if err != nil || ref == nil {
			return err
		}
		state = ref.State()
		return nil
	})
	return state, err
}

func (c *Client) versionID(ctx context.Context, f family, opName, parentID, version string) (string, error) {
	var id string
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: version}, func(ctx context.Context) error {
		if err := required(f.resource, "parent id", parentID); err != nil {
			return err
		}
		ref, err := c.findVersion(ctx, f, parentID, version)
		if err != nil || ref == nil {
			return err
		}
		id = ref.ID
		return nil
	})
	return id, err
}

// objectName returns "" when the object does not exist.
func (c *Client) objectName(ctx context.Context, f family, opName, id string) (string, error) {
	var name string
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: id}, func(ctx context.Context) error {
		if err := required(f.resource, "id", id); err != nil {
			return err
		}
		ref, err := getOne[objectRef](ctx, c.transport, f.objectEndpoint(id))
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		name = ref.Name
		return nil
	})
	return name, err
}

func (c *Client) objectIDs(ctx context.Context, f family, opName, domainID, name string) ([]string, error) {
	var ids []string
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: name}, func(ctx context.Context) error {
		if err := required(f.resource, "name", name); err != nil {
			return err
		}
		var err error
		ids, err = c.findObjectIDs(ctx, f, domainID, name)
		return err
	})
	return ids, err
}

func listOperation[T any](ctx context.Context, c *Client, f family, opName, subResource, endpoint string) (*ListResponse[T], error) {
	var out *ListResponse[T]
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: subResource}, func(ctx context.Context) error {
		var err error
		out, err = getList[T](ctx, c.transport, endpoint)
		return err
	})
	return out, err
}

func getOperation[T any](ctx context.Context, c *Client, f family, opName, id, endpoint string) (*T, error) {
	var out *T
	err := c.run(ctx, &operation{Name: opName, Resource: f.resource, SubResource: id}, func(ctx context.Context) error {
		if err := required(f.resource, "id", id); err != nil {
			return err
		}
		var err error
		out, err = getOne[T](ctx, c.transport, endpoint)
		return err
	})
	return out, err
}
