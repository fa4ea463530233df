package eventportal

import (
	"context"
)

// CreateEventObject creates an event object and returns its id. An
// existing event with the same name in the same domain is reused.
func (c *Client) CreateEventObject(ctx context.Context, req EventRequest) (string, error) {
	op := &operation{Name: "create_event_object", Resource: eventFamily.resource, SubResource: req.Name}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		var err error
		id, err = c.createObject(ctx, eventFamily, req.ApplicationDomainID, req.Name, req, op)
		return err
	})
	return id, err
}

// CreateEventVersion creates an event version and returns its id.
// With overwrite set, an existing DRAFT version with the same version string
// is patched with req and its id returned.
func (c *Client) CreateEventVersion(ctx context.Context, req EventVersionRequest, overwrite bool) (string, error) {
	op := &operation{
		Name:        "create_event_version",
		Resource:    eventFamily.resource,
		SubResource: req.Version,
		Metadata:    map[string]interface{}{"overwrite": overwrite},
	}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		target := versionTarget{parentID: req.EventID, version: req.Version, displayName: req.DisplayName}
		var err error
		id, err = c.createVersion(ctx, eventFamily, target, req, overwrite, op)
		return err
	})
	return id, err
}

// GetEventState returns the state of version of eventID, or StateUnknown.
func (c *Client) GetEventState(ctx context.Context, eventID, version string) (State, error) {
	return c.versionState(ctx, eventFamily, "get_event_state", eventID, version)
}

// GetEventVersionID returns the id of version of eventID, or "".
func (c *Client) GetEventVersionID(ctx context.Context, eventID, version string) (string, error) {
	return c.versionID(ctx, eventFamily, "get_event_version_id", eventID, version)
}

// GetEventName returns the event's name, or "" when it does not exist.
func (c *Client) GetEventName(ctx context.Context, eventID string) (string, error) {
	return c.objectName(ctx, eventFamily, "get_event_name", eventID)
}

// GetEventIDs returns the ids of events named name. An empty domainID
// searches all domains.
func (c *Client) GetEventIDs(ctx context.Context, domainID, name string) ([]string, error) {
	return c.objectIDs(ctx, eventFamily, "get_event_ids", domainID, name)
}

// GetEvents returns one page of events.
func (c *Client) GetEvents(ctx context.Context, params string) (*ListResponse[Event], error) {
	return listOperation[Event](ctx, c, eventFamily, "get_events", "", withParams(eventFamily.path, params))
}

// GetEventByID returns a single event object.
func (c *Client) GetEventByID(ctx context.Context, eventID string) (*Event, error) {
	return getOperation[Event](ctx, c, eventFamily, "get_event_by_id", eventID, eventFamily.objectEndpoint(eventID))
}

// GetEventVersions returns one page of the versions of eventID.
func (c *Client) GetEventVersions(ctx context.Context, eventID, params string) (*ListResponse[EventVersion], error) {
	if err := required("event", "id", eventID); err != nil {
		return nil, err
	}
	return listOperation[EventVersion](ctx, c, eventFamily, "get_event_versions", eventID,
		withParams(eventFamily.versionsEndpoint(eventID), params))
}

// GetEventVersionByID returns a single event version. params is appended
// verbatim, e.g. "include=schemaVersion".
func (c *Client) GetEventVersionByID(ctx context.Context, versionID, params string) (*EventVersion, error) {
	return getOperation[EventVersion](ctx, c, eventFamily, "get_event_version_by_id", versionID,
		withParams(eventFamily.versionByIDEndpoint(versionID), params))
}
