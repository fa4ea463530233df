package eventportal

import (
	"context"
	"fmt"
	"net/http"
)

// Outcomes recorded in operation metadata under "outcome".
const (
	outcomeCreated = "created"
	outcomeReused  = "reused"
	outcomePatched = "patched"
)

// createObject creates an object of family f and returns its id.
//
// Creation and reuse are two steps: create, then on a DUPLICATE_NAME
// failure look the name up within domainID (empty for domains). Exactly one
// match is reused. No match propagates the create failure; several matches
// yield *AmbiguousMatchError. Two concurrent creates of the same name may
// both reach the lookup; the service's uniqueness check makes that safe.
func (c *Client) createObject(ctx context.Context, f family, domainID, name string, body any, op *operation) (string, error) {
	fields := map[string]interface{}{"family": f.resource, "name": name}
	if domainID != "" {
		fields["domain_id"] = domainID
	}

	var resp response[objectRef]
	createErr := c.transport.Send(ctx, http.MethodPost, f.path, body, &resp)
	if createErr == nil {
		fields["id"] = resp.Data.ID
		op.Metadata["outcome"] = outcomeCreated
		c.logInfo(ctx, fmt.Sprintf("%s %s created", f.label, name), fields)
		return resp.Data.ID, nil
	}

	if KindOf(createErr) != KindDuplicateName {
		return "", createErr
	}

	ids, err := c.findObjectIDs(ctx, f, domainID, name)
	if err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", createErr
	case 1:
		fields["id"] = ids[0]
		op.Metadata["outcome"] = outcomeReused
		c.logInfo(ctx, fmt.Sprintf("%s %s already exists, reusing it", f.label, name), fields)
		return ids[0], nil
	default:
		return "", &AmbiguousMatchError{Family: f.resource, Name: name, IDs: ids}
	}
}

// versionTarget identifies the version a create targets.
type versionTarget struct {
	parentID    string
	version     string
	displayName string
}

// createVersion creates a version under parent v.parentID and returns its id.
//
// Without overwrite every failure propagates. With overwrite, a
// VERSION_CONFLICT failure triggers one lookup of the existing version:
// DRAFT is patched in place and its id returned; any other known state
// yields *ImmutableVersionError; absent or unknown propagates the create
// failure. At most one mutating call is made.
func (c *Client) createVersion(ctx context.Context, f family, v versionTarget, body any, overwrite bool, op *operation) (string, error) {
	fields := map[string]interface{}{"family": f.resource, "parent_id": v.parentID, "version": v.version}

	var resp response[versionRef]
	createErr := c.transport.Send(ctx, http.MethodPost, f.versionsEndpoint(v.parentID), body, &resp)
	if createErr == nil {
		fields["id"] = resp.Data.ID
		op.Metadata["outcome"] = outcomeCreated
		c.logInfo(ctx, fmt.Sprintf("%s version %s created", f.label, v.version), fields)
		return resp.Data.ID, nil
	}

	if !overwrite || KindOf(createErr) != KindVersionConflict {
		return "", createErr
	}

	existing, err := c.findVersion(ctx, f, v.parentID, v.version)
	if err != nil {
		return "", err
	}
	if existing == nil || !existing.State().Known() {
		return "", createErr
	}

	state := existing.State()
	if !state.Mutable() {
		fields["state"] = state.String()
		c.logWarn(ctx, fmt.Sprintf("%s version %s is %s, not overwriting", f.label, v.version, state), nil, fields)
		displayName := v.displayName
		if displayName == "" {
			displayName = v.parentID
		}
		return "", &ImmutableVersionError{Family: f.label, DisplayName: displayName, Version: v.version, State: state}
	}

	if err := c.transport.Send(ctx, http.MethodPatch, f.versionEndpoint(v.parentID, existing.ID), body, nil); err != nil {
		return "", err
	}

	fields["id"] = existing.ID
	op.Metadata["outcome"] = outcomePatched
	c.logInfo(ctx, fmt.Sprintf("Patched %s version %s", f.label, v.version), fields)
	return existing.ID, nil
}
