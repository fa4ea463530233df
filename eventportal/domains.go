package eventportal

import (
	"context"
	"net/url"
)

// CreateApplicationDomain creates an application domain and returns its id.
// If a domain with the same name already exists its id is returned instead.
func (c *Client) CreateApplicationDomain(ctx context.Context, req ApplicationDomainRequest) (string, error) {
	op := &operation{Name: "create_application_domain", Resource: domainFamily.resource, SubResource: req.Name}

	var id string
	err := c.run(ctx, op, func(ctx context.Context) error {
		if err := req.Validate(); err != nil {
			return err
		}
		var err error
		id, err = c.createObject(ctx, domainFamily, "", req.Name, req, op)
		return err
	})
	return id, err
}

// GetApplicationDomainID returns the id of the domain named name, or "".
func (c *Client) GetApplicationDomainID(ctx context.Context, name string) (string, error) {
	ids, err := c.objectIDs(ctx, domainFamily, "get_application_domain_id", "", name)
	if err != nil || len(ids) == 0 {
		return "", err
	}
	return ids[0], nil
}

// GetApplicationDomainName returns the name of the domain with the given id,
// or "" when domainID is empty or unknown.
func (c *Client) GetApplicationDomainName(ctx context.Context, domainID string) (string, error) {
	if domainID == "" {
		return "", nil
	}

	var name string
	err := c.run(ctx, &operation{Name: "get_application_domain_name", Resource: domainFamily.resource, SubResource: domainID}, func(ctx context.Context) error {
		query := url.Values{}
		query.Set("ids", domainID)
		domains, err := getList[objectRef](ctx, c.transport, withParams(domainFamily.path, query.Encode()))
		if err != nil {
			return err
		}
		for _, d := range domains.Data {
			if d.ID == domainID {
				name = d.Name
				break
			}
		}
		return nil
	})
	return name, err
}

// GetApplicationDomains returns one page of application domains.
// params is appended verbatim, e.g. "pageSize=50&include=stats".
func (c *Client) GetApplicationDomains(ctx context.Context, params string) (*ListResponse[ApplicationDomain], error) {
	return listOperation[ApplicationDomain](ctx, c, domainFamily, "get_application_domains", "",
		withParams(domainFamily.path, params))
}

// GetApplicationDomainByID returns a single application domain.
func (c *Client) GetApplicationDomainByID(ctx context.Context, domainID, params string) (*ApplicationDomain, error) {
	return getOperation[ApplicationDomain](ctx, c, domainFamily, "get_application_domain_by_id", domainID,
		withParams(domainFamily.objectEndpoint(domainID), params))
}
