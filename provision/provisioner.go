package provision

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalemi-dev/eventportal/eventportal"
)

const (
	defaultSchemaContentType = "json"
	defaultSchemaType        = "jsonSchema"
	applicationVersionType   = "application"
)

// Logger is the subset of logging the provisioner needs.
//
// It is satisfied by *logger.LoggerClient.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Provisioner creates the catalog described by a Plan, reusing objects that
// already exist and, when Config.Overwrite is set, patching DRAFT versions.
type Provisioner struct {
	catalog  eventportal.Catalog
	resolver *ContentResolver
	cfg      Config
	logger   Logger
}

// Created holds the ids of one provisioned object and its version.
type Created struct {
	ID        string `json:"id" yaml:"id"`
	VersionID string `json:"versionId" yaml:"version_id"`
}

// Result lists every id a run produced, keyed by plan entry name.
type Result struct {
	DomainName   string             `json:"domainName" yaml:"domain_name"`
	DomainID     string             `json:"domainId" yaml:"domain_id"`
	Schemas      map[string]Created `json:"schemas" yaml:"schemas"`
	Events       map[string]Created `json:"events" yaml:"events"`
	Applications map[string]Created `json:"applications" yaml:"applications"`
	Duration     time.Duration      `json:"-" yaml:"-"`
}

// NewProvisioner creates a provisioner. resolver may be nil when every
// schema in the plans it runs uses inline or file content.
func NewProvisioner(catalog eventportal.Catalog, resolver *ContentResolver, cfg Config) *Provisioner {
	if resolver == nil {
		resolver = NewContentResolver(nil, nil)
	}
	return &Provisioner{catalog: catalog, resolver: resolver, cfg: cfg}
}

// WithLogger attaches a logger for progress messages.
func (p *Provisioner) WithLogger(logger Logger) *Provisioner {
	p.logger = logger
	return p
}

// Run provisions plan in four phases: the domain, then schemas, then
// events, then applications. Entries within a phase are created
// concurrently, up to Config.Concurrency at a time. The first failure
// cancels the remaining work and is returned; ids created before it are
// not rolled back.
func (p *Provisioner) Run(ctx context.Context, plan *Plan) (*Result, error) {
	start := time.Now()
	if plan == nil {
		return nil, fmt.Errorf("%w: plan is nil", ErrInvalidPlan)
	}
	plan = plan.WithDomainName(p.cfg.DomainName)
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	domainID, err := p.catalog.CreateApplicationDomain(ctx, eventportal.ApplicationDomainRequest{
		Name:                                 plan.Domain.Name,
		Description:                          plan.Domain.Description,
		UniqueTopicAddressEnforcementEnabled: plan.Domain.UniqueTopicAddressEnforcement,
		TopicDomainEnforcementEnabled:        plan.Domain.TopicDomainEnforcement,
		Type:                                 "ApplicationDomain",
	})
	if err != nil {
		return nil, p.fail(ctx, fmt.Errorf("application domain %q: %w", plan.Domain.Name, err))
	}
	p.logInfo(ctx, "Application domain ready", map[string]interface{}{
		"domain":    plan.Domain.Name,
		"domain_id": domainID,
	})

	rec := newRecorder(plan.Domain.Name, domainID)

	err = runPhase(ctx, p.cfg.concurrency(), plan.Schemas, func(ctx context.Context, s SchemaPlan) error {
		created, err := p.provisionSchema(ctx, domainID, plan.baseDir, s)
		if err != nil {
			return fmt.Errorf("schema %q: %w", s.Name, err)
		}
		rec.schema(s.Name, created)
		return nil
	})
	if err != nil {
		return nil, p.fail(ctx, err)
	}

	err = runPhase(ctx, p.cfg.concurrency(), plan.Events, func(ctx context.Context, e EventPlan) error {
		created, err := p.provisionEvent(ctx, domainID, e, rec.snapshot())
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Name, err)
		}
		rec.event(e.Name, created)
		return nil
	})
	if err != nil {
		return nil, p.fail(ctx, err)
	}

	err = runPhase(ctx, p.cfg.concurrency(), plan.Applications, func(ctx context.Context, a ApplicationPlan) error {
		created, err := p.provisionApplication(ctx, domainID, a, rec.snapshot())
		if err != nil {
			return fmt.Errorf("application %q: %w", a.Name, err)
		}
		rec.application(a.Name, created)
		return nil
	})
	if err != nil {
		return nil, p.fail(ctx, err)
	}

	result := rec.snapshot()
	result.Duration = time.Since(start)
	p.logInfo(ctx, "Provisioning complete", map[string]interface{}{
		"domain":       result.DomainName,
		"schemas":      len(result.Schemas),
		"events":       len(result.Events),
		"applications": len(result.Applications),
		"duration":     result.Duration.String(),
	})
	return result, nil
}

func (p *Provisioner) provisionSchema(ctx context.Context, domainID, baseDir string, s SchemaPlan) (Created, error) {
	content, err := p.resolver.Resolve(ctx, s.Content, baseDir)
	if err != nil {
		return Created{}, err
	}

	schemaID, err := p.catalog.CreateSchemaObject(ctx, eventportal.SchemaRequest{
		ApplicationDomainID: domainID,
		Name:                s.Name,
		Shared:              s.Shared,
		ContentType:         orDefault(s.ContentType, defaultSchemaContentType),
		SchemaType:          orDefault(s.SchemaType, defaultSchemaType),
	})
	if err != nil {
		return Created{}, err
	}

	versionID, err := p.catalog.CreateSchemaVersion(ctx, eventportal.SchemaVersionRequest{
		SchemaID:    schemaID,
		Version:     s.Version.Version,
		DisplayName: s.Version.DisplayName,
		Description: s.Version.Description,
		Content:     content,
		StateID:     s.Version.stateID(),
	}, p.cfg.Overwrite)
	if err != nil {
		return Created{}, err
	}
	return Created{ID: schemaID, VersionID: versionID}, nil
}

func (p *Provisioner) provisionEvent(ctx context.Context, domainID string, e EventPlan, done *Result) (Created, error) {
	eventID, err := p.catalog.CreateEventObject(ctx, eventportal.EventRequest{
		ApplicationDomainID: domainID,
		Name:                e.Name,
		Shared:              e.Shared,
	})
	if err != nil {
		return Created{}, err
	}

	req := eventportal.EventVersionRequest{
		EventID:     eventID,
		Version:     e.Version.Version,
		DisplayName: e.Version.DisplayName,
		Description: e.Version.Description,
		StateID:     e.Version.stateID(),
	}
	if e.Schema != "" {
		req.SchemaVersionID = done.Schemas[e.Schema].VersionID
	}
	if e.Topic != "" {
		levels, err := ParseTopic(e.Topic)
		if err != nil {
			return Created{}, err
		}
		req.DeliveryDescriptor = &eventportal.DeliveryDescriptor{
			BrokerType: orDefault(e.BrokerType, eventportal.BrokerTypeSolace),
			Address:    eventportal.Address{AddressLevels: levels},
		}
	}

	versionID, err := p.catalog.CreateEventVersion(ctx, req, p.cfg.Overwrite)
	if err != nil {
		return Created{}, err
	}
	return Created{ID: eventID, VersionID: versionID}, nil
}

func (p *Provisioner) provisionApplication(ctx context.Context, domainID string, a ApplicationPlan, done *Result) (Created, error) {
	applicationID, err := p.catalog.CreateApplicationObject(ctx, eventportal.ApplicationRequest{
		ApplicationDomainID: domainID,
		Name:                a.Name,
		ApplicationType:     orDefault(a.ApplicationType, eventportal.ApplicationTypeStandard),
		BrokerType:          orDefault(a.BrokerType, eventportal.BrokerTypeSolace),
	})
	if err != nil {
		return Created{}, err
	}

	versionID, err := p.catalog.CreateApplicationVersion(ctx, eventportal.ApplicationVersionRequest{
		ApplicationID:                   applicationID,
		Version:                         a.Version.Version,
		DisplayName:                     a.Version.DisplayName,
		Description:                     a.Version.Description,
		DeclaredProducedEventVersionIDs: eventVersionIDs(done, a.Produces),
		DeclaredConsumedEventVersionIDs: eventVersionIDs(done, a.Consumes),
		StateID:                         a.Version.stateID(),
		Type:                            applicationVersionType,
	}, p.cfg.Overwrite)
	if err != nil {
		return Created{}, err
	}
	return Created{ID: applicationID, VersionID: versionID}, nil
}

// runPhase calls fn for every item with at most limit calls in flight. Once
// one call fails, items not yet started are skipped.
func runPhase[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, item)
		})
	}
	return g.Wait()
}

func eventVersionIDs(done *Result, names []string) []string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, done.Events[name].VersionID)
	}
	return ids
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (p *Provisioner) fail(ctx context.Context, err error) error {
	if p.logger != nil {
		p.logger.ErrorWithContext(ctx, "Provisioning failed", err)
	}
	return err
}

func (p *Provisioner) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.InfoWithContext(ctx, msg, nil, fields)
	}
}

// recorder collects ids from concurrently running phase items.
type recorder struct {
	mu     sync.Mutex
	result Result
}

func newRecorder(domainName, domainID string) *recorder {
	return &recorder{result: Result{
		DomainName:   domainName,
		DomainID:     domainID,
		Schemas:      make(map[string]Created),
		Events:       make(map[string]Created),
		Applications: make(map[string]Created),
	}}
}

func (r *recorder) schema(name string, c Created) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Schemas[name] = c
}

func (r *recorder) event(name string, c Created) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Events[name] = c
}

func (r *recorder) application(name string, c Created) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result.Applications[name] = c
}

// snapshot returns a copy that is safe to read while the recorder keeps
// collecting.
func (r *recorder) snapshot() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := r.result
	cp.Schemas = copyCreated(r.result.Schemas)
	cp.Events = copyCreated(r.result.Events)
	cp.Applications = copyCreated(r.result.Applications)
	return &cp
}

func copyCreated(m map[string]Created) map[string]Created {
	out := make(map[string]Created, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
