package provision

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/eventportal/eventportal"
)

// Plan describes a catalog to provision: one application domain and the
// schemas, events and applications inside it. References between entries
// are by name.
type Plan struct {
	Domain       DomainPlan        `yaml:"domain"`
	Schemas      []SchemaPlan      `yaml:"schemas,omitempty"`
	Events       []EventPlan       `yaml:"events,omitempty"`
	Applications []ApplicationPlan `yaml:"applications,omitempty"`

	// baseDir resolves relative content file paths. LoadPlan sets it to the
	// directory of the plan file.
	baseDir string
}

// DomainPlan is the application domain every other entry is created in.
type DomainPlan struct {
	Name                          string `yaml:"name"`
	Description                   string `yaml:"description,omitempty"`
	UniqueTopicAddressEnforcement bool   `yaml:"unique_topic_address_enforcement,omitempty"`
	TopicDomainEnforcement        bool   `yaml:"topic_domain_enforcement,omitempty"`
}

// VersionPlan holds the attributes shared by every versioned entry.
type VersionPlan struct {
	Version     string `yaml:"version"`
	DisplayName string `yaml:"display_name,omitempty"`
	Description string `yaml:"description,omitempty"`

	// State is a label ("draft", "released", ...) or a state id. Empty
	// leaves the choice to the service, which defaults to DRAFT.
	State string `yaml:"state,omitempty"`
}

// SchemaPlan is a schema object and one of its versions.
type SchemaPlan struct {
	Name        string        `yaml:"name"`
	Shared      bool          `yaml:"shared,omitempty"`
	ContentType string        `yaml:"content_type,omitempty"`
	SchemaType  string        `yaml:"schema_type,omitempty"`
	Version     VersionPlan   `yaml:",inline"`
	Content     ContentSource `yaml:"content"`
}

// EventPlan is an event object and one of its versions.
type EventPlan struct {
	Name    string      `yaml:"name"`
	Shared  bool        `yaml:"shared,omitempty"`
	Version VersionPlan `yaml:",inline"`

	// Schema names a SchemaPlan whose version the event carries. Optional.
	Schema string `yaml:"schema,omitempty"`

	// BrokerType defaults to "solace".
	BrokerType string `yaml:"broker_type,omitempty"`

	// Topic is a slash separated address; "{name}" segments are variables.
	// Optional; without it the event version has no delivery descriptor.
	Topic string `yaml:"topic,omitempty"`
}

// ApplicationPlan is an application object and one of its versions.
type ApplicationPlan struct {
	Name            string      `yaml:"name"`
	ApplicationType string      `yaml:"application_type,omitempty"`
	BrokerType      string      `yaml:"broker_type,omitempty"`
	Version         VersionPlan `yaml:",inline"`

	// Produces and Consumes name EventPlans.
	Produces []string `yaml:"produces,omitempty"`
	Consumes []string `yaml:"consumes,omitempty"`
}

// LoadPlan reads a YAML plan file. The plan is not validated here so the
// domain can still be supplied afterwards with WithDomainName; Validate runs
// before any call in Provisioner.Run.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}

	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	plan.baseDir = filepath.Dir(path)
	return plan, nil
}

// ParsePlan decodes a YAML plan without validating it. Unknown keys are
// rejected so that a misspelled field does not silently fall back to its
// zero value.
func ParsePlan(data []byte) (*Plan, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var plan Plan
	if err := decoder.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return &plan, nil
}

// WithDomainName returns a copy of the plan targeting another domain.
// An empty name leaves the plan unchanged.
func (p *Plan) WithDomainName(name string) *Plan {
	cp := *p
	if name != "" {
		cp.Domain.Name = name
	}
	return &cp
}

// Validate checks the plan without contacting any service: names are
// present and unique per family, versions are well formed, every
// reference resolves, topics parse, and each schema has exactly one
// content source.
func (p *Plan) Validate() error {
	if p.Domain.Name == "" {
		return fmt.Errorf("%w: domain name is required", ErrInvalidPlan)
	}

	schemas := make(map[string]bool, len(p.Schemas))
	for i, s := range p.Schemas {
		if err := checkEntry("schema", i, s.Name, s.Version, schemas); err != nil {
			return err
		}
		if err := s.Content.validate(); err != nil {
			return fmt.Errorf("%w: schema %q: %v", ErrInvalidPlan, s.Name, err)
		}
	}

	events := make(map[string]bool, len(p.Events))
	for i, e := range p.Events {
		if err := checkEntry("event", i, e.Name, e.Version, events); err != nil {
			return err
		}
		if e.Schema != "" && !schemas[e.Schema] {
			return fmt.Errorf("%w: event %q references unknown schema %q", ErrInvalidPlan, e.Name, e.Schema)
		}
		switch e.BrokerType {
		case "", eventportal.BrokerTypeSolace, eventportal.BrokerTypeKafka:
		default:
			return fmt.Errorf("%w: event %q has unknown broker type %q", ErrInvalidPlan, e.Name, e.BrokerType)
		}
		if e.Topic != "" {
			if _, err := ParseTopic(e.Topic); err != nil {
				return fmt.Errorf("event %q: %w", e.Name, err)
			}
		}
	}

	applications := make(map[string]bool, len(p.Applications))
	for i, a := range p.Applications {
		if err := checkEntry("application", i, a.Name, a.Version, applications); err != nil {
			return err
		}
		for _, ref := range append(append([]string{}, a.Produces...), a.Consumes...) {
			if !events[ref] {
				return fmt.Errorf("%w: application %q references unknown event %q", ErrInvalidPlan, a.Name, ref)
			}
		}
	}
	return nil
}

func checkEntry(family string, index int, name string, version VersionPlan, seen map[string]bool) error {
	if name == "" {
		return fmt.Errorf("%w: %s #%d has no name", ErrInvalidPlan, family, index)
	}
	if seen[name] {
		return fmt.Errorf("%w: %s %q is declared twice", ErrInvalidPlan, family, name)
	}
	seen[name] = true

	if version.Version == "" {
		return fmt.Errorf("%w: %s %q has no version", ErrInvalidPlan, family, name)
	}
	if _, err := semver.StrictNewVersion(version.Version); err != nil {
		return fmt.Errorf("%w: %s %q version %q: %v", ErrInvalidPlan, family, name, version.Version, err)
	}
	if version.State != "" && !eventportal.ParseStateLabel(version.State).Known() {
		return fmt.Errorf("%w: %s %q has unknown state %q", ErrInvalidPlan, family, name, version.State)
	}
	return nil
}

func (v VersionPlan) stateID() string {
	if v.State == "" {
		return ""
	}
	return eventportal.ParseStateLabel(v.State).ID()
}

// sampleSchema is the JSON Schema used by DefaultPlan.
const sampleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Sample",
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "createdAt": {"type": "string", "format": "date-time"}
  },
  "required": ["id"]
}`

// DefaultPlan returns the sample catalog: one JSON schema, one event
// carrying it on a four level topic, and one application producing that
// event, all at version 0.0.1 in domainName.
func DefaultPlan(domainName string) *Plan {
	return &Plan{
		Domain: DomainPlan{
			Name:                          domainName,
			Description:                   "Application domain created by eventportal provision",
			UniqueTopicAddressEnforcement: true,
			TopicDomainEnforcement:        false,
		},
		Schemas: []SchemaPlan{{
			Name:        "Schema1",
			ContentType: "json",
			SchemaType:  "jsonSchema",
			Version: VersionPlan{
				Version:     "0.0.1",
				DisplayName: "Sample schema",
				Description: "Sample JSON schema version",
				State:       "draft",
			},
			Content: ContentSource{Inline: sampleSchema},
		}},
		Events: []EventPlan{{
			Name: "SampleEvent",
			Version: VersionPlan{
				Version:     "0.0.1",
				DisplayName: "Sample event",
				State:       "draft",
			},
			Schema:     "Schema1",
			BrokerType: eventportal.BrokerTypeSolace,
			Topic:      "level1/{level2}/level3/{level4}",
		}},
		Applications: []ApplicationPlan{{
			Name:            "SampleApplication",
			ApplicationType: eventportal.ApplicationTypeStandard,
			BrokerType:      eventportal.BrokerTypeSolace,
			Version: VersionPlan{
				Version:     "0.0.1",
				DisplayName: "Sample application",
				Description: "Application producing SampleEvent",
			},
			Produces: []string{"SampleEvent"},
		}},
	}
}
