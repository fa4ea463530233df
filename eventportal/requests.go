package eventportal

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ApplicationDomainRequest creates an application domain.
type ApplicationDomainRequest struct {
	Name                                 string `json:"name"`
	Description                          string `json:"description,omitempty"`
	UniqueTopicAddressEnforcementEnabled bool   `json:"uniqueTopicAddressEnforcementEnabled"`
	TopicDomainEnforcementEnabled        bool   `json:"topicDomainEnforcementEnabled"`
	Type                                 string `json:"type,omitempty"`
}

// Validate checks the request before it is sent.
func (r ApplicationDomainRequest) Validate() error {
	return required("application domain", "name", r.Name)
}

// SchemaRequest creates a schema object.
type SchemaRequest struct {
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	Shared              bool   `json:"shared"`
	ContentType         string `json:"contentType,omitempty"`
	SchemaType          string `json:"schemaType,omitempty"`
}

// Validate checks the request before it is sent.
func (r SchemaRequest) Validate() error {
	if err := required("schema", "applicationDomainId", r.ApplicationDomainID); err != nil {
		return err
	}
	return required("schema", "name", r.Name)
}

// SchemaVersionRequest creates or patches a schema version.
type SchemaVersionRequest struct {
	SchemaID    string `json:"schemaId"`
	Version     string `json:"version"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`

	// StateID is honored verbatim when set; the service defaults to DRAFT.
	StateID string `json:"stateId,omitempty"`
}

// Validate checks the request before it is sent.
func (r SchemaVersionRequest) Validate() error {
	if err := required("schema version", "schemaId", r.SchemaID); err != nil {
		return err
	}
	if err := validVersion("schema version", r.Version); err != nil {
		return err
	}
	return validStateID("schema version", r.StateID)
}

// EventRequest creates an event object.
type EventRequest struct {
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	Shared              bool   `json:"shared"`
}

// Validate checks the request before it is sent.
func (r EventRequest) Validate() error {
	if err := required("event", "applicationDomainId", r.ApplicationDomainID); err != nil {
		return err
	}
	return required("event", "name", r.Name)
}

// EventVersionRequest creates or patches an event version.
type EventVersionRequest struct {
	EventID            string              `json:"eventId"`
	Version            string              `json:"version"`
	DisplayName        string              `json:"displayName,omitempty"`
	Description        string              `json:"description,omitempty"`
	SchemaVersionID    string              `json:"schemaVersionId,omitempty"`
	DeliveryDescriptor *DeliveryDescriptor `json:"deliveryDescriptor,omitempty"`
	StateID            string              `json:"stateId,omitempty"`
}

// Validate checks the request before it is sent.
func (r EventVersionRequest) Validate() error {
	const what = "event version"
	if err := required(what, "eventId", r.EventID); err != nil {
		return err
	}
	if err := validVersion(what, r.Version); err != nil {
		return err
	}
	if err := validStateID(what, r.StateID); err != nil {
		return err
	}
	if r.DeliveryDescriptor == nil {
		return nil
	}
	for i, level := range r.DeliveryDescriptor.Address.AddressLevels {
		if level.Name == "" {
			return fmt.Errorf("%w: %s: address level %d has no name", ErrInvalidRequest, what, i)
		}
		switch level.AddressLevelType {
		case AddressLevelLiteral, AddressLevelVariable:
		default:
			return fmt.Errorf("%w: %s: address level %q has type %q, want %s or %s",
				ErrInvalidRequest, what, level.Name, level.AddressLevelType, AddressLevelLiteral, AddressLevelVariable)
		}
	}
	return nil
}

// ApplicationRequest creates an application object.
type ApplicationRequest struct {
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	ApplicationType     string `json:"applicationType,omitempty"`
	BrokerType          string `json:"brokerType,omitempty"`
}

// Validate checks the request before it is sent.
func (r ApplicationRequest) Validate() error {
	if err := required("application", "applicationDomainId", r.ApplicationDomainID); err != nil {
		return err
	}
	return required("application", "name", r.Name)
}

// ApplicationVersionRequest creates or patches an application version.
type ApplicationVersionRequest struct {
	ApplicationID                   string   `json:"applicationId"`
	Version                         string   `json:"version"`
	DisplayName                     string   `json:"displayName,omitempty"`
	Description                     string   `json:"description,omitempty"`
	DeclaredProducedEventVersionIDs []string `json:"declaredProducedEventVersionIds"`
	DeclaredConsumedEventVersionIDs []string `json:"declaredConsumedEventVersionIds"`
	StateID                         string   `json:"stateId,omitempty"`
	Type                            string   `json:"type,omitempty"`
}

// Validate checks the request before it is sent.
func (r ApplicationVersionRequest) Validate() error {
	if err := required("application version", "applicationId", r.ApplicationID); err != nil {
		return err
	}
	if err := validVersion("application version", r.Version); err != nil {
		return err
	}
	return validStateID("application version", r.StateID)
}

func required(what, field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s: %s is required", ErrInvalidRequest, what, field)
	}
	return nil
}

// validVersion requires a strict MAJOR.MINOR.PATCH version string.
func validVersion(what, version string) error {
	if version == "" {
		return fmt.Errorf("%w: %s: version is required", ErrInvalidRequest, what)
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("%w: %s: version %q: %v", ErrInvalidRequest, what, version, err)
	}
	return nil
}

func validStateID(what, stateID string) error {
	if stateID != "" && !ParseState(stateID).Known() {
		return fmt.Errorf("%w: %s: unknown stateId %q", ErrInvalidRequest, what, stateID)
	}
	return nil
}
