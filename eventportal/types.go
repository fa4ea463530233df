package eventportal

// Broker types accepted in a DeliveryDescriptor.
const (
	BrokerTypeSolace = "solace"
	BrokerTypeKafka  = "kafka"
)

// Address level types.
const (
	AddressLevelLiteral  = "literal"
	AddressLevelVariable = "variable"
)

// Application types.
const (
	ApplicationTypeStandard = "standard"
)

// ApplicationDomain is the root container for schemas, events and applications.
type ApplicationDomain struct {
	ID                                   string `json:"id,omitempty"`
	Name                                 string `json:"name"`
	Description                          string `json:"description,omitempty"`
	UniqueTopicAddressEnforcementEnabled bool   `json:"uniqueTopicAddressEnforcementEnabled"`
	TopicDomainEnforcementEnabled        bool   `json:"topicDomainEnforcementEnabled"`
	Type                                 string `json:"type,omitempty"`
	Stats                                *Stats `json:"stats,omitempty"`
}

// Stats is returned for domains when "include=stats" is requested.
type Stats struct {
	SchemaCount      int `json:"schemaCount"`
	EventCount       int `json:"eventCount"`
	ApplicationCount int `json:"applicationCount"`
}

// Schema is a schema object.
type Schema struct {
	ID                  string `json:"id,omitempty"`
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	Shared              bool   `json:"shared"`
	ContentType         string `json:"contentType,omitempty"`
	SchemaType          string `json:"schemaType,omitempty"`
	NumberOfVersions    int    `json:"numberOfVersions,omitempty"`
	Type                string `json:"type,omitempty"`
}

// SchemaVersion is one revision of a Schema.
type SchemaVersion struct {
	ID          string `json:"id,omitempty"`
	SchemaID    string `json:"schemaId"`
	Version     string `json:"version"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	StateID     string `json:"stateId,omitempty"`
	Type        string `json:"type,omitempty"`
}

// State returns the lifecycle state of v.
func (v SchemaVersion) State() State { return ParseState(v.StateID) }

// Event is an event object.
type Event struct {
	ID                  string `json:"id,omitempty"`
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	Shared              bool   `json:"shared"`
	NumberOfVersions    int    `json:"numberOfVersions,omitempty"`
	Type                string `json:"type,omitempty"`
}

// AddressLevel is one level of a topic address.
type AddressLevel struct {
	Name             string `json:"name"`
	AddressLevelType string `json:"addressLevelType"`
}

// Address is an ordered topic address.
type Address struct {
	AddressLevels []AddressLevel `json:"addressLevels"`
	AddressType   string         `json:"addressType,omitempty"`
}

// DeliveryDescriptor is the broker routing metadata of an event version.
type DeliveryDescriptor struct {
	BrokerType string  `json:"brokerType"`
	Address    Address `json:"address"`
}

// EventVersion is one revision of an Event.
type EventVersion struct {
	ID                 string              `json:"id,omitempty"`
	EventID            string              `json:"eventId"`
	Version            string              `json:"version"`
	DisplayName        string              `json:"displayName,omitempty"`
	Description        string              `json:"description,omitempty"`
	SchemaVersionID    string              `json:"schemaVersionId,omitempty"`
	DeliveryDescriptor *DeliveryDescriptor `json:"deliveryDescriptor,omitempty"`
	StateID            string              `json:"stateId,omitempty"`
	Type               string              `json:"type,omitempty"`
}

// State returns the lifecycle state of v.
func (v EventVersion) State() State { return ParseState(v.StateID) }

// Application is an application object.
type Application struct {
	ID                  string `json:"id,omitempty"`
	ApplicationDomainID string `json:"applicationDomainId"`
	Name                string `json:"name"`
	ApplicationType     string `json:"applicationType,omitempty"`
	BrokerType          string `json:"brokerType,omitempty"`
	NumberOfVersions    int    `json:"numberOfVersions,omitempty"`
	Type                string `json:"type,omitempty"`
}

// ApplicationVersion is one revision of an Application.
type ApplicationVersion struct {
	ID                              string   `json:"id,omitempty"`
	ApplicationID                   string   `json:"applicationId"`
	Version                         string   `json:"version"`
	DisplayName                     string   `json:"displayName,omitempty"`
	Description                     string   `json:"description,omitempty"`
	DeclaredProducedEventVersionIDs []string `json:"declaredProducedEventVersionIds"`
	DeclaredConsumedEventVersionIDs []string `json:"declaredConsumedEventVersionIds"`
	StateID                         string   `json:"stateId,omitempty"`
	Type                            string   `json:"type,omitempty"`
}

// State returns the lifecycle state of v.
func (v ApplicationVersion) State() State { return ParseState(v.StateID) }

// Pagination describes the page returned by a list call. Only a single
// page is ever fetched; callers page by passing pageNumber in params.
type Pagination struct {
	PageNumber int `json:"pageNumber"`
	Count      int `json:"count"`
	PageSize   int `json:"pageSize"`
	NextPage   int `json:"nextPage,omitempty"`
	TotalPages int `json:"totalPages"`
}

// Meta is the metadata envelope of a list response.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// ListResponse is one page of a list endpoint.
type ListResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// response is the envelope of single-object endpoints.
type response[T any] struct {
	Data T `json:"data"`
}

// errorEnvelope is the body of a non-2xx response.
type errorEnvelope struct {
	ErrorKey string `json:"errorKey"`
	Message  string `json:"message"`
}
