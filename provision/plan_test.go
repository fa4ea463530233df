package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlanYAML = `
domain:
  name: orders
  description: Order management
  unique_topic_address_enforcement: true
schemas:
  - name: OrderSchema
    content_type: json
    schema_type: jsonSchema
    version: 1.0.0
    display_name: Order
    state: draft
    content:
      file: schemas/order.json
  - name: PaymentSchema
    version: 1.0.0
    content:
      registry:
        subject: payments-value
events:
  - name: OrderCreated
    version: 1.0.0
    schema: OrderSchema
    topic: orders/{region}/created
  - name: PaymentCaptured
    version: 2.1.0
    schema: PaymentSchema
    broker_type: kafka
    topic: payments/captured
applications:
  - name: OrderService
    version: 1.0.0
    produces: [OrderCreated]
    consumes: [PaymentCaptured]
`

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(samplePlanYAML))
	require.NoError(t, err)

	assert.Equal(t, "orders", plan.Domain.Name)
	assert.True(t, plan.Domain.UniqueTopicAddressEnforcement)
	require.Len(t, plan.Schemas, 2)
	assert.Equal(t, "1.0.0", plan.Schemas[0].Version.Version)
	assert.Equal(t, "Order", plan.Schemas[0].Version.DisplayName)
	assert.Equal(t, "1", plan.Schemas[0].Version.stateID())
	assert.Equal(t, "schemas/order.json", plan.Schemas[0].Content.File)
	require.NotNil(t, plan.Schemas[1].Content.Registry)
	assert.Equal(t, "payments-value", plan.Schemas[1].Content.Registry.Subject)

	require.Len(t, plan.Events, 2)
	assert.Equal(t, "kafka", plan.Events[1].BrokerType)
	require.Len(t, plan.Applications, 1)
	assert.Equal(t, []string{"OrderCreated"}, plan.Applications[0].Produces)
	assert.Equal(t, []string{"PaymentCaptured"}, plan.Applications[0].Consumes)
}

func TestParsePlanRejectsUnknownFields(t *testing.T) {
	_, err := ParsePlan([]byte("domain:\n  name: orders\n  nmae: typo\n"))
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestParsePlanEmptyDocument(t *testing.T) {
	plan, err := ParsePlan(nil)
	require.NoError(t, err)
	assert.ErrorIs(t, plan.Validate(), ErrInvalidPlan)
}

func TestParsePlanLeavesDomainToCaller(t *testing.T) {
	plan, err := ParsePlan([]byte(`
schemas:
  - {name: S, version: 1.0.0, content: {inline: "{}"}}
`))
	require.NoError(t, err)
	assert.ErrorIs(t, plan.Validate(), ErrInvalidPlan)
	assert.NoError(t, plan.WithDomainName("orders").Validate())
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Plan)
		want   string
	}{
		{
			name:   "missing domain name",
			mutate: func(p *Plan) { p.Domain.Name = "" },
			want:   "domain name is required",
		},
		{
			name:   "duplicate schema",
			mutate: func(p *Plan) { p.Schemas = append(p.Schemas, p.Schemas[0]) },
			want:   `schema "Schema1" is declared twice`,
		},
		{
			name:   "schema without version",
			mutate: func(p *Plan) { p.Schemas[0].Version.Version = "" },
			want:   `schema "Schema1" has no version`,
		},
		{
			name:   "event version not strict semver",
			mutate: func(p *Plan) { p.Events[0].Version.Version = "1.0" },
			want:   `event "SampleEvent" version "1.0"`,
		},
		{
			name:   "application version with v prefix",
			mutate: func(p *Plan) { p.Applications[0].Version.Version = "v1.0.0" },
			want:   `application "SampleApplication" version "v1.0.0"`,
		},
		{
			name:   "unknown state",
			mutate: func(p *Plan) { p.Events[0].Version.State = "frozen" },
			want:   `unknown state "frozen"`,
		},
		{
			name:   "two content sources",
			mutate: func(p *Plan) { p.Schemas[0].Content.File = "order.json" },
			want:   "exactly one",
		},
		{
			name:   "no content source",
			mutate: func(p *Plan) { p.Schemas[0].Content = ContentSource{} },
			want:   "content needs one of",
		},
		{
			name:   "object source without key",
			mutate: func(p *Plan) { p.Schemas[0].Content = ContentSource{Object: &ObjectSource{Bucket: "schemas"}} },
			want:   "bucket and a key",
		},
		{
			name:   "registry source with subject and id",
			mutate: func(p *Plan) { p.Schemas[0].Content = ContentSource{Registry: &RegistrySource{Subject: "s", ID: 3}} },
			want:   "not both",
		},
		{
			name:   "unknown schema reference",
			mutate: func(p *Plan) { p.Events[0].Schema = "Missing" },
			want:   `references unknown schema "Missing"`,
		},
		{
			name:   "unknown broker type",
			mutate: func(p *Plan) { p.Events[0].BrokerType = "mqtt" },
			want:   `unknown broker type "mqtt"`,
		},
		{
			name:   "bad topic",
			mutate: func(p *Plan) { p.Events[0].Topic = "a//b" },
			want:   "empty level",
		},
		{
			name:   "unknown produced event",
			mutate: func(p *Plan) { p.Applications[0].Produces = []string{"Nope"} },
			want:   `references unknown event "Nope"`,
		},
		{
			name:   "unknown consumed event",
			mutate: func(p *Plan) { p.Applications[0].Consumes = []string{"Nope"} },
			want:   `references unknown event "Nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DefaultPlan("orders")
			tt.mutate(plan)

			err := plan.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPlan)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultPlanIsValid(t *testing.T) {
	plan := DefaultPlan("sample-domain")
	require.NoError(t, plan.Validate())

	assert.Equal(t, "sample-domain", plan.Domain.Name)
	require.Len(t, plan.Events, 1)
	levels, err := ParseTopic(plan.Events[0].Topic)
	require.NoError(t, err)
	assert.Len(t, levels, 4)
}

func TestWithDomainName(t *testing.T) {
	plan := DefaultPlan("a")

	assert.Equal(t, "b", plan.WithDomainName("b").Domain.Name)
	assert.Equal(t, "a", plan.WithDomainName("").Domain.Name)
	assert.Equal(t, "a", plan.Domain.Name, "original plan is not modified")
}

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlanYAML), 0o600))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, dir, plan.baseDir)
	assert.Equal(t, "orders", plan.Domain.Name)

	_, err = LoadPlan(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
