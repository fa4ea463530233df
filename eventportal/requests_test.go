package eventportal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidation(t *testing.T) {
	levels := func(types ...string) *DeliveryDescriptor {
		d := &DeliveryDescriptor{BrokerType: BrokerTypeSolace}
		for _, typ := range types {
			d.Address.AddressLevels = append(d.Address.AddressLevels, AddressLevel{Name: "level", AddressLevelType: typ})
		}
		return d
	}

	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr bool
	}{
		{"domain ok", ApplicationDomainRequest{Name: "Acme"}, false},
		{"domain without name", ApplicationDomainRequest{}, true},
		{"schema ok", SchemaRequest{ApplicationDomainID: "d", Name: "s"}, false},
		{"schema without domain", SchemaRequest{Name: "s"}, true},
		{"schema version ok", SchemaVersionRequest{SchemaID: "s", Version: "1.0.0"}, false},
		{"schema version with state", SchemaVersionRequest{SchemaID: "s", Version: "1.0.0", StateID: "2"}, false},
		{"schema version bad state", SchemaVersionRequest{SchemaID: "s", Version: "1.0.0", StateID: "9"}, true},
		{"schema version non-canonical state", SchemaVersionRequest{SchemaID: "s", Version: "1.0.0", StateID: "01"}, true},
		{"schema version loose semver", SchemaVersionRequest{SchemaID: "s", Version: "v1.0"}, true},
		{"schema version prerelease", SchemaVersionRequest{SchemaID: "s", Version: "1.0.0-rc.1"}, false},
		{"schema version missing", SchemaVersionRequest{SchemaID: "s"}, true},
		{"event ok", EventRequest{ApplicationDomainID: "d", Name: "e"}, false},
		{"event without name", EventRequest{ApplicationDomainID: "d"}, true},
		{"event version ok", EventVersionRequest{EventID: "e", Version: "0.0.1", DeliveryDescriptor: levels(AddressLevelLiteral, AddressLevelVariable)}, false},
		{"event version bad level", EventVersionRequest{EventID: "e", Version: "0.0.1", DeliveryDescriptor: levels("wildcard")}, true},
		{"event version without parent", EventVersionRequest{Version: "0.0.1"}, true},
		{"application ok", ApplicationRequest{ApplicationDomainID: "d", Name: "a"}, false},
		{"application version ok", ApplicationVersionRequest{ApplicationID: "a", Version: "2.0.0"}, false},
		{"application version bad", ApplicationVersionRequest{ApplicationID: "a", Version: "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}
