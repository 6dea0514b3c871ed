package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cosmos/gogoproto/proto"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// DefaultAllowedClients are the default clients for the AllowedClients parameter.
var DefaultAllowedClients = []string{exported.Localhost, exported.Mock}

// Params defines the set of IBC light client parameters.
type Params struct {
	// allowed_clients defines the list of allowed client state types which can be created
	// and interacted with.
	AllowedClients []string `protobuf:"bytes,1,rep,name=allowed_clients,json=allowedClients,proto3" json:"allowed_clients,omitempty"`
}

// Reset implements proto.Message.
func (m *Params) Reset() {
	*m = Params{}
}

// String implements proto.Message.
func (m *Params) String() string {
	return proto.CompactTextString(m)
}

// ProtoMessage implements proto.Message.
func (*Params) ProtoMessage() {}

// XXX_MessageName returns the fully qualified protobuf name of Params.
func (*Params) XXX_MessageName() string {
	return "ibc.core.client.v1.Params"
}

// NewParams creates a new parameter configuration for the ibc client module
func NewParams(allowedClients ...string) Params {
	return Params{
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the ibc-client module.
func DefaultParams() Params {
	return NewParams(DefaultAllowedClients...)
}

// Validate all ibc-client module parameters
func (p Params) Validate() error {
	return validateClients(p.AllowedClients)
}

// IsAllowedClient checks if the given client type is registered on the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	return slices.Contains(p.AllowedClients, clientType)
}

// validateClients checks that the given clients are not blank and there are no duplicates.
func validateClients(clients []string) error {
	foundClients := make(map[string]bool, len(clients))
	for i, clientType := range clients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
		if foundClients[clientType] {
			return fmt.Errorf("duplicate client type: %s", clientType)
		}
		foundClients[clientType] = true
	}

	return nil
}
