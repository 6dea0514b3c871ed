package localhost

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

const (
	// ModuleName defines the 09-localhost light client module name
	ModuleName = "09-localhost"
)

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule registers the 09-localhost client type with the core IBC client router.
type LightClientModule struct{}

// NewLightClientModule creates and returns a new 09-localhost LightClientModule.
func NewLightClientModule() *LightClientModule {
	return &LightClientModule{}
}

// ClientType returns the 09-localhost client type.
func (LightClientModule) ClientType() string {
	return exported.Localhost
}

// RegisterInterfaces registers the 09-localhost types with the interface registry.
func (LightClientModule) RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	RegisterInterfaces(registry)
}

// RegisterInterfaces registers the localhost concrete client-related
// implementations and interfaces.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*exported.ClientState)(nil),
		&ClientState{},
	)
	registry.RegisterImplementations(
		(*exported.ConsensusState)(nil),
		&ConsensusState{},
	)
	registry.RegisterImplementations(
		(*exported.ClientMessage)(nil),
		&Header{},
		&Misbehaviour{},
	)
}
