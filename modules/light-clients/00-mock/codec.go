package mock

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// ModuleName defines the 00-mock light client module name
const ModuleName = exported.Mock

var _ exported.LightClientModule = (*LightClientModule)(nil)

// LightClientModule registers the 00-mock client type with the core IBC client router.
type LightClientModule struct{}

// NewLightClientModule creates and returns a new 00-mock LightClientModule.
func NewLightClientModule() *LightClientModule {
	return &LightClientModule{}
}

// ClientType returns the 00-mock client type.
func (LightClientModule) ClientType() string {
	return ModuleName
}

// RegisterInterfaces registers the 00-mock types with the interface registry.
func (LightClientModule) RegisterInterfaces(registry codectypes.InterfaceRegistry) {
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
