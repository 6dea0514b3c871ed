package simulation

import (
	"bytes"
	"fmt"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// Value to the corresponding client type.
func NewDecodeStore(registry codectypes.InterfaceRegistry, kvA, kvB kv.Pair) (string, bool) {
	switch {
	case bytes.HasPrefix(kvA.Key, host.KeyClientStorePrefix) && bytes.HasSuffix(kvA.Key, []byte(host.KeyClientState)):
		clientStateA := mustUnmarshal(types.UnmarshalClientState(registry, kvA.Value))
		clientStateB := mustUnmarshal(types.UnmarshalClientState(registry, kvB.Value))
		return fmt.Sprintf("ClientState A: %v\nClientState B: %v", clientStateA, clientStateB), true

	case bytes.HasPrefix(kvA.Key, host.KeyClientStorePrefix) && bytes.Contains(kvA.Key, []byte(host.KeyConsensusStatePrefix)):
		consensusStateA := mustUnmarshal(types.UnmarshalConsensusState(registry, kvA.Value))
		consensusStateB := mustUnmarshal(types.UnmarshalConsensusState(registry, kvB.Value))
		return fmt.Sprintf("ConsensusState A: %v\nConsensusState B: %v", consensusStateA, consensusStateB), true

	default:
		return "", false
	}
}

func mustUnmarshal[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
