package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ExecutionContext = (*hostContext)(nil)

// hostContext exposes the host chain to a light client for the duration of a single call.
type hostContext struct {
	ctx    sdk.Context
	keeper *Keeper
}

// HostContext returns the host context handed to light clients for calls executed in ctx.
// Writes through the returned context land in ctx.
func (k *Keeper) HostContext(ctx sdk.Context) exported.ExecutionContext {
	return &hostContext{
		ctx:    ctx,
		keeper: k,
	}
}

// HostHeight returns the height of the current block, using the revision of the chain-id.
func (hc *hostContext) HostHeight() exported.Height {
	return types.GetSelfHeight(hc.ctx)
}

// HostTimestamp returns the block time of the current block in unix nanoseconds.
func (hc *hostContext) HostTimestamp() uint64 {
	return uint64(hc.ctx.BlockTime().UnixNano())
}

// HostCommitmentRoot returns the app hash of the current block header.
func (hc *hostContext) HostCommitmentRoot() exported.Root {
	return commitmenttypes.NewMerkleRoot(hc.ctx.BlockHeader().AppHash)
}

// HostCommitmentPrefix returns the prefix under which IBC state is committed.
func (hc *hostContext) HostCommitmentPrefix() exported.Prefix {
	return hc.keeper.GetCommitmentPrefix()
}

func (hc *hostContext) GetClientConsensusState(clientID string, height exported.Height) (exported.ConsensusState, bool) {
	return hc.keeper.GetClientConsensusState(hc.ctx, clientID, height)
}

// GetStoreValue reads a value from the IBC store.
func (hc *hostContext) GetStoreValue(key []byte) ([]byte, bool) {
	bz := hc.ctx.KVStore(hc.keeper.storeKey).Get(key)
	if bz == nil {
		return nil, false
	}

	return bz, true
}

func (hc *hostContext) SetClientState(clientID string, clientState exported.ClientState) error {
	bz, err := types.MarshalClientState(clientState)
	if err != nil {
		return err
	}

	hc.ctx.KVStore(hc.keeper.storeKey).Set(host.FullClientStateKey(clientID), bz)
	return nil
}

func (hc *hostContext) SetClientConsensusState(clientID string, height exported.Height, consensusState exported.ConsensusState) error {
	bz, err := types.MarshalConsensusState(consensusState)
	if err != nil {
		return err
	}

	hc.ctx.KVStore(hc.keeper.storeKey).Set(host.FullConsensusStateKey(clientID, height), bz)
	return nil
}
