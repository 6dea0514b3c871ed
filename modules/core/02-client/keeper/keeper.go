package keeper

import (
	"bytes"
	"errors"
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// Keeper represents a type that grants read and write permissions to any client
// state information
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec
	registry codectypes.InterfaceRegistry
	router   *types.Router
}

// NewKeeper creates a new NewKeeper instance. The concrete types of every client type
// in the router are registered with the interface registry.
func NewKeeper(cdc codec.BinaryCodec, registry codectypes.InterfaceRegistry, key storetypes.StoreKey, router *types.Router) *Keeper {
	types.RegisterInterfaces(registry)
	commitmenttypes.RegisterInterfaces(registry)
	router.RegisterInterfaces(registry)

	return &Keeper{
		storeKey: key,
		cdc:      cdc,
		registry: registry,
		router:   router,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s/%s", exported.ModuleName, types.SubModuleName))
}

// GetRouter returns the light client router.
func (k *Keeper) GetRouter() *types.Router {
	return k.router
}

// InterfaceRegistry returns the registry used to decode client envelopes.
func (k *Keeper) InterfaceRegistry() codectypes.InterfaceRegistry {
	return k.registry
}

// GenerateClientIdentifier returns the next client identifier.
func (k *Keeper) GenerateClientIdentifier(ctx sdk.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// GetClientState gets a particular client from the store
func (k *Keeper) GetClientState(ctx sdk.Context, clientID string) (exported.ClientState, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.FullClientStateKey(clientID))
	if len(bz) == 0 {
		return nil, false
	}

	clientState, err := types.UnmarshalClientState(k.registry, bz)
	if err != nil {
		panic(fmt.Errorf("failed to decode client state of client %s: %w", clientID, err))
	}

	return clientState, true
}

// SetClientState sets a particular Client to the store
func (k *Keeper) SetClientState(ctx sdk.Context, clientID string, clientState exported.ClientState) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.FullClientStateKey(clientID), types.MustMarshalClientState(clientState))
}

// GetClientConsensusState gets the stored consensus state from a client at a given height.
func (k *Keeper) GetClientConsensusState(ctx sdk.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.FullConsensusStateKey(clientID, height))
	if len(bz) == 0 {
		return nil, false
	}

	consensusState, err := types.UnmarshalConsensusState(k.registry, bz)
	if err != nil {
		panic(fmt.Errorf("failed to decode consensus state of client %s at height %s: %w", clientID, height, err))
	}

	return consensusState, true
}

// SetClientConsensusState sets a ConsensusState to a particular client at the given
// height
func (k *Keeper) SetClientConsensusState(ctx sdk.Context, clientID string, height exported.Height, consensusState exported.ConsensusState) {
	bz, err := types.MarshalConsensusState(consensusState)
	if err != nil {
		panic(err)
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(host.FullConsensusStateKey(clientID, height), bz)
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate namespaces.
func (k *Keeper) ClientStore(ctx sdk.Context, clientID string) storetypes.KVStore {
	clientPrefix := []byte(fmt.Sprintf("%s/%s/", host.KeyClientStorePrefix, clientID))
	return prefix.NewStore(ctx.KVStore(k.storeKey), clientPrefix)
}

// IterateConsensusStates iterates over the consensus states stored for a client in ascending key order
// and calls cb on each of them. Iteration stops when cb returns true.
func (k *Keeper) IterateConsensusStates(ctx sdk.Context, clientID string, cb func(height types.Height, consensusState exported.ConsensusState) (stop bool)) {
	store := k.ClientStore(ctx, clientID)
	iterator := storetypes.KVStorePrefixIterator(store, []byte(host.KeyConsensusStatePrefix+"/"))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := bytes.TrimPrefix(iterator.Key(), []byte(host.KeyConsensusStatePrefix+"/"))
		// filter any metadata stored under consensus state key
		if bytes.Contains(key, []byte("/")) {
			continue
		}

		height, err := types.ParseHeight(string(key))
		if err != nil {
			panic(fmt.Errorf("failed to parse consensus state height of client %s: %w", clientID, err))
		}

		consensusState, err := types.UnmarshalConsensusState(k.registry, iterator.Value())
		if err != nil {
			panic(fmt.Errorf("failed to decode consensus state of client %s at height %s: %w", clientID, height, err))
		}

		if cb(height, consensusState) {
			break
		}
	}
}

// GetConsensusStateHeights returns the heights of all consensus states stored for a client.
func (k *Keeper) GetConsensusStateHeights(ctx sdk.Context, clientID string) []types.Height {
	var heights []types.Height
	k.IterateConsensusStates(ctx, clientID, func(height types.Height, _ exported.ConsensusState) bool {
		heights = append(heights, height)
		return false
	})

	return heights
}

// GetNextClientSequence gets the next client sequence from the store.
func (k *Keeper) GetNextClientSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.NextClientSequenceKey())
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k *Keeper) SetNextClientSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set(host.NextClientSequenceKey(), bz)
}

// GetParams returns the total set of ibc-client parameters.
func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.ClientParamsKey())
	if bz == nil { // only panic on unset params and not on empty params
		panic(errors.New("client params are not set in store"))
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams sets the total set of ibc-client parameters.
func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshal(&params)
	store.Set(host.ClientParamsKey(), bz)
}

// GetClientStatus returns the status for a client state given a client identifier. If the client type is not in the allowed
// clients param field, Unauthorized is returned, otherwise the client state status is returned.
func (k *Keeper) GetClientStatus(ctx sdk.Context, clientID string) exported.Status {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return exported.Unknown
	}

	if !k.GetParams(ctx).IsAllowedClient(clientState.ClientType()) {
		return exported.Unauthorized
	}

	return clientState.Status(k.HostContext(ctx), clientID)
}

// GetCommitmentPrefix returns the prefix under which the host commits IBC state.
func (k *Keeper) GetCommitmentPrefix() exported.Prefix {
	return commitmenttypes.NewMerklePrefix([]byte(k.storeKey.Name()))
}
