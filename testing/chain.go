package ibctesting

import (
	"testing"
	"time"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	clientkeeper "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/keeper"
	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	mock "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/00-mock"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
)

// TestChain is a testing struct that wraps a commit multistore with the IBC and upgrade stores
// mounted and a client keeper routing the 09-localhost and 00-mock client types. Every call to
// NextBlock commits the stores and begins a new block whose header carries the resulting app hash.
type TestChain struct {
	TB testing.TB

	ChainID       string
	DB            dbm.DB
	CMS           storetypes.CommitMultiStore
	StoreKey      *storetypes.KVStoreKey
	UpgradeKey    *storetypes.KVStoreKey
	Registry      codectypes.InterfaceRegistry
	Codec         codec.Codec
	Keeper        *clientkeeper.Keeper
	CurrentHeader cmtproto.Header // header for current block height
	LastCommitID  storetypes.CommitID
}

// NewTestChain initializes a new TestChain with the default chain-id and default client params.
// The stores are committed once so the first block already carries a non-empty app hash.
func NewTestChain(tb testing.TB) *TestChain {
	tb.Helper()
	return NewTestChainWithID(tb, DefaultChainID)
}

// NewTestChainWithID initializes a new TestChain with the provided chain-id.
func NewTestChainWithID(tb testing.TB, chainID string) *TestChain {
	tb.Helper()

	db := dbm.NewMemDB()
	cms := rootmulti.NewStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())

	storeKey := storetypes.NewKVStoreKey(exported.StoreKey)
	upgradeKey := storetypes.NewKVStoreKey(UpgradeStoreKey)
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, nil)
	cms.MountStoreWithDB(upgradeKey, storetypes.StoreTypeIAVL, nil)
	require.NoError(tb, cms.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	router := clienttypes.NewRouter().
		AddRoute(localhost.NewLightClientModule()).
		AddRoute(mock.NewLightClientModule())

	chain := &TestChain{
		TB:         tb,
		ChainID:    chainID,
		DB:         db,
		CMS:        cms,
		StoreKey:   storeKey,
		UpgradeKey: upgradeKey,
		Registry:   registry,
		Codec:      cdc,
		Keeper:     clientkeeper.NewKeeper(cdc, registry, storeKey, router),
		CurrentHeader: cmtproto.Header{
			ChainID: chainID,
			Height:  1,
			Time:    globalStartTime,
		},
	}

	chain.Keeper.SetParams(chain.GetContext(), clienttypes.DefaultParams())
	chain.NextBlock()

	return chain
}

// GetContext returns the current context for the chain. Writes made through the context
// land in the working state of the multistore and are committed on the next call to NextBlock.
func (chain *TestChain) GetContext() sdk.Context {
	return sdk.NewContext(chain.CMS, chain.CurrentHeader, false, log.NewTestLogger(chain.TB))
}

// NextBlock commits the current block and sets up the header of the next one. The new header
// carries the app hash of the committed state and a block time TimeIncrement later.
func (chain *TestChain) NextBlock() {
	chain.LastCommitID = chain.CMS.Commit()

	chain.CurrentHeader = cmtproto.Header{
		ChainID: chain.ChainID,
		Height:  chain.LastCommitID.Version + 1,
		Time:    chain.CurrentHeader.Time.Add(TimeIncrement),
		AppHash: chain.LastCommitID.Hash,
	}
}

// IncrementTimeBy moves the block time of the current header forward by the given duration.
func (chain *TestChain) IncrementTimeBy(increment time.Duration) {
	chain.CurrentHeader.Time = chain.CurrentHeader.Time.Add(increment)
}

// GetSelfHeight returns the height of the current block using the revision of the chain-id.
func (chain *TestChain) GetSelfHeight() clienttypes.Height {
	return clienttypes.NewHeight(clienttypes.ParseChainID(chain.ChainID), uint64(chain.CurrentHeader.Height))
}

// GetTimestamp returns the block time of the current block in unix nanoseconds.
func (chain *TestChain) GetTimestamp() uint64 {
	return uint64(chain.CurrentHeader.Time.UnixNano())
}

// GetCommitmentRoot returns the app hash carried by the current block header.
func (chain *TestChain) GetCommitmentRoot() []byte {
	return chain.CurrentHeader.AppHash
}

// GetPrefix returns the commitment prefix of the IBC store.
func (chain *TestChain) GetPrefix() commitmenttypes.MerklePrefix {
	return commitmenttypes.NewMerklePrefix([]byte(chain.StoreKey.Name()))
}

// CreateClient packs the provided client state and consensus state and creates a client through the keeper.
func (chain *TestChain) CreateClient(clientState exported.ClientState, consensusState exported.ConsensusState) (string, error) {
	clientStateAny, err := clienttypes.PackClientState(clientState)
	require.NoError(chain.TB, err)

	consensusStateAny, err := clienttypes.PackConsensusState(consensusState)
	require.NoError(chain.TB, err)

	return chain.Keeper.CreateClient(chain.GetContext(), clientStateAny, consensusStateAny)
}

// UpdateClient packs the provided client message and submits it as a client update through the keeper.
func (chain *TestChain) UpdateClient(clientID string, clientMsg exported.ClientMessage) error {
	clientMsgAny, err := clienttypes.PackClientMessage(clientMsg)
	require.NoError(chain.TB, err)

	return chain.Keeper.UpdateClient(chain.GetContext(), clientID, clientMsgAny)
}

// SubmitMisbehaviour packs the provided misbehaviour and submits it through the keeper.
func (chain *TestChain) SubmitMisbehaviour(clientID string, misbehaviour exported.ClientMessage) error {
	misbehaviourAny, err := clienttypes.PackClientMessage(misbehaviour)
	require.NoError(chain.TB, err)

	return chain.Keeper.SubmitMisbehaviour(chain.GetContext(), clientID, misbehaviourAny)
}

// GetClientState returns the client state stored for the provided client identifier.
func (chain *TestChain) GetClientState(clientID string) exported.ClientState {
	clientState, found := chain.Keeper.GetClientState(chain.GetContext(), clientID)
	require.True(chain.TB, found, "client %s not found", clientID)

	return clientState
}

// GetConsensusState returns the consensus state stored for the provided client identifier and height.
func (chain *TestChain) GetConsensusState(clientID string, height exported.Height) (exported.ConsensusState, bool) {
	return chain.Keeper.GetClientConsensusState(chain.GetContext(), clientID, height)
}

// NewLocalhostClientState returns a 09-localhost client state at the current height of the chain.
func (chain *TestChain) NewLocalhostClientState() *localhost.ClientState {
	return localhost.NewClientState(chain.ChainID, chain.GetSelfHeight())
}

// NewLocalhostConsensusState returns a 09-localhost consensus state committing to the current
// app hash and block time.
func (chain *TestChain) NewLocalhostConsensusState() *localhost.ConsensusState {
	return localhost.NewConsensusState(commitmenttypes.NewMerkleRoot(chain.GetCommitmentRoot()), chain.GetTimestamp())
}

// LocalhostHeader returns the 09-localhost header observing the current block.
func (chain *TestChain) LocalhostHeader() *localhost.Header {
	return localhost.NewHeader(chain.GetSelfHeight(), chain.GetTimestamp())
}

// CreateLocalhostClient creates the 09-localhost client at the current height of the chain.
func (chain *TestChain) CreateLocalhostClient() string {
	clientID, err := chain.CreateClient(chain.NewLocalhostClientState(), chain.NewLocalhostConsensusState())
	require.NoError(chain.TB, err)

	return clientID
}

// UpdateLocalhostClient updates the 09-localhost client to the current block.
func (chain *TestChain) UpdateLocalhostClient() error {
	return chain.UpdateClient(exported.LocalhostClientID, chain.LocalhostHeader())
}

// MockHeader returns a 00-mock header committing to the current app hash at the current height.
func (chain *TestChain) MockHeader() *mock.Header {
	return mock.NewHeader(chain.GetSelfHeight(), chain.GetCommitmentRoot(), chain.GetTimestamp())
}

// CreateMockClient creates a 00-mock client tracking the current block of the chain.
func (chain *TestChain) CreateMockClient() string {
	header := chain.MockHeader()
	clientState := mock.NewClientState(chain.ChainID, header.Height, TrustingPeriod)

	clientID, err := chain.CreateClient(clientState, header.ConsensusState())
	require.NoError(chain.TB, err)

	return clientID
}

// SetUpgradedState writes the upgraded client state and consensus state to the upgrade store under
// the upgrade keys of the provided last height, the way an upgrade plan commits them.
func (chain *TestChain) SetUpgradedState(lastHeight uint64, upgradedClient exported.ClientState, upgradedConsState exported.ConsensusState) {
	store := chain.GetContext().KVStore(chain.UpgradeKey)
	store.Set(host.UpgradedClientKey(lastHeight), clienttypes.MustMarshalClientState(upgradedClient))

	bz, err := clienttypes.MarshalConsensusState(upgradedConsState)
	require.NoError(chain.TB, err)
	store.Set(host.UpgradedConsStateKey(lastHeight), bz)
}
