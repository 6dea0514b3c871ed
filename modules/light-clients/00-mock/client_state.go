package mock

import (
	"strings"
	"time"

	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ClientState = (*ClientState)(nil)

// ClientState defines the 00-mock client state.
type ClientState struct {
	ChainId      string              `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	LatestHeight clienttypes.Height  `protobuf:"bytes,2,opt,name=latest_height,json=latestHeight,proto3" json:"latest_height"`
	FrozenHeight *clienttypes.Height `protobuf:"bytes,3,opt,name=frozen_height,json=frozenHeight,proto3" json:"frozen_height,omitempty"`
	// duration in nanoseconds for which a consensus state is trusted
	TrustingPeriod uint64 `protobuf:"varint,4,opt,name=trusting_period,json=trustingPeriod,proto3" json:"trusting_period,omitempty"`
}

// Reset implements proto.Message.
func (m *ClientState) Reset() {
	*m = ClientState{}
}

// String implements proto.Message.
func (m *ClientState) String() string {
	return proto.CompactTextString(m)
}

// ProtoMessage implements proto.Message.
func (*ClientState) ProtoMessage() {}

// XXX_MessageName returns the fully qualified protobuf name of ClientState.
func (*ClientState) XXX_MessageName() string {
	return "ibc.lightclients.mock.v1.ClientState"
}

func init() {
	proto.RegisterType((*ClientState)(nil), "ibc.lightclients.mock.v1.ClientState")
	proto.RegisterType((*ConsensusState)(nil), "ibc.lightclients.mock.v1.ConsensusState")
	proto.RegisterType((*Header)(nil), "ibc.lightclients.mock.v1.Header")
	proto.RegisterType((*Misbehaviour)(nil), "ibc.lightclients.mock.v1.Misbehaviour")
}

// NewClientState creates a new 00-mock ClientState instance.
func NewClientState(chainID string, height clienttypes.Height, trustingPeriod time.Duration) *ClientState {
	return &ClientState{
		ChainId:        chainID,
		LatestHeight:   height,
		TrustingPeriod: uint64(trustingPeriod),
	}
}

// ClientType returns the 00-mock client type.
func (ClientState) ClientType() string {
	return ModuleName
}

// GetLatestHeight returns the latest height of the client.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if strings.TrimSpace(cs.ChainId) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidChainID, "chain id cannot be blank")
	}
	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrap(ibcerrors.ErrInvalidHeight, "revision height cannot be zero")
	}
	if cs.TrustingPeriod == 0 {
		return errorsmod.Wrap(ErrInvalidTrustingPeriod, "trusting period cannot be zero")
	}
	return nil
}

// Status returns the status of the client. A frozen client is Frozen, a client whose latest
// consensus state is older than the trusting period is Expired.
func (cs ClientState) Status(ctx exported.ValidationContext, clientID string) exported.Status {
	if cs.FrozenHeight != nil {
		return exported.Frozen
	}

	consState, found := ctx.GetClientConsensusState(clientID, cs.LatestHeight)
	if !found {
		// if the client state does not have an associated consensus state for its latest height
		// then it must be expired
		return exported.Expired
	}

	elapsed := time.Duration(ctx.HostTimestamp()) - time.Duration(consState.GetTimestamp())
	if cs.Expired(elapsed) {
		return exported.Expired
	}

	return exported.Active
}

// ValidateProofHeight returns an error if the proof height is beyond the latest height of the client.
func (cs ClientState) ValidateProofHeight(proofHeight exported.Height) error {
	if cs.LatestHeight.LT(proofHeight) {
		return errorsmod.Wrapf(
			clienttypes.ErrInvalidProofHeight,
			"client state height < proof height (%s < %s), please ensure the client has been updated", cs.LatestHeight, proofHeight,
		)
	}
	return nil
}

// ConfirmNotFrozen returns an error if the client has been frozen.
func (cs ClientState) ConfirmNotFrozen() error {
	if cs.FrozenHeight != nil {
		return errorsmod.Wrapf(clienttypes.ErrClientFrozen, "client is frozen at height %s", cs.FrozenHeight)
	}
	return nil
}

// Expired returns true if elapsed exceeds the trusting period.
func (cs ClientState) Expired(elapsed time.Duration) bool {
	return elapsed > time.Duration(cs.TrustingPeriod)
}

// GetTimestampAtHeight returns the timestamp of the consensus state stored at the provided height.
func (ClientState) GetTimestampAtHeight(ctx exported.ValidationContext, clientID string, height exported.Height) (uint64, error) {
	consState, found := ctx.GetClientConsensusState(clientID, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%s)", height)
	}
	return consState.GetTimestamp(), nil
}

// Initialise stores the client state and the initial consensus state at the latest height.
func (cs ClientState) Initialise(ctx exported.ExecutionContext, clientID string, consState exported.ConsensusState) error {
	consensusState, ok := consState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "invalid initial consensus state. expected type: %T, got: %T",
			&ConsensusState{}, consState)
	}

	if err := consensusState.ValidateBasic(); err != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, err.Error())
	}

	if err := ctx.SetClientState(clientID, &cs); err != nil {
		return err
	}

	return ctx.SetClientConsensusState(clientID, cs.LatestHeight, consensusState)
}

// VerifyUpgradeClient returns an error. The 00-mock client cannot be upgraded.
func (ClientState) VerifyUpgradeClient(
	_ exported.ClientState,
	_ exported.ConsensusState,
	_, _ exported.Proof,
	_ exported.Root,
) error {
	return errorsmod.Wrap(ibcerrors.ErrUnsupported, "cannot upgrade 00-mock client")
}

// UpdateStateWithUpgradeClient returns an error. The 00-mock client cannot be upgraded.
func (ClientState) UpdateStateWithUpgradeClient(
	_ exported.ExecutionContext,
	_ string,
	_ exported.ClientState,
	_ exported.ConsensusState,
) (exported.ClientState, exported.ConsensusState, error) {
	return nil, nil, errorsmod.Wrap(ibcerrors.ErrUnsupported, "cannot upgrade 00-mock client")
}

// VerifyMembership verifies a proof of the existence of a value at the path formed by prefix and path
// under root.
func (cs ClientState) VerifyMembership(
	_ exported.ValidationContext,
	prefix exported.Prefix,
	proof []byte,
	root exported.Root,
	path exported.Path,
	value []byte,
) error {
	merkleProof, merklePath, err := cs.proofArgs(prefix, proof, path)
	if err != nil {
		return err
	}

	if err := merkleProof.VerifyMembership(commitmenttypes.GetSDKSpecs(), root, merklePath, value); err != nil {
		return errorsmod.Wrap(clienttypes.ErrFailedMembershipVerification, err.Error())
	}

	return nil
}

// VerifyNonMembership verifies a proof of the absence of a value at the path formed by prefix and path
// under root.
func (cs ClientState) VerifyNonMembership(
	_ exported.ValidationContext,
	prefix exported.Prefix,
	proof []byte,
	root exported.Root,
	path exported.Path,
) error {
	merkleProof, merklePath, err := cs.proofArgs(prefix, proof, path)
	if err != nil {
		return err
	}

	if err := merkleProof.VerifyNonMembership(commitmenttypes.GetSDKSpecs(), root, merklePath); err != nil {
		return errorsmod.Wrap(clienttypes.ErrFailedNonMembershipVerification, err.Error())
	}

	return nil
}

// proofArgs decodes the proof and applies the prefix to the path.
func (cs ClientState) proofArgs(prefix exported.Prefix, proof []byte, path exported.Path) (commitmenttypes.MerkleProof, commitmenttypes.MerklePath, error) {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return commitmenttypes.MerkleProof{}, commitmenttypes.MerklePath{}, err
	}

	merkleProof, err := commitmenttypes.UnmarshalMerkleProof(proof)
	if err != nil {
		return commitmenttypes.MerkleProof{}, commitmenttypes.MerklePath{}, errorsmod.Wrap(commitmenttypes.ErrInvalidProof, err.Error())
	}

	merklePath, ok := path.(commitmenttypes.MerklePath)
	if !ok {
		return commitmenttypes.MerkleProof{}, commitmenttypes.MerklePath{}, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected %T, got %T", commitmenttypes.MerklePath{}, path)
	}

	merklePath, err = commitmenttypes.ApplyPrefix(prefix, merklePath)
	if err != nil {
		return commitmenttypes.MerkleProof{}, commitmenttypes.MerklePath{}, err
	}

	return merkleProof, merklePath, nil
}
