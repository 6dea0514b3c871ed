package localhost

import (
	"bytes"
	"strings"
	"time"

	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// SentinelProof defines the 09-localhost sentinel proof.
// Submission of nil or empty proofs is disallowed in core IBC messaging.
// This serves as a placeholder value for relayers to leverage as the proof field in various message types.
// Localhost client state verification will fail if the sentinel proof value is not provided.
var SentinelProof = []byte{0x01}

var _ exported.ClientState = (*ClientState)(nil)

// ClientState defines the 09-localhost client state
type ClientState struct {
	// the chain-id of the host chain
	ChainId string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	// the latest block height observed by the client
	LatestHeight clienttypes.Height `protobuf:"bytes,2,opt,name=latest_height,json=latestHeight,proto3" json:"latest_height"`
	// the height at which misbehaviour was confirmed, nil while the client is active
	FrozenHeight *clienttypes.Height `protobuf:"bytes,3,opt,name=frozen_height,json=frozenHeight,proto3" json:"frozen_height,omitempty"`
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
	return "ibc.lightclients.localhost.v1.ClientState"
}

func init() {
	proto.RegisterType((*ClientState)(nil), "ibc.lightclients.localhost.v1.ClientState")
	proto.RegisterType((*ConsensusState)(nil), "ibc.lightclients.localhost.v1.ConsensusState")
	proto.RegisterType((*Header)(nil), "ibc.lightclients.localhost.v1.Header")
	proto.RegisterType((*Misbehaviour)(nil), "ibc.lightclients.localhost.v1.Misbehaviour")
}

// NewClientState creates a new 09-localhost ClientState instance.
func NewClientState(chainID string, height clienttypes.Height) *ClientState {
	return &ClientState{
		ChainId:      chainID,
		LatestHeight: height,
	}
}

// GetChainID returns the client state chain ID.
func (cs ClientState) GetChainID() string {
	return cs.ChainId
}

// ClientType returns the 09-localhost client type.
func (ClientState) ClientType() string {
	return exported.Localhost
}

// GetLatestHeight returns the 09-localhost client state latest height.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// IsFrozen returns true if misbehaviour has been confirmed for the client.
func (cs ClientState) IsFrozen() bool {
	return cs.FrozenHeight != nil
}

// Status returns Frozen once misbehaviour has been confirmed and Active otherwise.
// The 09-localhost client never expires.
func (cs ClientState) Status(_ exported.ValidationContext, _ string) exported.Status {
	if cs.IsFrozen() {
		return exported.Frozen
	}

	return exported.Active
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if strings.TrimSpace(cs.ChainId) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidChainID, "chain id cannot be blank")
	}

	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidHeight, "local revision height cannot be zero")
	}

	if cs.FrozenHeight != nil && cs.FrozenHeight.IsZero() {
		return errorsmod.Wrap(ibcerrors.ErrInvalidHeight, "frozen height cannot be zero once set")
	}

	return nil
}

// ValidateProofHeight returns an error if the proof height is beyond the latest height observed by the client.
func (cs ClientState) ValidateProofHeight(proofHeight exported.Height) error {
	if cs.LatestHeight.LT(proofHeight) {
		return errorsmod.Wrapf(
			clienttypes.ErrInvalidProofHeight,
			"client state height < proof height (%s < %s), please ensure the client has been updated", cs.LatestHeight, proofHeight,
		)
	}

	return nil
}

// ConfirmNotFrozen returns an error if misbehaviour has been confirmed for the client.
func (cs ClientState) ConfirmNotFrozen() error {
	if cs.IsFrozen() {
		return errorsmod.Wrapf(clienttypes.ErrClientFrozen, "client is frozen at height %s", cs.FrozenHeight)
	}

	return nil
}

// Expired always returns false. A chain cannot distrust itself.
func (ClientState) Expired(_ time.Duration) bool {
	return false
}

// Initialise checks that the initial consensus state is a valid 09-localhost consensus state and
// stores the client state and the consensus state at the latest height.
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

// GetTimestampAtHeight returns the timestamp of the consensus state stored at the provided height.
func (ClientState) GetTimestampAtHeight(ctx exported.ValidationContext, clientID string, height exported.Height) (uint64, error) {
	consState, found := ctx.GetClientConsensusState(clientID, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height (%s)", height)
	}

	return consState.GetTimestamp(), nil
}

// VerifyMembership is a generic proof verification method which verifies the existence of a given key and value within the IBC store.
// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
// The root is not consulted since the host store is read directly.
func (cs ClientState) VerifyMembership(
	ctx exported.ValidationContext,
	prefix exported.Prefix,
	proof []byte,
	_ exported.Root,
	path exported.Path,
	value []byte,
) error {
	key, err := cs.hostStoreKey(ctx, prefix, proof, path, clienttypes.ErrFailedMembershipVerification)
	if err != nil {
		return err
	}

	bz, found := ctx.GetStoreValue(key)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrFailedMembershipVerification, "value not found for path %s", key)
	}

	if !bytes.Equal(bz, value) {
		return errorsmod.Wrapf(clienttypes.ErrFailedMembershipVerification, "value provided does not equal value stored at path: %s", key)
	}

	return nil
}

// VerifyNonMembership is a generic proof verification method which verifies the absence of a given CommitmentPath within the IBC store.
// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
func (cs ClientState) VerifyNonMembership(
	ctx exported.ValidationContext,
	prefix exported.Prefix,
	proof []byte,
	_ exported.Root,
	path exported.Path,
) error {
	key, err := cs.hostStoreKey(ctx, prefix, proof, path, clienttypes.ErrFailedNonMembershipVerification)
	if err != nil {
		return err
	}

	if _, found := ctx.GetStoreValue(key); found {
		return errorsmod.Wrapf(clienttypes.ErrFailedNonMembershipVerification, "value found for path %s", key)
	}

	return nil
}

// hostStoreKey checks the proof and the commitment path of a membership query and returns the key
// under which the value is held in the host store. A path committed under another prefix fails with mismatchErr.
func (cs ClientState) hostStoreKey(
	ctx exported.ValidationContext,
	prefix exported.Prefix,
	proof []byte,
	path exported.Path,
	mismatchErr error,
) ([]byte, error) {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return nil, err
	}

	// ensure the proof provided is the expected sentinel localhost client proof
	if !bytes.Equal(proof, SentinelProof) {
		return nil, errorsmod.Wrapf(commitmenttypes.ErrInvalidProof, "expected %s, got %s", string(SentinelProof), string(proof))
	}

	merklePath, ok := path.(commitmenttypes.MerklePath)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected %T, got %T", commitmenttypes.MerklePath{}, path)
	}

	merklePath, err := commitmenttypes.ApplyPrefix(prefix, merklePath)
	if err != nil {
		return nil, err
	}

	if len(merklePath.GetKeyPath()) != 2 {
		return nil, errorsmod.Wrapf(host.ErrInvalidPath, "path must be of length 2: %s", merklePath.GetKeyPath())
	}

	hostPrefix := ctx.HostCommitmentPrefix()
	if !bytes.Equal(merklePath.KeyPath[0], hostPrefix.Bytes()) {
		return nil, errorsmod.Wrapf(mismatchErr, "expected host prefix %s, got %s", hostPrefix.Bytes(), merklePath.KeyPath[0])
	}

	// The commitment prefix (eg: "ibc") is omitted when operating on the core IBC store
	return merklePath.KeyPath[1], nil
}
