package localhost

import (
	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState defines the 09-localhost consensus state. It commits to the app hash
// of the host chain at the height it was stored.
type ConsensusState struct {
	// commitment root of the host chain (i.e app hash)
	Root commitmenttypes.MerkleRoot `protobuf:"bytes,1,opt,name=root,proto3" json:"root"`
	// block time of the host chain in unix nanoseconds
	Timestamp uint64 `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

// Reset implements proto.Message.
func (m *ConsensusState) Reset() {
	*m = ConsensusState{}
}

// String implements proto.Message.
func (m *ConsensusState) String() string {
	return proto.CompactTextString(m)
}

// ProtoMessage implements proto.Message.
func (*ConsensusState) ProtoMessage() {}

// XXX_MessageName returns the fully qualified protobuf name of ConsensusState.
func (*ConsensusState) XXX_MessageName() string {
	return "ibc.lightclients.localhost.v1.ConsensusState"
}

// NewConsensusState creates a new 09-localhost ConsensusState instance.
func NewConsensusState(root commitmenttypes.MerkleRoot, timestamp uint64) *ConsensusState {
	return &ConsensusState{
		Root:      root,
		Timestamp: timestamp,
	}
}

// ClientType returns the 09-localhost client type.
func (ConsensusState) ClientType() string {
	return exported.Localhost
}

// GetRoot returns the commitment root of the consensus state.
func (cs ConsensusState) GetRoot() exported.Root {
	return cs.Root
}

// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state.
func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

// ValidateBasic defines a basic validation for the 09-localhost consensus state.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Root.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp cannot be zero Unix time")
	}
	return nil
}
