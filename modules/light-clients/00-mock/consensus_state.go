package mock

import (
	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState defines the 00-mock consensus state.
type ConsensusState struct {
	Root      commitmenttypes.MerkleRoot `protobuf:"bytes,1,opt,name=root,proto3" json:"root"`
	Timestamp uint64                     `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
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
	return "ibc.lightclients.mock.v1.ConsensusState"
}

// NewConsensusState creates a new 00-mock ConsensusState instance.
func NewConsensusState(root []byte, timestamp uint64) *ConsensusState {
	return &ConsensusState{
		Root:      commitmenttypes.NewMerkleRoot(root),
		Timestamp: timestamp,
	}
}

func (ConsensusState) ClientType() string {
	return ModuleName
}

func (cs ConsensusState) GetRoot() exported.Root {
	return cs.Root
}

func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

func (cs ConsensusState) ValidateBasic() error {
	if cs.Root.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "root cannot be empty")
	}
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp cannot be zero Unix time")
	}
	return nil
}
