package mock

import (
	"bytes"

	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var (
	_ exported.ClientMessage = (*Header)(nil)
	_ exported.ClientMessage = (*Misbehaviour)(nil)
)

// Header defines the 00-mock client header. The header is trusted as submitted.
type Header struct {
	Height    clienttypes.Height         `protobuf:"bytes,1,opt,name=height,proto3" json:"height"`
	Root      commitmenttypes.MerkleRoot `protobuf:"bytes,2,opt,name=root,proto3" json:"root"`
	Timestamp uint64                     `protobuf:"varint,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

// Reset implements proto.Message.
func (m *Header) Reset() {
	*m = Header{}
}

// String implements proto.Message.
func (m *Header) String() string {
	return proto.CompactTextString(m)
}

// ProtoMessage implements proto.Message.
func (*Header) ProtoMessage() {}

// XXX_MessageName returns the fully qualified protobuf name of Header.
func (*Header) XXX_MessageName() string {
	return "ibc.lightclients.mock.v1.Header"
}

// NewHeader creates a new 00-mock Header instance.
func NewHeader(height clienttypes.Height, root []byte, timestamp uint64) *Header {
	return &Header{
		Height:    height,
		Root:      commitmenttypes.NewMerkleRoot(root),
		Timestamp: timestamp,
	}
}

func (Header) ClientType() string {
	return ModuleName
}

// ConsensusState returns the consensus state committed to by the header.
func (h Header) ConsensusState() *ConsensusState {
	return &ConsensusState{
		Root:      h.Root,
		Timestamp: h.Timestamp,
	}
}

// ValidateBasic checks the header has a height, a root and a timestamp.
func (h Header) ValidateBasic() error {
	if h.Height.RevisionHeight == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header revision height cannot be zero")
	}
	if h.Root.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header root cannot be empty")
	}
	if h.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header timestamp cannot be zero")
	}
	return nil
}

// conflicts returns true if the headers commit to different states.
func (h Header) conflicts(other *ConsensusState) bool {
	return !bytes.Equal(h.Root.GetHash(), other.Root.GetHash()) || h.Timestamp != other.Timestamp
}

// Misbehaviour defines misbehaviour for the 00-mock client: two different headers at one height.
type Misbehaviour struct {
	ClientId string  `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Header1  *Header `protobuf:"bytes,2,opt,name=header_1,json=header1,proto3" json:"header_1,omitempty"`
	Header2  *Header `protobuf:"bytes,3,opt,name=header_2,json=header2,proto3" json:"header_2,omitempty"`
}

// Reset implements proto.Message.
func (m *Misbehaviour) Reset() {
	*m = Misbehaviour{}
}

// String implements proto.Message.
func (m *Misbehaviour) String() string {
	return proto.CompactTextString(m)
}

// ProtoMessage implements proto.Message.
func (*Misbehaviour) ProtoMessage() {}

// XXX_MessageName returns the fully qualified protobuf name of Misbehaviour.
func (*Misbehaviour) XXX_MessageName() string {
	return "ibc.lightclients.mock.v1.Misbehaviour"
}

// NewMisbehaviour creates a new Misbehaviour instance.
func NewMisbehaviour(clientID string, header1, header2 *Header) *Misbehaviour {
	return &Misbehaviour{
		ClientId: clientID,
		Header1:  header1,
		Header2:  header2,
	}
}

func (Misbehaviour) ClientType() string {
	return ModuleName
}

// ValidateBasic checks both headers are present, valid and at the same height.
func (misbehaviour Misbehaviour) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(misbehaviour.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client identifier for 00-mock")
	}
	if misbehaviour.Header1 == nil || misbehaviour.Header2 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "misbehaviour headers cannot be nil")
	}
	if err := misbehaviour.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 1 failed validation")
	}
	if err := misbehaviour.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 2 failed validation")
	}
	if !misbehaviour.Header1.Height.EQ(misbehaviour.Header2.Height) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "headers must be at the same height (%s != %s)",
			misbehaviour.Header1.Height, misbehaviour.Header2.Height)
	}
	return nil
}
