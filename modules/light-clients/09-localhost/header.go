package localhost

import (
	"time"

	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header defines the 09-localhost client header. It is the observation of the
// host chain's own block at the given height.
type Header struct {
	Height clienttypes.Height `protobuf:"bytes,1,opt,name=height,proto3" json:"height"`
	// block time of the host chain in unix nanoseconds
	Timestamp uint64 `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
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
	return "ibc.lightclients.localhost.v1.Header"
}

// NewHeader creates a new 09-localhost Header instance.
func NewHeader(height clienttypes.Height, timestamp uint64) *Header {
	return &Header{
		Height:    height,
		Timestamp: timestamp,
	}
}

// ClientType defines that the Header is a 09-localhost client message.
func (Header) ClientType() string {
	return exported.Localhost
}

// GetHeight returns the height of the header.
func (h Header) GetHeight() exported.Height {
	return h.Height
}

// GetTime returns the block time of the header.
func (h Header) GetTime() time.Time {
	return time.Unix(0, int64(h.Timestamp)).UTC()
}

// ValidateBasic performs a basic validation of the header fields.
func (h Header) ValidateBasic() error {
	if h.Height.RevisionHeight == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header revision height cannot be zero")
	}
	if h.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header timestamp cannot be zero")
	}
	return nil
}
