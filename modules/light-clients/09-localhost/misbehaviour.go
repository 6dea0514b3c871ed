package localhost

import (
	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

var _ exported.ClientMessage = (*Misbehaviour)(nil)

// Misbehaviour defines misbehaviour for the 09-localhost client: two headers claiming
// to be the host's observation of the same height.
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
	return "ibc.lightclients.localhost.v1.Misbehaviour"
}

// NewMisbehaviour creates a new Misbehaviour instance.
func NewMisbehaviour(clientID string, header1, header2 *Header) *Misbehaviour {
	return &Misbehaviour{
		ClientId: clientID,
		Header1:  header1,
		Header2:  header2,
	}
}

// ClientType is 09-localhost.
func (Misbehaviour) ClientType() string {
	return exported.Localhost
}

// GetHeight returns the height at which the misbehaviour occurred. A zero height is
// returned if Header1 is not set.
func (misbehaviour Misbehaviour) GetHeight() exported.Height {
	if misbehaviour.Header1 == nil {
		return clienttypes.ZeroHeight()
	}
	return misbehaviour.Header1.Height
}

// ValidateBasic implements Misbehaviour interface
func (misbehaviour Misbehaviour) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(misbehaviour.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client identifier for localhost")
	}

	if misbehaviour.Header1 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "misbehaviour Header1 cannot be nil")
	}
	if misbehaviour.Header2 == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "misbehaviour Header2 cannot be nil")
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
