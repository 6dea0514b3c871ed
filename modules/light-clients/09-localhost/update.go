package localhost

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// VerifyClientMessage checks if the clientMessage is of type Header or Misbehaviour and verifies the message.
// A Header must be the host's observation of its current block. Misbehaviour must carry two headers
// at one height which the host could have observed.
func (cs *ClientState) VerifyClientMessage(
	ctx exported.ValidationContext, clientID string,
	clientMsg exported.ClientMessage, kind exported.UpdateKind,
) error {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return err
	}

	if err := checkUpdateKind(clientMsg, kind); err != nil {
		return err
	}

	switch msg := clientMsg.(type) {
	case *Header:
		if msg == nil {
			return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header cannot be nil")
		}
		return cs.verifyHeader(ctx, msg)
	default:
		misbehaviour := msg.(*Misbehaviour)
		if misbehaviour == nil {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour cannot be nil")
		}
		return cs.verifyMisbehaviour(ctx, clientID, misbehaviour)
	}
}

// verifyHeader returns an error if the header is not the host's observation of its
// current block or if it would move the client backwards.
func (cs *ClientState) verifyHeader(ctx exported.ValidationContext, header *Header) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	hostHeight := ctx.HostHeight()
	if !header.Height.EQ(hostHeight) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header height %s does not match host height %s", header.Height, hostHeight)
	}

	if hostTimestamp := ctx.HostTimestamp(); header.Timestamp != hostTimestamp {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header timestamp %d does not match host timestamp %d", header.Timestamp, hostTimestamp)
	}

	if header.Height.LT(cs.LatestHeight) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header height %s < client latest height %s", header.Height, cs.LatestHeight)
	}

	return nil
}

// verifyMisbehaviour checks that both headers of the misbehaviour could have been observed by the host.
func (cs *ClientState) verifyMisbehaviour(ctx exported.ValidationContext, clientID string, misbehaviour *Misbehaviour) error {
	if err := misbehaviour.ValidateBasic(); err != nil {
		return err
	}

	if misbehaviour.ClientId != clientID {
		return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "misbehaviour client id %s does not match %s", misbehaviour.ClientId, clientID)
	}

	hostHeight := ctx.HostHeight()
	hostTimestamp := ctx.HostTimestamp()
	for i, header := range []*Header{misbehaviour.Header1, misbehaviour.Header2} {
		if header.Height.GT(hostHeight) {
			return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header %d height %s is beyond host height %s", i+1, header.Height, hostHeight)
		}
		if header.Timestamp > hostTimestamp {
			return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "header %d timestamp %d is beyond host timestamp %d", i+1, header.Timestamp, hostTimestamp)
		}
	}

	return nil
}

// CheckForMisbehaviour always returns false for a well formed client message. The host
// chain cannot commit to two different states at the same height.
func (*ClientState) CheckForMisbehaviour(
	_ exported.ValidationContext, _ string,
	clientMsg exported.ClientMessage, kind exported.UpdateKind,
) (bool, error) {
	if err := checkUpdateKind(clientMsg, kind); err != nil {
		return false, err
	}

	return false, nil
}

// UpdateState stores a consensus state committing to the host's app hash at the header height and
// advances the latest height of the client. It assumes the header has already been verified.
// A header below the latest height is rejected so the client never moves backwards.
func (cs *ClientState) UpdateState(ctx exported.ExecutionContext, clientID string, clientMsg exported.ClientMessage) ([]exported.Height, error) {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return nil, err
	}

	if err := checkUpdateKind(clientMsg, exported.UpdateKindClient); err != nil {
		return nil, err
	}
	header := clientMsg.(*Header)
	if header == nil {
		return nil, errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header cannot be nil")
	}

	if header.Height.LT(cs.LatestHeight) {
		return nil, errorsmod.Wrapf(clienttypes.ErrInvalidHeader, "header height %s < client latest height %s", header.Height, cs.LatestHeight)
	}

	consensusState := NewConsensusState(
		commitmenttypes.NewMerkleRoot(ctx.HostCommitmentRoot().GetHash()),
		header.Timestamp,
	)

	updated := *cs
	updated.LatestHeight = header.Height

	if err := ctx.SetClientConsensusState(clientID, header.Height, consensusState); err != nil {
		return nil, err
	}

	if err := ctx.SetClientState(clientID, &updated); err != nil {
		return nil, err
	}

	*cs = updated

	return []exported.Height{header.Height}, nil
}

// checkUpdateKind returns an error if the client message cannot be submitted as the given update kind.
func checkUpdateKind(clientMsg exported.ClientMessage, kind exported.UpdateKind) error {
	switch clientMsg.(type) {
	case *Header:
		if kind == exported.UpdateKindClient {
			return nil
		}
	case *Misbehaviour:
		if kind == exported.UpdateKindMisbehaviour {
			return nil
		}
	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "expected type of %T or %T, got type %T", Header{}, Misbehaviour{}, clientMsg)
	}

	return errorsmod.Wrapf(ibcerrors.ErrUnsupported, "client message %T cannot be submitted as %s", clientMsg, kind)
}
