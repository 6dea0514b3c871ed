package mock

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// VerifyClientMessage checks if the clientMessage is the correct type for the update kind and verifies the message
func (cs *ClientState) VerifyClientMessage(
	_ exported.ValidationContext, clientID string,
	clientMsg exported.ClientMessage, kind exported.UpdateKind,
) error {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return err
	}

	switch msg := clientMsg.(type) {
	case *Header:
		if kind != exported.UpdateKindClient {
			return errorsmod.Wrapf(ibcerrors.ErrUnsupported, "header cannot be submitted as %s", kind)
		}
		return msg.ValidateBasic()
	case *Misbehaviour:
		if kind != exported.UpdateKindMisbehaviour {
			return errorsmod.Wrapf(ibcerrors.ErrUnsupported, "misbehaviour cannot be submitted as %s", kind)
		}
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
		if msg.ClientId != clientID {
			return errorsmod.Wrapf(clienttypes.ErrInvalidMisbehaviour, "misbehaviour client id %s does not match %s", msg.ClientId, clientID)
		}
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg)
	}
}

// CheckForMisbehaviour returns true for a header conflicting with the consensus state already stored
// at its height, and for misbehaviour whose headers conflict.
func (*ClientState) CheckForMisbehaviour(
	ctx exported.ValidationContext, clientID string,
	clientMsg exported.ClientMessage, _ exported.UpdateKind,
) (bool, error) {
	switch msg := clientMsg.(type) {
	case *Header:
		existing, found := ctx.GetClientConsensusState(clientID, msg.Height)
		if !found {
			return false, nil
		}
		existingConsState, ok := existing.(*ConsensusState)
		if !ok {
			return false, errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "expected type %T, got %T", &ConsensusState{}, existing)
		}
		return msg.conflicts(existingConsState), nil
	case *Misbehaviour:
		return msg.Header1.conflicts(msg.Header2.ConsensusState()), nil
	default:
		return false, errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg)
	}
}

// UpdateState stores the consensus state committed to by the header and advances the latest height.
func (cs *ClientState) UpdateState(ctx exported.ExecutionContext, clientID string, clientMsg exported.ClientMessage) ([]exported.Height, error) {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return nil, err
	}

	header, ok := clientMsg.(*Header)
	if !ok {
		return nil, errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg)
	}

	updated := *cs
	if header.Height.GT(updated.LatestHeight) {
		updated.LatestHeight = header.Height
	}

	if err := ctx.SetClientConsensusState(clientID, header.Height, header.ConsensusState()); err != nil {
		return nil, err
	}

	if err := ctx.SetClientState(clientID, &updated); err != nil {
		return nil, err
	}

	*cs = updated

	return []exported.Height{header.Height}, nil
}

// UpdateStateOnMisbehaviour freezes the client at the height of the misbehaviour.
func (cs *ClientState) UpdateStateOnMisbehaviour(
	ctx exported.ExecutionContext, clientID string,
	clientMsg exported.ClientMessage, _ exported.UpdateKind,
) error {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return err
	}

	var frozenHeight clienttypes.Height
	switch msg := clientMsg.(type) {
	case *Header:
		frozenHeight = msg.Height
	case *Misbehaviour:
		frozenHeight = msg.Header1.Height
	default:
		return errorsmod.Wrapf(ErrInvalidClientMsg, "invalid client message type %T", clientMsg)
	}

	frozen := *cs
	frozen.FrozenHeight = &frozenHeight

	if err := ctx.SetClientState(clientID, &frozen); err != nil {
		return err
	}

	*cs = frozen

	return nil
}
