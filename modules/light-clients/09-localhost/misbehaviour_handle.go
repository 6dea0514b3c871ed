package localhost

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// UpdateStateOnMisbehaviour freezes the client at the height of the misbehaviour. No consensus
// state is written and the frozen height is never cleared.
func (cs *ClientState) UpdateStateOnMisbehaviour(
	ctx exported.ExecutionContext, clientID string,
	clientMsg exported.ClientMessage, kind exported.UpdateKind,
) error {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return err
	}

	if err := checkUpdateKind(clientMsg, kind); err != nil {
		return err
	}

	var frozenHeight clienttypes.Height
	switch msg := clientMsg.(type) {
	case *Header:
		if msg == nil {
			return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "header cannot be nil")
		}
		frozenHeight = msg.Height
	case *Misbehaviour:
		if msg == nil || msg.Header1 == nil {
			return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour Header1 cannot be nil")
		}
		frozenHeight = msg.Header1.Height
	}

	frozen := *cs
	frozen.FrozenHeight = &frozenHeight

	if err := ctx.SetClientState(clientID, &frozen); err != nil {
		return err
	}

	*cs = frozen

	return nil
}
