package localhost

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// VerifyUpgradeClient checks that the upgraded client and consensus states were committed by the
// upgrade plan under the given root at the last height of the current revision.
//
// The upgraded client must be a 09-localhost client which is not frozen and whose latest height is
// greater than the latest height of the current client.
func (cs ClientState) VerifyUpgradeClient(
	upgradedClient exported.ClientState,
	upgradedConsState exported.ConsensusState,
	proofUpgradeClient,
	proofUpgradeConsState exported.Proof,
	root exported.Root,
) error {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return err
	}

	upgradedClientState, ok := upgradedClient.(*ClientState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "upgraded client must be %T, got %T", &ClientState{}, upgradedClient)
	}

	if upgradedClientState.IsFrozen() {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "upgraded client cannot be frozen")
	}

	if err := upgradedClientState.Validate(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "invalid upgraded client: %v", err)
	}

	// upgraded client state and consensus state must be IBC height greater than the current client height
	if !upgradedClientState.LatestHeight.GT(cs.LatestHeight) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "upgraded client height %s must be greater than current client height %s",
			upgradedClientState.LatestHeight, cs.LatestHeight)
	}

	upgradedConsensusState, ok := upgradedConsState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "upgraded consensus state must be %T, got %T", &ConsensusState{}, upgradedConsState)
	}

	if err := upgradedConsensusState.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "invalid upgraded consensus state: %v", err)
	}

	if proofUpgradeClient == nil || proofUpgradeClient.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "upgrade client proof cannot be empty")
	}
	if proofUpgradeConsState == nil || proofUpgradeConsState.Empty() {
		return errorsmod.Wrap(clienttypes.ErrInvalidUpgradeClient, "upgrade consensus state proof cannot be empty")
	}

	// the last height of the current revision is the height the upgrade plan commits under
	lastHeight := cs.LatestHeight.GetRevisionHeight()

	bz, err := clienttypes.MarshalClientState(upgradedClientState)
	if err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "could not marshal upgraded client: %v", err)
	}

	if err := proofUpgradeClient.VerifyMembership(commitmenttypes.GetSDKSpecs(), root, UpgradedClientPath(lastHeight), bz); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "client state proof failed. Path: %s: %v", host.UpgradedClientPath(lastHeight), err)
	}

	bz, err = clienttypes.MarshalConsensusState(upgradedConsensusState)
	if err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "could not marshal upgraded consensus state: %v", err)
	}

	if err := proofUpgradeConsState.VerifyMembership(commitmenttypes.GetSDKSpecs(), root, UpgradedConsStatePath(lastHeight), bz); err != nil {
		return errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "consensus state proof failed. Path: %s: %v", host.UpgradedConsStatePath(lastHeight), err)
	}

	return nil
}

// UpdateStateWithUpgradeClient replaces the client state with the upgraded client and stores the
// upgraded consensus state at the upgraded latest height. It assumes VerifyUpgradeClient has succeeded.
func (cs *ClientState) UpdateStateWithUpgradeClient(
	ctx exported.ExecutionContext,
	clientID string,
	upgradedClient exported.ClientState,
	upgradedConsState exported.ConsensusState,
) (exported.ClientState, exported.ConsensusState, error) {
	if err := cs.ConfirmNotFrozen(); err != nil {
		return nil, nil, err
	}

	upgradedClientState, ok := upgradedClient.(*ClientState)
	if !ok {
		return nil, nil, errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "upgraded client must be %T, got %T", &ClientState{}, upgradedClient)
	}

	upgradedConsensusState, ok := upgradedConsState.(*ConsensusState)
	if !ok {
		return nil, nil, errorsmod.Wrapf(clienttypes.ErrInvalidUpgradeClient, "upgraded consensus state must be %T, got %T", &ConsensusState{}, upgradedConsState)
	}

	newClientState := NewClientState(upgradedClientState.ChainId, upgradedClientState.LatestHeight)
	newConsState := NewConsensusState(upgradedConsensusState.Root, upgradedConsensusState.Timestamp)

	if err := ctx.SetClientConsensusState(clientID, newClientState.LatestHeight, newConsState); err != nil {
		return nil, nil, err
	}

	if err := ctx.SetClientState(clientID, newClientState); err != nil {
		return nil, nil, err
	}

	*cs = *newClientState

	return newClientState, newConsState, nil
}

// UpgradedClientPath returns the merkle path of the upgraded client state committed for the given
// last height of the current revision.
func UpgradedClientPath(lastHeight uint64) commitmenttypes.MerklePath {
	return commitmenttypes.NewMerklePath([]byte(host.KeyUpgradeStore), host.UpgradedClientKey(lastHeight))
}

// UpgradedConsStatePath returns the merkle path of the upgraded consensus state committed for the
// given last height of the current revision.
func UpgradedConsStatePath(lastHeight uint64) commitmenttypes.MerklePath {
	return commitmenttypes.NewMerklePath([]byte(host.KeyUpgradeStore), host.UpgradedConsStateKey(lastHeight))
}
