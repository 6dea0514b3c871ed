package keeper

import (
	metrics "github.com/hashicorp/go-metrics"

	errorsmod "cosmossdk.io/errors"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// CreateClient decodes the client state and initial consensus state, generates a new client identifier
// and initialises the client. The client state is responsible for setting any client-specific data in the
// store via the Initialise method. The localhost client is always created under the 09-localhost identifier.
func (k *Keeper) CreateClient(
	ctx sdk.Context, clientStateAny, consensusStateAny *codectypes.Any,
) (string, error) {
	clientState, err := types.UnpackClientState(k.registry, clientStateAny)
	if err != nil {
		return "", err
	}

	consensusState, err := types.UnpackConsensusState(k.registry, consensusStateAny)
	if err != nil {
		if errorsmod.IsOf(err, ibcerrors.ErrMalformedPayload) {
			return "", errorsmod.Wrapf(types.ErrInvalidConsensus, "malformed initial consensus state: %v", err)
		}
		return "", err
	}

	clientType := clientState.ClientType()
	if consensusState.ClientType() != clientType {
		return "", errorsmod.Wrapf(types.ErrInvalidConsensus, "consensus state type %s does not match client type %s", consensusState.ClientType(), clientType)
	}

	params := k.GetParams(ctx)
	if !params.IsAllowedClient(clientType) {
		return "", errorsmod.Wrapf(
			types.ErrInvalidClientType,
			"client state type %s is not registered in the allowlist", clientType,
		)
	}

	if !k.router.HasRoute(clientType) {
		return "", errorsmod.Wrap(types.ErrRouteNotFound, clientType)
	}

	if err := clientState.Validate(); err != nil {
		return "", errorsmod.Wrap(types.ErrInvalidClient, err.Error())
	}

	cacheCtx, writeFn := ctx.CacheContext()

	var clientID string
	if clientType == exported.Localhost {
		clientID = exported.LocalhostClientID
		if _, found := k.GetClientState(cacheCtx, clientID); found {
			return "", errorsmod.Wrapf(types.ErrClientExists, "cannot create client with ID %s", clientID)
		}
	} else {
		clientID = k.GenerateClientIdentifier(cacheCtx, clientType)
	}

	if err := clientState.Initialise(k.HostContext(cacheCtx), clientID, consensusState); err != nil {
		return "", errorsmod.Wrapf(err, "cannot initialise client with ID %s", clientID)
	}

	if status := k.GetClientStatus(cacheCtx, clientID); status != exported.Active {
		return "", errorsmod.Wrapf(types.ErrClientNotActive, "cannot create client (%s) with status %s", clientID, status)
	}

	writeFn()

	k.Logger(ctx).Info("client created at height", "client-id", clientID, "height", clientState.GetLatestHeight().String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelClientType, clientType)},
	)

	emitCreateClientEvent(ctx, clientID, clientType, clientState.GetLatestHeight())

	return clientID, nil
}

// UpdateClient updates the consensus state and the state root from a provided header.
// If the header is found to be misbehaviour the client is frozen instead.
func (k *Keeper) UpdateClient(ctx sdk.Context, clientID string, clientMsgAny *codectypes.Any) error {
	clientMsg, err := types.UnpackClientMessage(k.registry, clientMsgAny)
	if err != nil {
		return err
	}

	clientState, err := k.getActiveClient(ctx, clientID, "update")
	if err != nil {
		return err
	}

	clientType := clientState.ClientType()
	if clientMsg.ClientType() != clientType {
		return errorsmod.Wrapf(types.ErrInvalidClientType, "cannot update %s client with %s client message", clientType, clientMsg.ClientType())
	}

	cacheCtx, writeFn := ctx.CacheContext()
	hostCtx := k.HostContext(cacheCtx)

	if err := clientState.VerifyClientMessage(hostCtx, clientID, clientMsg, exported.UpdateKindClient); err != nil {
		return errorsmod.Wrapf(err, "cannot update client with ID %s", clientID)
	}

	foundMisbehaviour, err := clientState.CheckForMisbehaviour(hostCtx, clientID, clientMsg, exported.UpdateKindClient)
	if err != nil {
		return errorsmod.Wrapf(err, "cannot update client with ID %s", clientID)
	}

	if foundMisbehaviour {
		if err := clientState.UpdateStateOnMisbehaviour(hostCtx, clientID, clientMsg, exported.UpdateKindClient); err != nil {
			return errorsmod.Wrapf(err, "cannot freeze client with ID %s", clientID)
		}

		writeFn()

		k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

		defer telemetry.IncrCounterWithLabels(
			[]string{"ibc", "client", "misbehaviour"},
			1,
			[]metrics.Label{
				telemetry.NewLabel(types.LabelClientType, clientType),
				telemetry.NewLabel(types.LabelClientID, clientID),
				telemetry.NewLabel(types.LabelMsgType, "update"),
			},
		)

		emitSubmitMisbehaviourEvent(ctx, clientID, clientType)

		return nil
	}

	consensusHeights, err := clientState.UpdateState(hostCtx, clientID, clientMsg)
	if err != nil {
		return errorsmod.Wrapf(err, "cannot update client with ID %s", clientID)
	}

	if len(consensusHeights) == 0 {
		return errorsmod.Wrapf(ibcerrors.ErrLogic, "client %s returned no consensus heights on update", clientID)
	}

	writeFn()

	k.Logger(ctx).Info("client state updated", "client-id", clientID, "heights", consensusHeights)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "update"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, clientType),
			telemetry.NewLabel(types.LabelClientID, clientID),
			telemetry.NewLabel(types.LabelUpdateType, "msg"),
		},
	)

	// emitting events in the keeper emits for both begin block and handler client updates
	emitUpdateClientEvent(ctx, clientID, clientType, consensusHeights)

	return nil
}

// SubmitMisbehaviour verifies the submitted misbehaviour evidence and freezes the client if the
// evidence demonstrates misbehaviour.
func (k *Keeper) SubmitMisbehaviour(ctx sdk.Context, clientID string, misbehaviourAny *codectypes.Any) error {
	misbehaviour, err := types.UnpackClientMessage(k.registry, misbehaviourAny)
	if err != nil {
		return err
	}

	clientState, err := k.getActiveClient(ctx, clientID, "freeze")
	if err != nil {
		return err
	}

	clientType := clientState.ClientType()
	if misbehaviour.ClientType() != clientType {
		return errorsmod.Wrapf(types.ErrInvalidClientType, "cannot submit %s misbehaviour for %s client", misbehaviour.ClientType(), clientType)
	}

	cacheCtx, writeFn := ctx.CacheContext()
	hostCtx := k.HostContext(cacheCtx)

	if err := clientState.VerifyClientMessage(hostCtx, clientID, misbehaviour, exported.UpdateKindMisbehaviour); err != nil {
		return errorsmod.Wrapf(err, "cannot verify misbehaviour for client with ID %s", clientID)
	}

	foundMisbehaviour, err := clientState.CheckForMisbehaviour(hostCtx, clientID, misbehaviour, exported.UpdateKindMisbehaviour)
	if err != nil {
		return errorsmod.Wrapf(err, "cannot check misbehaviour for client with ID %s", clientID)
	}

	if !foundMisbehaviour {
		return errorsmod.Wrapf(types.ErrInvalidMisbehaviour, "misbehaviour not found for client with ID %s", clientID)
	}

	if err := clientState.UpdateStateOnMisbehaviour(hostCtx, clientID, misbehaviour, exported.UpdateKindMisbehaviour); err != nil {
		return errorsmod.Wrapf(err, "cannot freeze client with ID %s", clientID)
	}

	writeFn()

	k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "misbehaviour"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, clientType),
			telemetry.NewLabel(types.LabelClientID, clientID),
			telemetry.NewLabel(types.LabelMsgType, "submit"),
		},
	)

	emitSubmitMisbehaviourEvent(ctx, clientID, clientType)

	return nil
}

// UpgradeClient upgrades the client to a new client state if this new client was committed to
// by the old client at the specified upgrade height
func (k *Keeper) UpgradeClient(
	ctx sdk.Context,
	clientID string,
	upgradedClientAny, upgradedConsStateAny *codectypes.Any,
	upgradeClientProof, upgradeConsensusStateProof []byte,
) error {
	upgradedClient, err := types.UnpackClientState(k.registry, upgradedClientAny)
	if err != nil {
		return err
	}

	upgradedConsState, err := types.UnpackConsensusState(k.registry, upgradedConsStateAny)
	if err != nil {
		return err
	}

	clientState, err := k.getActiveClient(ctx, clientID, "upgrade")
	if err != nil {
		return err
	}

	if upgradedClient.ClientType() != clientState.ClientType() {
		return errorsmod.Wrapf(types.ErrInvalidUpgradeClient, "cannot upgrade %s client to %s client", clientState.ClientType(), upgradedClient.ClientType())
	}

	proofClient, err := commitmenttypes.UnmarshalMerkleProof(upgradeClientProof)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidUpgradeClient, "invalid upgrade client proof: %v", err)
	}

	proofConsState, err := commitmenttypes.UnmarshalMerkleProof(upgradeConsensusStateProof)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidUpgradeClient, "invalid upgrade consensus state proof: %v", err)
	}

	// the upgrade plan is committed in the state of the last height of the current revision
	latestHeight := clientState.GetLatestHeight()
	consState, found := k.GetClientConsensusState(ctx, clientID, latestHeight)
	if !found {
		return errorsmod.Wrapf(types.ErrConsensusStateNotFound, "could not retrieve consensus state for client %s at height %s", clientID, latestHeight)
	}

	if err := clientState.VerifyUpgradeClient(upgradedClient, upgradedConsState, &proofClient, &proofConsState, consState.GetRoot()); err != nil {
		return errorsmod.Wrapf(err, "cannot upgrade client with ID %s", clientID)
	}

	cacheCtx, writeFn := ctx.CacheContext()

	newClientState, _, err := clientState.UpdateStateWithUpgradeClient(k.HostContext(cacheCtx), clientID, upgradedClient, upgradedConsState)
	if err != nil {
		return errorsmod.Wrapf(err, "cannot upgrade client with ID %s", clientID)
	}

	writeFn()

	k.Logger(ctx).Info("client state upgraded", "client-id", clientID, "height", newClientState.GetLatestHeight().String())

	defer telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "upgrade"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelClientType, newClientState.ClientType()),
			telemetry.NewLabel(types.LabelClientID, clientID),
		},
	)

	emitUpgradeClientEvent(ctx, clientID, newClientState)

	return nil
}

// VerifyMembership verifies that value is committed at the path formed by prefix and path in the
// consensus state of the client at proofHeight.
func (k *Keeper) VerifyMembership(
	ctx sdk.Context,
	clientID string,
	proofHeight exported.Height,
	prefix exported.Prefix,
	proof []byte,
	path exported.Path,
	value []byte,
) error {
	clientState, consState, err := k.getProofContext(ctx, clientID, proofHeight)
	if err != nil {
		return err
	}

	if err := clientState.VerifyMembership(k.HostContext(ctx), prefix, proof, consState.GetRoot(), path, value); err != nil {
		return errorsmod.Wrapf(err, "failed membership verification for client (%s)", clientID)
	}

	return nil
}

// VerifyNonMembership verifies that no value is committed at the path formed by prefix and path in
// the consensus state of the client at proofHeight.
func (k *Keeper) VerifyNonMembership(
	ctx sdk.Context,
	clientID string,
	proofHeight exported.Height,
	prefix exported.Prefix,
	proof []byte,
	path exported.Path,
) error {
	clientState, consState, err := k.getProofContext(ctx, clientID, proofHeight)
	if err != nil {
		return err
	}

	if err := clientState.VerifyNonMembership(k.HostContext(ctx), prefix, proof, consState.GetRoot(), path); err != nil {
		return errorsmod.Wrapf(err, "failed non-membership verification for client (%s)", clientID)
	}

	return nil
}

// getActiveClient returns the client state of an Active client. A frozen client fails with ErrClientFrozen.
func (k *Keeper) getActiveClient(ctx sdk.Context, clientID, action string) (exported.ClientState, error) {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrClientNotFound, "cannot %s client with ID %s", action, clientID)
	}

	switch status := k.GetClientStatus(ctx, clientID); status {
	case exported.Active:
		return clientState, nil
	case exported.Frozen:
		return nil, errorsmod.Wrapf(types.ErrClientFrozen, "cannot %s client (%s) with status %s", action, clientID, status)
	default:
		return nil, errorsmod.Wrapf(types.ErrClientNotActive, "cannot %s client (%s) with status %s", action, clientID, status)
	}
}

// getProofContext returns the client state and the consensus state against which a proof at
// proofHeight is verified.
func (k *Keeper) getProofContext(ctx sdk.Context, clientID string, proofHeight exported.Height) (exported.ClientState, exported.ConsensusState, error) {
	clientState, err := k.getActiveClient(ctx, clientID, "verify proofs for")
	if err != nil {
		return nil, nil, err
	}

	if err := clientState.ValidateProofHeight(proofHeight); err != nil {
		return nil, nil, err
	}

	consState, found := k.GetClientConsensusState(ctx, clientID, proofHeight)
	if !found {
		return nil, nil, errorsmod.Wrapf(types.ErrConsensusStateNotFound, "please ensure the proof was constructed against a height that exists on the client (%s) at height %s", clientID, proofHeight)
	}

	return clientState, consState, nil
}
