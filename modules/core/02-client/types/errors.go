package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC client sentinel errors
var (
	ErrClientExists                    = errorsmod.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient                   = errorsmod.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound                  = errorsmod.Register(SubModuleName, 4, "light client not found")
	ErrClientFrozen                    = errorsmod.Register(SubModuleName, 5, "light client is frozen due to misbehaviour")
	ErrConsensusStateNotFound          = errorsmod.Register(SubModuleName, 7, "consensus state not found")
	ErrInvalidConsensus                = errorsmod.Register(SubModuleName, 8, "invalid consensus state")
	ErrClientTypeNotFound              = errorsmod.Register(SubModuleName, 9, "client type not found")
	ErrInvalidClientType               = errorsmod.Register(SubModuleName, 10, "invalid client type")
	ErrInvalidHeader                   = errorsmod.Register(SubModuleName, 12, "invalid client header")
	ErrInvalidMisbehaviour             = errorsmod.Register(SubModuleName, 13, "invalid light client misbehaviour")
	ErrUpdateClientFailed              = errorsmod.Register(SubModuleName, 23, "unable to update light client")
	ErrInvalidUpgradeClient            = errorsmod.Register(SubModuleName, 25, "invalid client upgrade")
	ErrInvalidHeight                   = errorsmod.Register(SubModuleName, 26, "invalid height")
	ErrClientNotActive                 = errorsmod.Register(SubModuleName, 29, "client state is not active")
	ErrFailedMembershipVerification    = errorsmod.Register(SubModuleName, 30, "membership verification failed")
	ErrFailedNonMembershipVerification = errorsmod.Register(SubModuleName, 31, "non-membership verification failed")
	ErrRouteNotFound                   = errorsmod.Register(SubModuleName, 32, "light client module route not found")
	ErrInvalidProofHeight              = errorsmod.Register(SubModuleName, 36, "proof height is greater than the latest client height")
)
