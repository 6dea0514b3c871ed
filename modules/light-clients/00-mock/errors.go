package mock

import (
	errorsmod "cosmossdk.io/errors"
)

// 00-mock sentinel errors
var (
	ErrInvalidClientMsg      = errorsmod.Register(ModuleName, 2, "invalid client message")
	ErrInvalidTrustingPeriod = errorsmod.Register(ModuleName, 3, "invalid trusting period")
)
