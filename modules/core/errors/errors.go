package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = errorsmod.Register(codespace, 2, "unauthorized")

	// ErrInvalidRequest defines an ABCI typed error where the request contains
	// invalid data.
	ErrInvalidRequest = errorsmod.Register(codespace, 8, "invalid request")

	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = errorsmod.Register(codespace, 9, "invalid height")

	// ErrInvalidChainID defines an error when the chain-id is invalid.
	ErrInvalidChainID = errorsmod.Register(codespace, 11, "invalid chain-id")

	// ErrInvalidType defines an error an invalid type.
	ErrInvalidType = errorsmod.Register(codespace, 12, "invalid type")

	// ErrPackAny defines an error when packing a protobuf message to Any fails.
	ErrPackAny = errorsmod.Register(codespace, 13, "failed packing protobuf message to Any")

	// ErrUnpackAny defines an error when unpacking a protobuf message from Any fails.
	ErrUnpackAny = errorsmod.Register(codespace, 14, "failed unpacking protobuf message from Any")

	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = errorsmod.Register(codespace, 15, "internal logic error")

	// ErrNotFound defines an error when requested entity doesn't exist in the state.
	ErrNotFound = errorsmod.Register(codespace, 16, "not found")

	// ErrUnrecognizedType defines an error when an envelope carries a type URL that is not
	// registered for the requested entity kind.
	ErrUnrecognizedType = errorsmod.Register(codespace, 17, "unrecognized type URL")

	// ErrMalformedPayload defines an error when the bytes of an envelope cannot be decoded
	// as the entity named by its type URL.
	ErrMalformedPayload = errorsmod.Register(codespace, 18, "malformed envelope payload")

	// ErrUnsupported defines an error when an operation is not meaningful for a client type.
	ErrUnsupported = errorsmod.Register(codespace, 19, "operation not supported")
)
