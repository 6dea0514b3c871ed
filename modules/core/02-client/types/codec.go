package types

import (
	"github.com/cosmos/gogoproto/proto"

	errorsmod "cosmossdk.io/errors"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// RegisterInterfaces registers the client interfaces to protobuf Any.
// Concrete client types register their implementations against these interfaces,
// one type URL per entity per client type.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterInterface(
		"ibc.core.client.v1.ClientState",
		(*exported.ClientState)(nil),
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.ConsensusState",
		(*exported.ConsensusState)(nil),
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.Header",
		(*exported.ClientMessage)(nil),
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.Height",
		(*exported.Height)(nil),
		&Height{},
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.Misbehaviour",
		(*exported.ClientMessage)(nil),
	)
}

// PackClientState constructs a new Any packed with the given client state value. It returns
// an error if the client state can't be casted to a protobuf message or if the concrete
// implementation is not registered to the protobuf codec.
func PackClientState(clientState exported.ClientState) (*codectypes.Any, error) {
	return packAny(clientState)
}

// UnpackClientState unpacks an Any into a ClientState. It returns an error if the
// type URL is not registered as a ClientState or the payload cannot be decoded.
func UnpackClientState(registry codectypes.InterfaceRegistry, protoAny *codectypes.Any) (exported.ClientState, error) {
	msg, err := unpackAny(registry, protoAny)
	if err != nil {
		return nil, err
	}

	clientState, ok := msg.(exported.ClientState)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnrecognizedType, "type URL %s is not a client state", protoAny.TypeUrl)
	}

	return clientState, nil
}

// PackConsensusState constructs a new Any packed with the given consensus state value. It returns
// an error if the consensus state can't be casted to a protobuf message or if the concrete
// implementation is not registered to the protobuf codec.
func PackConsensusState(consensusState exported.ConsensusState) (*codectypes.Any, error) {
	return packAny(consensusState)
}

// MustPackConsensusState calls PackConsensusState and panics on error.
func MustPackConsensusState(consensusState exported.ConsensusState) *codectypes.Any {
	anyConsensusState, err := PackConsensusState(consensusState)
	if err != nil {
		panic(err)
	}

	return anyConsensusState
}

// UnpackConsensusState unpacks an Any into a ConsensusState. It returns an error if the
// type URL is not registered as a ConsensusState or the payload cannot be decoded.
func UnpackConsensusState(registry codectypes.InterfaceRegistry, protoAny *codectypes.Any) (exported.ConsensusState, error) {
	msg, err := unpackAny(registry, protoAny)
	if err != nil {
		return nil, err
	}

	consensusState, ok := msg.(exported.ConsensusState)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnrecognizedType, "type URL %s is not a consensus state", protoAny.TypeUrl)
	}

	return consensusState, nil
}

// PackClientMessage constructs a new Any packed with the given value. It returns
// an error if the value can't be casted to a protobuf message or if the concrete
// implementation is not registered to the protobuf codec.
func PackClientMessage(clientMessage exported.ClientMessage) (*codectypes.Any, error) {
	return packAny(clientMessage)
}

// UnpackClientMessage unpacks an Any into a ClientMessage. It returns an error if the
// type URL is not registered as a ClientMessage or the payload cannot be decoded.
func UnpackClientMessage(registry codectypes.InterfaceRegistry, protoAny *codectypes.Any) (exported.ClientMessage, error) {
	msg, err := unpackAny(registry, protoAny)
	if err != nil {
		return nil, err
	}

	clientMessage, ok := msg.(exported.ClientMessage)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnrecognizedType, "type URL %s is not a client message", protoAny.TypeUrl)
	}

	return clientMessage, nil
}

// MarshalClientState protobuf serializes the client state packed into an Any.
func MarshalClientState(clientState exported.ClientState) ([]byte, error) {
	protoAny, err := PackClientState(clientState)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(protoAny)
}

// MustMarshalClientState attempts to encode a ClientState object and returns the
// raw encoded bytes. It panics on error.
func MustMarshalClientState(clientState exported.ClientState) []byte {
	bz, err := MarshalClientState(clientState)
	if err != nil {
		panic(err)
	}

	return bz
}

// UnmarshalClientState decodes bytes produced by MarshalClientState.
func UnmarshalClientState(registry codectypes.InterfaceRegistry, bz []byte) (exported.ClientState, error) {
	var protoAny codectypes.Any
	if err := proto.Unmarshal(bz, &protoAny); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrMalformedPayload, "cannot decode client state envelope: %v", err)
	}

	return UnpackClientState(registry, &protoAny)
}

// MarshalConsensusState protobuf serializes the consensus state packed into an Any.
func MarshalConsensusState(consensusState exported.ConsensusState) ([]byte, error) {
	protoAny, err := PackConsensusState(consensusState)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(protoAny)
}

// UnmarshalConsensusState decodes bytes produced by MarshalConsensusState.
func UnmarshalConsensusState(registry codectypes.InterfaceRegistry, bz []byte) (exported.ConsensusState, error) {
	var protoAny codectypes.Any
	if err := proto.Unmarshal(bz, &protoAny); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrMalformedPayload, "cannot decode consensus state envelope: %v", err)
	}

	return UnpackConsensusState(registry, &protoAny)
}

func packAny(value any) (*codectypes.Any, error) {
	msg, ok := value.(proto.Message)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrPackAny, "cannot proto marshal %T", value)
	}

	protoAny, err := codectypes.NewAnyWithValue(msg)
	if err != nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrPackAny, err.Error())
	}

	return protoAny, nil
}

// unpackAny resolves the type URL of the envelope against the registry and decodes
// the payload into a fresh instance of the registered type.
func unpackAny(registry codectypes.InterfaceRegistry, protoAny *codectypes.Any) (proto.Message, error) {
	if protoAny == nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrUnpackAny, "protobuf Any message cannot be nil")
	}

	msg, err := registry.Resolve(protoAny.TypeUrl)
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrUnrecognizedType, "type URL %s: %v", protoAny.TypeUrl, err)
	}

	if err := proto.Unmarshal(protoAny.Value, msg); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrMalformedPayload, "cannot decode %s: %v", protoAny.TypeUrl, err)
	}

	return msg, nil
}
