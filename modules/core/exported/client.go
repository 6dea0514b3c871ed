package exported

import (
	"time"

	"github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// Status represents the status of a client
type Status string

const (
	// TypeClientMisbehaviour is the shared evidence misbehaviour type
	TypeClientMisbehaviour string = "client_misbehaviour"

	// Mock is used to indicate that the light client is the in-process mock client.
	Mock string = "00-mock"

	// Localhost is the client type for a localhost client. It is also used as the clientID
	// for the localhost client.
	Localhost string = "09-localhost"

	// LocalhostClientID is the client identifier of the single localhost client.
	LocalhostClientID string = Localhost

	// Active is a status type of a client. An active client is allowed to be used.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be used.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be used.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"

	// Unauthorized indicates that the client type is not registered as an allowed client type.
	Unauthorized Status = "Unauthorized"
)

// UpdateKind defines the kind of client message submitted to a client.
type UpdateKind int32

const (
	// UpdateKindClient is used for regular client updates carrying a header.
	UpdateKindClient UpdateKind = iota
	// UpdateKindMisbehaviour is used for the submission of misbehaviour evidence.
	UpdateKindMisbehaviour
)

// String returns the string representation of an update kind.
func (k UpdateKind) String() string {
	switch k {
	case UpdateKindClient:
		return "update_client"
	case UpdateKindMisbehaviour:
		return "misbehaviour"
	default:
		return "unknown"
	}
}

// LightClientModule registers the concrete types of a single client type. The client
// router is keyed by the value returned from ClientType.
type LightClientModule interface {
	ClientType() string
	RegisterInterfaces(registry codectypes.InterfaceRegistry)
}

// ClientState defines the required common functions for light clients.
//
// Every operation receives its host context explicitly. A ClientState never holds on to a
// context between calls and never writes to the host outside of an ExecutionContext.
type ClientState interface {
	proto.Message

	ClientType() string
	GetLatestHeight() Height
	Validate() error

	// Status must return the status of the client. Only Active clients are allowed to process packets.
	Status(ctx ValidationContext, clientID string) Status

	// ValidateProofHeight returns an error if the proof height is greater than the latest height of the client.
	ValidateProofHeight(proofHeight Height) error

	// ConfirmNotFrozen returns an error if the client has been frozen due to misbehaviour.
	ConfirmNotFrozen() error

	// Expired returns true if elapsed exceeds the trusting period of the client type.
	Expired(elapsed time.Duration) bool

	// GetTimestampAtHeight must return the timestamp for the consensus state associated with the provided height.
	GetTimestampAtHeight(ctx ValidationContext, clientID string, height Height) (uint64, error)

	// Initialise validates the initial consensus state and stores the client state and consensus state
	// through the provided execution context.
	Initialise(ctx ExecutionContext, clientID string, consensusState ConsensusState) error

	// VerifyClientMessage must verify a ClientMessage. A ClientMessage could be a Header or Misbehaviour.
	// It must handle each type of ClientMessage appropriately. Calls to CheckForMisbehaviour, UpdateState, and UpdateStateOnMisbehaviour
	// will assume that the content of the ClientMessage has been verified and can be trusted. An error should be returned
	// if the ClientMessage fails to verify.
	VerifyClientMessage(ctx ValidationContext, clientID string, clientMsg ClientMessage, kind UpdateKind) error

	// Checks for evidence of a misbehaviour in Header or Misbehaviour type. It assumes the ClientMessage
	// has already been verified.
	CheckForMisbehaviour(ctx ValidationContext, clientID string, clientMsg ClientMessage, kind UpdateKind) (bool, error)

	// UpdateState updates and stores as necessary any associated information for an IBC client, such as the ClientState and corresponding ConsensusState.
	// Upon successful update, a list of consensus heights is returned. It assumes the ClientMessage has already been verified.
	//
	// Post-condition: on success, the returned list contains at least one height.
	UpdateState(ctx ExecutionContext, clientID string, clientMsg ClientMessage) ([]Height, error)

	// UpdateStateOnMisbehaviour should perform appropriate state changes on a client state given that misbehaviour has been detected and verified
	UpdateStateOnMisbehaviour(ctx ExecutionContext, clientID string, clientMsg ClientMessage, kind UpdateKind) error

	// Upgrade functions
	// NOTE: proof heights are not included as upgrade to a new revision is expected to pass only on the last
	// height committed by the current revision. Clients are responsible for ensuring that the planned last
	// height of the current revision is somehow encoded in the proof verification process.
	// This is to ensure that no premature upgrades occur, since upgrade plans committed to by the counterparty
	// may be cancelled or modified before the last planned height.
	VerifyUpgradeClient(
		upgradedClient ClientState,
		upgradedConsState ConsensusState,
		proofUpgradeClient,
		proofUpgradeConsState Proof,
		root Root,
	) error

	// UpdateStateWithUpgradeClient stores the upgraded client and consensus states, replacing the state tracked
	// by the client. It assumes VerifyUpgradeClient has succeeded.
	UpdateStateWithUpgradeClient(
		ctx ExecutionContext,
		clientID string,
		upgradedClient ClientState,
		upgradedConsState ConsensusState,
	) (ClientState, ConsensusState, error)

	// VerifyMembership is a generic proof verification method which verifies a proof of the existence of a value at a given CommitmentPath.
	// The CommitmentPath is formed by applying the prefix to the provided path.
	VerifyMembership(
		ctx ValidationContext,
		prefix Prefix,
		proof []byte,
		root Root,
		path Path,
		value []byte,
	) error

	// VerifyNonMembership is a generic proof verification method which verifies the absence of a given CommitmentPath.
	VerifyNonMembership(
		ctx ValidationContext,
		prefix Prefix,
		proof []byte,
		root Root,
		path Path,
	) error
}

// ConsensusState is the state of the consensus process
type ConsensusState interface {
	proto.Message

	ClientType() string // Consensus kind

	// GetRoot returns the commitment root of the consensus state,
	// which is used for key-value pair verification.
	GetRoot() Root

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// ClientMessage is an interface used to update an IBC client.
// The update may be done by a single header, a batch of headers, misbehaviour, or any type which when verified produces
// a change to state of the IBC client
type ClientMessage interface {
	proto.Message

	ClientType() string
	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height
// all clients must use the concrete implementation in types
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}
