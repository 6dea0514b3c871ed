package exported

// ValidationContext is the read capability handed by the host to a light client for the
// duration of a single call.
type ValidationContext interface {
	// HostHeight returns the current height of the host chain.
	HostHeight() Height
	// HostTimestamp returns the block time of the host chain in unix nanoseconds.
	HostTimestamp() uint64
	// HostCommitmentRoot returns the state commitment of the host chain.
	HostCommitmentRoot() Root
	// HostCommitmentPrefix returns the prefix under which the host commits IBC state.
	HostCommitmentPrefix() Prefix

	// GetClientConsensusState returns the consensus state stored for the client at the given height.
	GetClientConsensusState(clientID string, height Height) (ConsensusState, bool)
	// GetStoreValue returns the raw bytes stored by the host under key.
	GetStoreValue(key []byte) ([]byte, bool)
}

// ExecutionContext is the write capability handed by the host to a light client for the
// duration of a single mutating call.
type ExecutionContext interface {
	ValidationContext

	// SetClientState replaces the stored client state of the client.
	SetClientState(clientID string, clientState ClientState) error
	// SetClientConsensusState stores a consensus state for the client at the given height.
	SetClientConsensusState(clientID string, height Height, consensusState ConsensusState) error
}
