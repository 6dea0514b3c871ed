/*
Package localhost implements a concrete ClientState, ConsensusState, Header and
Misbehaviour types for the Localhost light client.
This implementation is based off the ICS 09 specification
(https://github.com/cosmos/ibc/blob/main/spec/client/ics-009-loopback-cilent)

The localhost client tracks the chain it runs on. Headers are the host's own
observation of its latest block, consensus states commit to the host's own app hash
and membership proofs are checked by reading the host store directly.

Note the client identifier is expected to be: 09-localhost.
This is validated by core IBC in the 02-client submodule.
*/
package localhost
