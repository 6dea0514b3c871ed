/*
Package client implements the ICS 02 - Client Semantics specification
(https://github.com/cosmos/ibc/tree/master/spec/core/ics-002-client-semantics). The keeper
stores light clients and dispatches every client operation to the light client type
selected by the type URL of the submitted envelope. The localhost client is advanced to
the current block at the beginning of every block.
*/
package client
