/*
Package mock implements the 00-mock light client. Headers are trusted as submitted,
consensus states commit to the root carried by the header and membership is proven
with ICS 23 Merkle proofs against that root. Two different headers at one height are
misbehaviour and freeze the client. A client expires once its latest consensus state
is older than the trusting period.

The mock client exists to exercise the client keeper with a client type whose
verification is not degenerate. It must not be used outside of tests and simulations.
*/
package mock
