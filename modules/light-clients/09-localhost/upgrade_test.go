package localhost_test

import (
	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	mock "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/00-mock"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
	ibctesting "github.com/DaviRain-Su/ibc-light-clients/testing"
)

// setupUpgrade commits an upgrade plan for the next block, updates the localhost client to that
// block and returns the client together with the committed upgraded client and consensus state.
func (suite *LocalhostTestSuite) setupUpgrade() (*localhost.ClientState, *localhost.ClientState, *localhost.ConsensusState) {
	suite.createClient()

	lastHeight := suite.chain.GetSelfHeight().Increment().(clienttypes.Height)
	upgradedHeight := clienttypes.NewHeight(lastHeight.RevisionNumber+1, 1)
	upgradedChainID, err := clienttypes.SetRevisionNumber(suite.chain.ChainID, upgradedHeight.RevisionNumber)
	suite.Require().NoError(err)

	upgradedClient := localhost.NewClientState(upgradedChainID, upgradedHeight)
	upgradedConsState := localhost.NewConsensusState(commitmenttypes.NewMerkleRoot([]byte("upgraded app hash")), suite.chain.GetTimestamp())
	suite.chain.SetUpgradedState(lastHeight.RevisionHeight, upgradedClient, upgradedConsState)

	suite.chain.NextBlock()
	suite.Require().NoError(suite.chain.UpdateLocalhostClient())

	clientState := suite.chain.GetClientState(exported.LocalhostClientID).(*localhost.ClientState)
	suite.Require().Equal(lastHeight, clientState.LatestHeight)

	return clientState, upgradedClient, upgradedConsState
}

func (suite *LocalhostTestSuite) TestVerifyUpgradeClient() {
	var (
		clientState       *localhost.ClientState
		upgradedClient    exported.ClientState
		upgradedConsState exported.ConsensusState
		proofClient       exported.Proof
		proofConsState    exported.Proof
		root              exported.Root
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"failure: upgraded client is not a localhost client",
			func() {
				upgradedClient = mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(2, 1), ibctesting.TrustingPeriod)
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded client is frozen",
			func() {
				frozenHeight := clienttypes.NewHeight(2, 1)
				upgradedClient.(*localhost.ClientState).FrozenHeight = &frozenHeight
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded client is invalid",
			func() {
				upgradedClient.(*localhost.ClientState).ChainId = ""
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded height is not greater than the current height",
			func() {
				upgradedClient.(*localhost.ClientState).LatestHeight = clientState.LatestHeight
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded consensus state is not a localhost consensus state",
			func() {
				upgradedConsState = mock.NewConsensusState([]byte("root"), 1)
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded consensus state is invalid",
			func() {
				upgradedConsState.(*localhost.ConsensusState).Timestamp = 0
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded client does not match the committed client",
			func() {
				upgradedClient.(*localhost.ClientState).LatestHeight = clienttypes.NewHeight(2, 2)
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: upgraded consensus state does not match the committed consensus state",
			func() {
				upgradedConsState.(*localhost.ConsensusState).Timestamp++
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: client proof is for the consensus state",
			func() {
				proofClient = proofConsState
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: empty client proof",
			func() {
				proofClient = &commitmenttypes.MerkleProof{}
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: nil consensus state proof",
			func() {
				proofConsState = nil
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: proofs verified against another root",
			func() {
				root = commitmenttypes.NewMerkleRoot([]byte("other root"))
			},
			clienttypes.ErrInvalidUpgradeClient,
		},
		{
			"failure: current client is frozen",
			func() {
				frozenHeight := clientState.LatestHeight
				clientState.FrozenHeight = &frozenHeight
			},
			clienttypes.ErrClientFrozen,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			var committedClient *localhost.ClientState
			var committedConsState *localhost.ConsensusState
			clientState, committedClient, committedConsState = suite.setupUpgrade()
			upgradedClient, upgradedConsState = committedClient, committedConsState

			lastHeight := clientState.LatestHeight.RevisionHeight

			bz, _ := suite.chain.QueryUpgradeProof(host.UpgradedClientKey(lastHeight))
			merkleProofClient, err := commitmenttypes.UnmarshalMerkleProof(bz)
			suite.Require().NoError(err)

			bz, _ = suite.chain.QueryUpgradeProof(host.UpgradedConsStateKey(lastHeight))
			merkleProofConsState, err := commitmenttypes.UnmarshalMerkleProof(bz)
			suite.Require().NoError(err)

			proofClient, proofConsState = &merkleProofClient, &merkleProofConsState

			consState, found := suite.chain.GetConsensusState(exported.LocalhostClientID, clientState.LatestHeight)
			suite.Require().True(found)
			root = consState.GetRoot()

			tc.malleate()

			err = clientState.VerifyUpgradeClient(upgradedClient, upgradedConsState, proofClient, proofConsState, root)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *LocalhostTestSuite) TestUpdateStateWithUpgradeClient() {
	clientState, upgradedClient, upgradedConsState := suite.setupUpgrade()

	newClientState, newConsState, err := clientState.UpdateStateWithUpgradeClient(suite.hostContext(), exported.LocalhostClientID, upgradedClient, upgradedConsState)
	suite.Require().NoError(err)

	suite.Require().Equal(upgradedClient, newClientState)
	suite.Require().Equal(upgradedConsState, newConsState)
	suite.Require().Equal(upgradedClient, clientState)

	suite.Require().Equal(upgradedClient, suite.chain.GetClientState(exported.LocalhostClientID))

	storedConsState, found := suite.chain.GetConsensusState(exported.LocalhostClientID, upgradedClient.LatestHeight)
	suite.Require().True(found)
	suite.Require().Equal(upgradedConsState, storedConsState)

	_, _, err = clientState.UpdateStateWithUpgradeClient(suite.hostContext(), exported.LocalhostClientID, mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(3, 1), ibctesting.TrustingPeriod), upgradedConsState)
	suite.Require().ErrorIs(err, clienttypes.ErrInvalidUpgradeClient)
}

func (suite *LocalhostTestSuite) TestUpdateStateWithUpgradeClientFrozen() {
	clientState, upgradedClient, upgradedConsState := suite.setupUpgrade()

	suite.Require().NoError(clientState.UpdateStateOnMisbehaviour(suite.hostContext(), exported.LocalhostClientID, suite.chain.LocalhostHeader(), exported.UpdateKindClient))
	frozen := *clientState

	newClientState, newConsState, err := clientState.UpdateStateWithUpgradeClient(suite.hostContext(), exported.LocalhostClientID, upgradedClient, upgradedConsState)
	suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)
	suite.Require().Nil(newClientState)
	suite.Require().Nil(newConsState)

	// the client stays frozen and nothing is installed at the upgraded height
	suite.Require().Equal(frozen, *clientState)
	suite.Require().ErrorIs(clientState.ConfirmNotFrozen(), clienttypes.ErrClientFrozen)
	suite.Require().Equal(&frozen, suite.chain.GetClientState(exported.LocalhostClientID))

	_, found := suite.chain.GetConsensusState(exported.LocalhostClientID, upgradedClient.LatestHeight)
	suite.Require().False(found)
}

func (suite *LocalhostTestSuite) TestUpgradedPaths() {
	path := localhost.UpgradedClientPath(10)
	suite.Require().Equal([][]byte{[]byte(host.KeyUpgradeStore), []byte("upgradedIBCState/10/upgradedClient")}, path.GetKeyPath())

	path = localhost.UpgradedConsStatePath(10)
	suite.Require().Equal([][]byte{[]byte(host.KeyUpgradeStore), []byte("upgradedIBCState/10/upgradedConsState")}, path.GetKeyPath())
}
