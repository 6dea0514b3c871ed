package mock_test

import (
	"time"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	mock "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/00-mock"
	ibctesting "github.com/DaviRain-Su/ibc-light-clients/testing"
)

var (
	testKey   = []byte("mock/key")
	testValue = []byte("mock value")
)

func (suite *MockTestSuite) TestStatus() {
	var (
		clientID    string
		clientState *mock.ClientState
	)

	testCases := []struct {
		name      string
		malleate  func()
		expStatus exported.Status
	}{
		{
			"client is active",
			func() {},
			exported.Active,
		},
		{
			"client is active at the end of the trusting period",
			func() {
				suite.chain.IncrementTimeBy(ibctesting.TrustingPeriod)
			},
			exported.Active,
		},
		{
			"client is expired",
			func() {
				suite.chain.IncrementTimeBy(ibctesting.TrustingPeriod + time.Nanosecond)
			},
			exported.Expired,
		},
		{
			"client has no consensus state at its latest height",
			func() {
				clientState.LatestHeight = clientState.LatestHeight.Increment().(clienttypes.Height)
			},
			exported.Expired,
		},
		{
			"client is frozen",
			func() {
				frozenHeight := clientState.LatestHeight
				clientState.FrozenHeight = &frozenHeight
			},
			exported.Frozen,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientID, clientState = suite.createClient()

			tc.malleate()

			suite.Require().Equal(tc.expStatus, clientState.Status(suite.hostContext(), clientID))
		})
	}
}

func (suite *MockTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		clientState *mock.ClientState
		expErr      error
	}{
		{"valid client", mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(1, 10), ibctesting.TrustingPeriod), nil},
		{"blank chain id", mock.NewClientState("  ", clienttypes.NewHeight(1, 10), ibctesting.TrustingPeriod), ibcerrors.ErrInvalidChainID},
		{"zero revision height", mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(1, 0), ibctesting.TrustingPeriod), ibcerrors.ErrInvalidHeight},
		{"zero trusting period", mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(1, 10), 0), mock.ErrInvalidTrustingPeriod},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *MockTestSuite) TestValidateProofHeight() {
	clientState := mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(1, 10), ibctesting.TrustingPeriod)

	suite.Require().NoError(clientState.ValidateProofHeight(clienttypes.NewHeight(1, 10)))
	suite.Require().NoError(clientState.ValidateProofHeight(clienttypes.NewHeight(0, 100)))
	suite.Require().ErrorIs(clientState.ValidateProofHeight(clienttypes.NewHeight(1, 11)), clienttypes.ErrInvalidProofHeight)
	suite.Require().ErrorIs(clientState.ValidateProofHeight(clienttypes.NewHeight(2, 1)), clienttypes.ErrInvalidProofHeight)
}

func (suite *MockTestSuite) TestInitialise() {
	var (
		clientState    *mock.ClientState
		consensusState exported.ConsensusState
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
			"failure: consensus state of another client type",
			func() {
				consensusState = suite.chain.NewLocalhostConsensusState()
			},
			clienttypes.ErrInvalidConsensus,
		},
		{
			"failure: invalid consensus state",
			func() {
				consensusState = mock.NewConsensusState(nil, suite.chain.GetTimestamp())
			},
			clienttypes.ErrInvalidConsensus,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			header := suite.chain.MockHeader()
			clientState = mock.NewClientState(suite.chain.ChainID, header.Height, ibctesting.TrustingPeriod)
			consensusState = header.ConsensusState()

			tc.malleate()

			clientID := clienttypes.FormatClientIdentifier(exported.Mock, 0)
			err := clientState.Initialise(suite.hostContext(), clientID, consensusState)
			if tc.expErr == nil {
				suite.Require().NoError(err)

				suite.Require().Equal(clientState, suite.chain.GetClientState(clientID))

				storedConsState, found := suite.chain.GetConsensusState(clientID, header.Height)
				suite.Require().True(found)
				suite.Require().Equal(consensusState, storedConsState)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)

				_, found := suite.chain.Keeper.GetClientState(suite.chain.GetContext(), clientID)
				suite.Require().False(found)
			}
		})
	}
}

func (suite *MockTestSuite) TestGetTimestampAtHeight() {
	clientID, clientState := suite.createClient()

	timestamp, err := clientState.GetTimestampAtHeight(suite.hostContext(), clientID, clientState.LatestHeight)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.chain.GetTimestamp(), timestamp)

	_, err = clientState.GetTimestampAtHeight(suite.hostContext(), clientID, clientState.LatestHeight.Increment())
	suite.Require().ErrorIs(err, clienttypes.ErrConsensusStateNotFound)
}

func (suite *MockTestSuite) TestVerifyMembership() {
	var (
		clientState *mock.ClientState
		proof       []byte
		root        exported.Root
		prefix      exported.Prefix
		path        exported.Path
		value       []byte
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
			"failure: wrong value",
			func() {
				value = []byte("other value")
			},
			clienttypes.ErrFailedMembershipVerification,
		},
		{
			"failure: wrong path",
			func() {
				path = commitmenttypes.NewMerklePath([]byte("mock/other"))
			},
			clienttypes.ErrFailedMembershipVerification,
		},
		{
			"failure: wrong prefix",
			func() {
				prefix = commitmenttypes.NewMerklePrefix([]byte("upgrade"))
			},
			clienttypes.ErrFailedMembershipVerification,
		},
		{
			"failure: wrong root",
			func() {
				root = commitmenttypes.NewMerkleRoot(ibctesting.MockOtherRoot)
			},
			clienttypes.ErrFailedMembershipVerification,
		},
		{
			"failure: malformed proof",
			func() {
				proof = []byte("not a proof")
			},
			commitmenttypes.ErrInvalidProof,
		},
		{
			"failure: client is frozen",
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

			suite.chain.GetContext().KVStore(suite.chain.StoreKey).Set(testKey, testValue)
			suite.chain.NextBlock()

			_, clientState = suite.createClient()

			proof, _ = suite.chain.QueryProof(testKey)
			root = commitmenttypes.NewMerkleRoot(suite.chain.GetCommitmentRoot())
			prefix = suite.chain.GetPrefix()
			path = commitmenttypes.NewMerklePath(testKey)
			value = testValue

			tc.malleate()

			err := clientState.VerifyMembership(suite.hostContext(), prefix, proof, root, path, value)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *MockTestSuite) TestVerifyNonMembership() {
	var (
		clientState *mock.ClientState
		proof       []byte
		path        exported.Path
	)

	absentKey := []byte("mock/absent")

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
			"failure: key is present",
			func() {
				proof, _ = suite.chain.QueryProof(testKey)
				path = commitmenttypes.NewMerklePath(testKey)
			},
			clienttypes.ErrFailedNonMembershipVerification,
		},
		{
			"failure: malformed proof",
			func() {
				proof = nil
			},
			commitmenttypes.ErrInvalidProof,
		},
		{
			"failure: client is frozen",
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

			suite.chain.GetContext().KVStore(suite.chain.StoreKey).Set(testKey, testValue)
			suite.chain.NextBlock()

			_, clientState = suite.createClient()

			proof, _ = suite.chain.QueryProof(absentKey)
			path = commitmenttypes.NewMerklePath(absentKey)

			tc.malleate()

			root := commitmenttypes.NewMerkleRoot(suite.chain.GetCommitmentRoot())
			err := clientState.VerifyNonMembership(suite.hostContext(), suite.chain.GetPrefix(), proof, root, path)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *MockTestSuite) TestUpgradeUnsupported() {
	clientID, clientState := suite.createClient()

	upgradedClient := mock.NewClientState(suite.chain.ChainID, clienttypes.NewHeight(2, 1), ibctesting.TrustingPeriod)
	upgradedConsState := mock.NewConsensusState(ibctesting.MockRoot, suite.chain.GetTimestamp())

	err := clientState.VerifyUpgradeClient(upgradedClient, upgradedConsState, &commitmenttypes.MerkleProof{}, &commitmenttypes.MerkleProof{}, commitmenttypes.NewMerkleRoot(ibctesting.MockRoot))
	suite.Require().ErrorIs(err, ibcerrors.ErrUnsupported)

	_, _, err = clientState.UpdateStateWithUpgradeClient(suite.hostContext(), clientID, upgradedClient, upgradedConsState)
	suite.Require().ErrorIs(err, ibcerrors.ErrUnsupported)
}
