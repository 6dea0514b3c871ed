package localhost_test

import (
	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
)

func (suite *LocalhostTestSuite) TestUpdateStateOnMisbehaviour() {
	var (
		clientState *localhost.ClientState
		clientMsg   exported.ClientMessage
		kind        exported.UpdateKind
	)

	testCases := []struct {
		name            string
		malleate        func()
		expFrozenHeight func() clienttypes.Height
		expErr          error
	}{
		{
			"success: header",
			func() {},
			func() clienttypes.Height { return clientMsg.(*localhost.Header).Height },
			nil,
		},
		{
			"success: misbehaviour",
			func() {
				header1 := localhost.NewHeader(clienttypes.NewHeight(1, 1), 1)
				header2 := localhost.NewHeader(clienttypes.NewHeight(1, 1), 2)
				clientMsg = localhost.NewMisbehaviour(exported.LocalhostClientID, header1, header2)
				kind = exported.UpdateKindMisbehaviour
			},
			func() clienttypes.Height { return clienttypes.NewHeight(1, 1) },
			nil,
		},
		{
			"failure: update kind does not match the client message",
			func() {
				kind = exported.UpdateKindMisbehaviour
			},
			nil,
			ibcerrors.ErrUnsupported,
		},
		{
			"failure: nil header",
			func() {
				clientMsg = (*localhost.Header)(nil)
			},
			nil,
			clienttypes.ErrInvalidHeader,
		},
		{
			"failure: nil misbehaviour",
			func() {
				clientMsg = (*localhost.Misbehaviour)(nil)
				kind = exported.UpdateKindMisbehaviour
			},
			nil,
			clienttypes.ErrInvalidMisbehaviour,
		},
		{
			"failure: client is already frozen",
			func() {
				frozenHeight := clienttypes.NewHeight(1, 1)
				clientState.FrozenHeight = &frozenHeight
			},
			nil,
			clienttypes.ErrClientFrozen,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientState = suite.createClient()
			clientMsg = suite.chain.LocalhostHeader()
			kind = exported.UpdateKindClient

			tc.malleate()

			heightsBefore := suite.chain.Keeper.GetConsensusStateHeights(suite.chain.GetContext(), exported.LocalhostClientID)

			err := clientState.UpdateStateOnMisbehaviour(suite.hostContext(), exported.LocalhostClientID, clientMsg, kind)
			if tc.expErr == nil {
				suite.Require().NoError(err)

				expFrozenHeight := tc.expFrozenHeight()
				suite.Require().Equal(&expFrozenHeight, clientState.FrozenHeight)
				suite.Require().Equal(exported.Frozen, clientState.Status(suite.hostContext(), exported.LocalhostClientID))
				suite.Require().Equal(clientState, suite.chain.GetClientState(exported.LocalhostClientID))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}

			// no consensus state is written when freezing
			suite.Require().Equal(heightsBefore, suite.chain.Keeper.GetConsensusStateHeights(suite.chain.GetContext(), exported.LocalhostClientID))
		})
	}
}

func (suite *LocalhostTestSuite) TestFrozenClientRemainsFrozen() {
	clientState := suite.createClient()
	header := suite.chain.LocalhostHeader()

	suite.Require().NoError(clientState.UpdateStateOnMisbehaviour(suite.hostContext(), exported.LocalhostClientID, header, exported.UpdateKindClient))
	frozenHeight := *clientState.FrozenHeight

	suite.chain.NextBlock()
	hostCtx := suite.hostContext()
	nextHeader := suite.chain.LocalhostHeader()

	suite.Require().ErrorIs(clientState.ConfirmNotFrozen(), clienttypes.ErrClientFrozen)
	suite.Require().ErrorIs(clientState.VerifyClientMessage(hostCtx, exported.LocalhostClientID, nextHeader, exported.UpdateKindClient), clienttypes.ErrClientFrozen)

	_, err := clientState.UpdateState(hostCtx, exported.LocalhostClientID, nextHeader)
	suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)

	err = clientState.UpdateStateOnMisbehaviour(hostCtx, exported.LocalhostClientID, nextHeader, exported.UpdateKindClient)
	suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)

	err = clientState.VerifyMembership(hostCtx, suite.chain.GetPrefix(), localhost.SentinelProof, nil, commitmenttypes.NewMerklePath([]byte("key")), []byte("value"))
	suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)

	err = clientState.VerifyUpgradeClient(suite.chain.NewLocalhostClientState(), suite.chain.NewLocalhostConsensusState(), &commitmenttypes.MerkleProof{}, &commitmenttypes.MerkleProof{}, commitmenttypes.NewMerkleRoot(suite.chain.GetCommitmentRoot()))
	suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)

	// inspection keeps working and the frozen height is never cleared
	suite.Require().Equal(header.Height, clientState.GetLatestHeight())
	suite.Require().NoError(clientState.ValidateProofHeight(header.Height))
	suite.Require().Equal(exported.Frozen, clientState.Status(hostCtx, exported.LocalhostClientID))
	suite.Require().Equal(frozenHeight, *clientState.FrozenHeight)
	suite.Require().Equal(frozenHeight, *suite.chain.GetClientState(exported.LocalhostClientID).(*localhost.ClientState).FrozenHeight)
}
