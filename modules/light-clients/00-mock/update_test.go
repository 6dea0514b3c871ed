package mock_test

import (
	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	ibcerrors "github.com/DaviRain-Su/ibc-light-clients/modules/core/errors"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	mock "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/00-mock"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
	ibctesting "github.com/DaviRain-Su/ibc-light-clients/testing"
)

func (suite *MockTestSuite) TestVerifyClientMessage() {
	var (
		clientID    string
		clientState *mock.ClientState
		clientMsg   exported.ClientMessage
		kind        exported.UpdateKind
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: header",
			func() {},
			nil,
		},
		{
			"success: misbehaviour",
			func() {
				header := suite.chain.MockHeader()
				clientMsg = mock.NewMisbehaviour(clientID, header, mock.NewHeader(header.Height, ibctesting.MockOtherRoot, header.Timestamp))
				kind = exported.UpdateKindMisbehaviour
			},
			nil,
		},
		{
			"failure: header with empty root",
			func() {
				clientMsg = mock.NewHeader(suite.chain.GetSelfHeight(), nil, suite.chain.GetTimestamp())
			},
			clienttypes.ErrInvalidHeader,
		},
		{
			"failure: header submitted as misbehaviour",
			func() {
				kind = exported.UpdateKindMisbehaviour
			},
			ibcerrors.ErrUnsupported,
		},
		{
			"failure: misbehaviour submitted as an update",
			func() {
				header := suite.chain.MockHeader()
				clientMsg = mock.NewMisbehaviour(clientID, header, header)
			},
			ibcerrors.ErrUnsupported,
		},
		{
			"failure: misbehaviour for another client",
			func() {
				header := suite.chain.MockHeader()
				clientMsg = mock.NewMisbehaviour(clienttypes.FormatClientIdentifier(exported.Mock, 10), header, header)
				kind = exported.UpdateKindMisbehaviour
			},
			clienttypes.ErrInvalidMisbehaviour,
		},
		{
			"failure: misbehaviour headers at different heights",
			func() {
				header := suite.chain.MockHeader()
				clientMsg = mock.NewMisbehaviour(clientID, header, mock.NewHeader(header.Height.Increment().(clienttypes.Height), header.Root.GetHash(), header.Timestamp))
				kind = exported.UpdateKindMisbehaviour
			},
			clienttypes.ErrInvalidMisbehaviour,
		},
		{
			"failure: client message of another client type",
			func() {
				clientMsg = suite.chain.LocalhostHeader()
			},
			mock.ErrInvalidClientMsg,
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

			clientID, clientState = suite.createClient()
			suite.chain.NextBlock()

			clientMsg = suite.chain.MockHeader()
			kind = exported.UpdateKindClient

			tc.malleate()

			err := clientState.VerifyClientMessage(suite.hostContext(), clientID, clientMsg, kind)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *MockTestSuite) TestCheckForMisbehaviour() {
	var (
		clientID    string
		clientState *mock.ClientState
		clientMsg   exported.ClientMessage
	)

	testCases := []struct {
		name     string
		malleate func()
		expFound bool
		expErr   error
	}{
		{
			"header at a new height",
			func() {
				suite.chain.NextBlock()
				clientMsg = suite.chain.MockHeader()
			},
			false,
			nil,
		},
		{
			"header matching the stored consensus state",
			func() {},
			false,
			nil,
		},
		{
			"header with a conflicting root",
			func() {
				header := clientMsg.(*mock.Header)
				clientMsg = mock.NewHeader(header.Height, ibctesting.MockOtherRoot, header.Timestamp)
			},
			true,
			nil,
		},
		{
			"header with a conflicting timestamp",
			func() {
				header := clientMsg.(*mock.Header)
				clientMsg = mock.NewHeader(header.Height, header.Root.GetHash(), header.Timestamp+1)
			},
			true,
			nil,
		},
		{
			"misbehaviour with conflicting headers",
			func() {
				header := clientMsg.(*mock.Header)
				clientMsg = mock.NewMisbehaviour(clientID, header, mock.NewHeader(header.Height, ibctesting.MockOtherRoot, header.Timestamp))
			},
			true,
			nil,
		},
		{
			"misbehaviour with identical headers",
			func() {
				header := clientMsg.(*mock.Header)
				clientMsg = mock.NewMisbehaviour(clientID, header, header)
			},
			false,
			nil,
		},
		{
			"client message of another client type",
			func() {
				clientMsg = localhost.NewHeader(clientState.LatestHeight, suite.chain.GetTimestamp())
			},
			false,
			mock.ErrInvalidClientMsg,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientID, clientState = suite.createClient()
			clientMsg = suite.chain.MockHeader()

			tc.malleate()

			found, err := clientState.CheckForMisbehaviour(suite.hostContext(), clientID, clientMsg, exported.UpdateKindClient)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
			suite.Require().Equal(tc.expFound, found)
		})
	}
}

func (suite *MockTestSuite) TestUpdateState() {
	clientID, clientState := suite.createClient()
	initialHeight := clientState.LatestHeight

	suite.chain.NextBlock()
	header := suite.chain.MockHeader()

	heights, err := clientState.UpdateState(suite.hostContext(), clientID, header)
	suite.Require().NoError(err)
	suite.Require().Equal([]exported.Height{header.Height}, heights)
	suite.Require().Equal(header.Height, clientState.LatestHeight)
	suite.Require().Equal(clientState, suite.chain.GetClientState(clientID))

	consState, found := suite.chain.GetConsensusState(clientID, header.Height)
	suite.Require().True(found)
	suite.Require().Equal(header.ConsensusState(), consState)

	// a header below the latest height stores a consensus state without moving the client backwards
	pastHeader := mock.NewHeader(clienttypes.NewHeight(initialHeight.RevisionNumber, 1), ibctesting.MockRoot, 1)
	heights, err = clientState.UpdateState(suite.hostContext(), clientID, pastHeader)
	suite.Require().NoError(err)
	suite.Require().Equal([]exported.Height{pastHeader.Height}, heights)
	suite.Require().Equal(header.Height, clientState.LatestHeight)

	_, found = suite.chain.GetConsensusState(clientID, pastHeader.Height)
	suite.Require().True(found)

	_, err = clientState.UpdateState(suite.hostContext(), clientID, mock.NewMisbehaviour(clientID, header, header))
	suite.Require().ErrorIs(err, mock.ErrInvalidClientMsg)
}

func (suite *MockTestSuite) TestUpdateStateOnMisbehaviour() {
	testCases := []struct {
		name            string
		clientMsg       func(clientID string) exported.ClientMessage
		expFrozenHeight clienttypes.Height
	}{
		{
			"header",
			func(string) exported.ClientMessage {
				return mock.NewHeader(clienttypes.NewHeight(1, 5), ibctesting.MockOtherRoot, 1)
			},
			clienttypes.NewHeight(1, 5),
		},
		{
			"misbehaviour",
			func(clientID string) exported.ClientMessage {
				header1 := mock.NewHeader(clienttypes.NewHeight(1, 7), ibctesting.MockRoot, 1)
				header2 := mock.NewHeader(clienttypes.NewHeight(1, 7), ibctesting.MockOtherRoot, 1)
				return mock.NewMisbehaviour(clientID, header1, header2)
			},
			clienttypes.NewHeight(1, 7),
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			clientID, clientState := suite.createClient()

			err := clientState.UpdateStateOnMisbehaviour(suite.hostContext(), clientID, tc.clientMsg(clientID), exported.UpdateKindMisbehaviour)
			suite.Require().NoError(err)

			suite.Require().Equal(&tc.expFrozenHeight, clientState.FrozenHeight)
			suite.Require().Equal(exported.Frozen, clientState.Status(suite.hostContext(), clientID))
			suite.Require().Equal(clientState, suite.chain.GetClientState(clientID))

			err = clientState.UpdateStateOnMisbehaviour(suite.hostContext(), clientID, tc.clientMsg(clientID), exported.UpdateKindMisbehaviour)
			suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)

			_, err = clientState.UpdateState(suite.hostContext(), clientID, suite.chain.MockHeader())
			suite.Require().ErrorIs(err, clienttypes.ErrClientFrozen)
		})
	}

	clientID, clientState := suite.createClient()
	err := clientState.UpdateStateOnMisbehaviour(suite.hostContext(), clientID, suite.chain.LocalhostHeader(), exported.UpdateKindClient)
	suite.Require().ErrorIs(err, mock.ErrInvalidClientMsg)
	suite.Require().Nil(clientState.FrozenHeight)
}
