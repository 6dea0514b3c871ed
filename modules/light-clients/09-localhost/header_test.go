package localhost_test

import (
	"time"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
	host "github.com/DaviRain-Su/ibc-light-clients/modules/core/24-host"
	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
	localhost "github.com/DaviRain-Su/ibc-light-clients/modules/light-clients/09-localhost"
)

func (suite *LocalhostTestSuite) TestHeaderValidateBasic() {
	testCases := []struct {
		name   string
		header *localhost.Header
		expErr error
	}{
		{"valid header", localhost.NewHeader(clienttypes.NewHeight(0, 11), 1), nil},
		{"zero revision height", localhost.NewHeader(clienttypes.NewHeight(1, 0), 1), clienttypes.ErrInvalidHeader},
		{"zero timestamp", localhost.NewHeader(clienttypes.NewHeight(0, 11), 0), clienttypes.ErrInvalidHeader},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.header.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *LocalhostTestSuite) TestHeaderGetters() {
	blockTime := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	header := localhost.NewHeader(clienttypes.NewHeight(0, 11), uint64(blockTime.UnixNano()))

	suite.Require().Equal(exported.Localhost, header.ClientType())
	suite.Require().Equal(clienttypes.NewHeight(0, 11), header.GetHeight())
	suite.Require().Equal(blockTime, header.GetTime())
}

func (suite *LocalhostTestSuite) TestConsensusStateValidateBasic() {
	testCases := []struct {
		name           string
		consensusState *localhost.ConsensusState
		expErr         error
	}{
		{"valid consensus state", localhost.NewConsensusState(commitmenttypes.NewMerkleRoot([]byte("app hash")), 1), nil},
		{"empty root", localhost.NewConsensusState(commitmenttypes.NewMerkleRoot(nil), 1), clienttypes.ErrInvalidConsensus},
		{"zero timestamp", localhost.NewConsensusState(commitmenttypes.NewMerkleRoot([]byte("app hash")), 0), clienttypes.ErrInvalidConsensus},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.consensusState.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(exported.Localhost, tc.consensusState.ClientType())
				suite.Require().Equal(tc.consensusState.Root, tc.consensusState.GetRoot())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *LocalhostTestSuite) TestMisbehaviourValidateBasic() {
	header := localhost.NewHeader(clienttypes.NewHeight(0, 11), 1)

	testCases := []struct {
		name         string
		misbehaviour *localhost.Misbehaviour
		expErr       error
	}{
		{"valid misbehaviour", localhost.NewMisbehaviour(exported.LocalhostClientID, header, localhost.NewHeader(header.Height, 2)), nil},
		{"invalid client id", localhost.NewMisbehaviour("", header, header), host.ErrInvalidID},
		{"nil header1", localhost.NewMisbehaviour(exported.LocalhostClientID, nil, header), clienttypes.ErrInvalidHeader},
		{"nil header2", localhost.NewMisbehaviour(exported.LocalhostClientID, header, nil), clienttypes.ErrInvalidHeader},
		{"invalid header", localhost.NewMisbehaviour(exported.LocalhostClientID, header, localhost.NewHeader(header.Height, 0)), clienttypes.ErrInvalidHeader},
		{"headers at different heights", localhost.NewMisbehaviour(exported.LocalhostClientID, header, localhost.NewHeader(clienttypes.NewHeight(0, 12), 1)), clienttypes.ErrInvalidMisbehaviour},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.misbehaviour.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(header.Height, tc.misbehaviour.GetHeight())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *LocalhostTestSuite) TestMisbehaviourGetHeightWithoutHeader() {
	misbehaviour := localhost.NewMisbehaviour(exported.LocalhostClientID, nil, localhost.NewHeader(clienttypes.NewHeight(0, 11), 1))

	suite.Require().NotPanics(func() {
		suite.Require().Equal(clienttypes.ZeroHeight(), misbehaviour.GetHeight())
	})
	suite.Require().ErrorIs(misbehaviour.ValidateBasic(), clienttypes.ErrInvalidHeader)
}
