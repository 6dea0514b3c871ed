/*
This file contains the variables, constants, and default values
used in the testing package and commonly defined in tests.
*/
package ibctesting

import (
	"strconv"
	"time"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
)

const (
	ChainIDPrefix = "testchain"
	// to disable revision format, set ChainIDSuffix to ""
	ChainIDSuffix = "-1"

	// UpgradeStoreKey is the name of the store the upgrade plan commits upgraded clients under.
	UpgradeStoreKey = "upgrade"

	TrustingPeriod time.Duration = time.Hour * 24 * 7 * 2
	TimeIncrement  time.Duration = time.Second * 5

	InvalidID = "IDisInvalid"
)

var (
	globalStartTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	// DefaultChainID is the chain-id used by NewTestChain. Its revision number is 1.
	DefaultChainID = GetChainID(1)

	MockRoot      = []byte("mock root")
	MockOtherRoot = []byte("mock other root")

	ZeroHeight = clienttypes.ZeroHeight()
)

// GetChainID returns the chainID used for the provided index.
func GetChainID(index int) string {
	return ChainIDPrefix + strconv.Itoa(index) + ChainIDSuffix
}
