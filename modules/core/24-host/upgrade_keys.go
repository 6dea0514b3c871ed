package host

import "fmt"

const (
	// KeyUpgradeStore is the name of the store in which upgrade plans commit the upgraded IBC state.
	KeyUpgradeStore = "upgrade"

	KeyUpgradedIBCState  = "upgradedIBCState"
	KeyUpgradedClient    = "upgradedClient"
	KeyUpgradedConsState = "upgradedConsState"
)

// UpgradedClientPath returns the path under which the upgraded client state is committed
// for the given last height of the current revision.
func UpgradedClientPath(height uint64) string {
	return fmt.Sprintf("%s/%d/%s", KeyUpgradedIBCState, height, KeyUpgradedClient)
}

// UpgradedClientKey returns the store key of UpgradedClientPath.
func UpgradedClientKey(height uint64) []byte {
	return []byte(UpgradedClientPath(height))
}

// UpgradedConsStatePath returns the path under which the upgraded consensus state is committed
// for the given last height of the current revision.
func UpgradedConsStatePath(height uint64) string {
	return fmt.Sprintf("%s/%d/%s", KeyUpgradedIBCState, height, KeyUpgradedConsState)
}

// UpgradedConsStateKey returns the store key of UpgradedConsStatePath.
func UpgradedConsStateKey(height uint64) []byte {
	return []byte(UpgradedConsStatePath(height))
}
