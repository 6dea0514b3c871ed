package exported

const (
	// ModuleName defines the IBC module name
	ModuleName = "ibc"

	// StoreKey is the string store representation
	StoreKey = ModuleName
)
