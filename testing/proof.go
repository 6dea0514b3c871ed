package ibctesting

import (
	"fmt"

	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"

	storetypes "cosmossdk.io/store/types"

	clienttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/02-client/types"
	commitmenttypes "github.com/DaviRain-Su/ibc-light-clients/modules/core/23-commitment/types"
)

// QueryProof performs an abci query with the given key against the IBC store and returns the
// marshaled merkle proof along with the height of the consensus state which commits to it.
func (chain *TestChain) QueryProof(key []byte) ([]byte, clienttypes.Height) {
	return chain.QueryProofForStore(chain.StoreKey.Name(), key)
}

// QueryUpgradeProof performs an abci query with the given key against the upgrade store and
// returns the marshaled merkle proof along with the height of the consensus state which commits to it.
func (chain *TestChain) QueryUpgradeProof(key []byte) ([]byte, clienttypes.Height) {
	return chain.QueryProofForStore(chain.UpgradeKey.Name(), key)
}

// QueryProofForStore performs an abci query with the given key against the named store at the
// latest committed version. The root of the returned proof is the app hash carried by the
// header of the current block, so the returned height is the current block height.
func (chain *TestChain) QueryProofForStore(storeName string, key []byte) ([]byte, clienttypes.Height) {
	merkleProof := chain.QueryMerkleProof(storeName, key)

	proof, err := proto.Marshal(&merkleProof)
	require.NoError(chain.TB, err)

	revision := clienttypes.ParseChainID(chain.ChainID)

	// proof height + 1 is returned as the proof created corresponds to the height the proof
	// was created in the IAVL tree. The header of the next block carries its app hash.
	return proof, clienttypes.NewHeight(revision, uint64(chain.LastCommitID.Version)+1)
}

// QueryMerkleProof queries the named store at the latest committed version and converts the
// returned proof operations into a merkle proof.
func (chain *TestChain) QueryMerkleProof(storeName string, key []byte) commitmenttypes.MerkleProof {
	queryable, ok := chain.CMS.(storetypes.Queryable)
	require.True(chain.TB, ok, "commit multistore does not support queries")

	res, err := queryable.Query(&storetypes.RequestQuery{
		Path:   fmt.Sprintf("/%s/key", storeName),
		Height: chain.LastCommitID.Version,
		Data:   key,
		Prove:  true,
	})
	require.NoError(chain.TB, err)

	merkleProof, err := commitmenttypes.ConvertProofs(res.ProofOps)
	require.NoError(chain.TB, err)

	return merkleProof
}
