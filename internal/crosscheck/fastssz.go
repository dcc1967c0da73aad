package crosscheck

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"

	"github.com/524119574/lcssz/lightclient"
)

// The functions below walk each container the way fastssz-generated
// HashTreeRootWith methods do.

// FastSSZBeaconBlockHeaderRoot roots a header with fastssz's hasher.
func FastSSZBeaconBlockHeaderRoot(h *lightclient.BeaconBlockHeader) ([32]byte, error) {
	hh := fssz.NewHasher()
	if err := putBeaconBlockHeader(hh, h); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// FastSSZExecutionPayloadHeaderRoot roots an execution header with fastssz's hasher.
func FastSSZExecutionPayloadHeaderRoot(e *lightclient.ExecutionPayloadHeader) ([32]byte, error) {
	hh := fssz.NewHasher()
	if err := putExecutionPayloadHeader(hh, e); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// FastSSZLightClientHeaderRoot roots a light-client header with fastssz's hasher.
func FastSSZLightClientHeaderRoot(h *lightclient.LightClientHeader) ([32]byte, error) {
	hh := fssz.NewHasher()
	indx := hh.Index()
	if err := putBeaconBlockHeader(hh, h.Beacon); err != nil {
		return [32]byte{}, err
	}
	if err := putExecutionPayloadHeader(hh, h.Execution); err != nil {
		return [32]byte{}, err
	}
	if err := putRoots(hh, h.ExecutionBranch, lightclient.ExecutionBranchDepth); err != nil {
		return [32]byte{}, err
	}
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// FastSSZSyncCommitteeRoot roots a sync committee with fastssz's hasher.
func FastSSZSyncCommitteeRoot(c *lightclient.SyncCommittee) ([32]byte, error) {
	hh := fssz.NewHasher()
	indx := hh.Index()
	if len(c.PubKeys) != lightclient.SyncCommitteeSize {
		return [32]byte{}, errors.Errorf("expected %d pubkeys, got %d", lightclient.SyncCommitteeSize, len(c.PubKeys))
	}
	subIndx := hh.Index()
	for _, pk := range c.PubKeys {
		if len(pk) != lightclient.BLSPubkeyLength {
			return [32]byte{}, errors.Errorf("pubkey of %d bytes", len(pk))
		}
		hh.PutBytes(pk)
	}
	hh.Merkleize(subIndx)
	if len(c.AggregatePubKey) != lightclient.BLSPubkeyLength {
		return [32]byte{}, errors.Errorf("aggregate pubkey of %d bytes", len(c.AggregatePubKey))
	}
	hh.PutBytes(c.AggregatePubKey)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// FastSSZSyncAggregateRoot roots a sync aggregate with fastssz's hasher.
func FastSSZSyncAggregateRoot(a *lightclient.SyncAggregate) ([32]byte, error) {
	hh := fssz.NewHasher()
	indx := hh.Index()
	hh.PutBytes([]byte(a.SyncCommitteeBits))
	hh.PutBytes(a.SyncCommitteeSignature)
	hh.Merkleize(indx)
	return hh.HashRoot()
}

func putBeaconBlockHeader(hh *fssz.Hasher, h *lightclient.BeaconBlockHeader) error {
	indx := hh.Index()
	hh.PutUint64(h.Slot)
	hh.PutUint64(h.ProposerIndex)
	for _, r := range [][]byte{h.ParentRoot, h.StateRoot, h.BodyRoot} {
		if len(r) != lightclient.RootLength {
			return errors.Errorf("root of %d bytes", len(r))
		}
		hh.PutBytes(r)
	}
	hh.Merkleize(indx)
	return nil
}

func putExecutionPayloadHeader(hh *fssz.Hasher, e *lightclient.ExecutionPayloadHeader) error {
	indx := hh.Index()
	hh.PutBytes(e.ParentHash)
	hh.PutBytes(e.FeeRecipient)
	hh.PutBytes(e.StateRoot)
	hh.PutBytes(e.ReceiptsRoot)
	hh.PutBytes(e.LogsBloom)
	hh.PutBytes(e.PrevRandao)
	hh.PutUint64(e.BlockNumber)
	hh.PutUint64(e.GasLimit)
	hh.PutUint64(e.GasUsed)
	hh.PutUint64(e.Timestamp)

	// extra_data
	{
		if len(e.ExtraData) > lightclient.MaxExtraDataBytes {
			return errors.Errorf("extra data of %d bytes", len(e.ExtraData))
		}
		elemIndx := hh.Index()
		hh.Append(padTo32(e.ExtraData))
		hh.MerkleizeWithMixin(elemIndx, uint64(len(e.ExtraData)), (lightclient.MaxExtraDataBytes+31)/32)
	}

	if e.BaseFeePerGas == nil {
		return errors.New("nil base fee")
	}
	var fee [32]byte
	be := e.BaseFeePerGas.Bytes32()
	for i := range fee {
		fee[i] = be[31-i]
	}
	hh.Append(fee[:])
	hh.PutBytes(e.BlockHash)
	hh.PutBytes(e.TransactionsRoot)
	hh.PutBytes(e.WithdrawalsRoot)
	hh.PutUint64(e.BlobGasUsed)
	hh.PutUint64(e.ExcessBlobGas)
	hh.Merkleize(indx)
	return nil
}

func putRoots(hh *fssz.Hasher, roots [][]byte, n int) error {
	if len(roots) != n {
		return errors.Errorf("expected %d roots, got %d", n, len(roots))
	}
	subIndx := hh.Index()
	for _, r := range roots {
		hh.PutBytes(r)
	}
	hh.Merkleize(subIndx)
	return nil
}

func padTo32(b []byte) []byte {
	out := make([]byte, (len(b)+31)/32*32)
	copy(out, b)
	return out
}
