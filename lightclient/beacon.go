package lightclient

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/holiman/uint256"

	"github.com/524119574/lcssz/types"
)

var (
	_ fssz.Marshaler   = (*BeaconBlockHeader)(nil)
	_ fssz.Unmarshaler = (*BeaconBlockHeader)(nil)
	_ fssz.Marshaler   = (*ExecutionPayloadHeader)(nil)
	_ fssz.Unmarshaler = (*ExecutionPayloadHeader)(nil)
)

// BeaconBlockHeader is the header of a beacon block.
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    []byte
	StateRoot     []byte
	BodyRoot      []byte
}

func (h *BeaconBlockHeader) Descriptor() *types.Descriptor { return BeaconBlockHeaderType }

func (h *BeaconBlockHeader) SSZValue() interface{} {
	return []interface{}{h.Slot, h.ProposerIndex, h.ParentRoot, h.StateRoot, h.BodyRoot}
}

func (h *BeaconBlockHeader) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, BeaconBlockHeaderType)
	out := BeaconBlockHeader{
		Slot:          r.uint64(0),
		ProposerIndex: r.uint64(1),
		ParentRoot:    r.bytes(2),
		StateRoot:     r.bytes(3),
		BodyRoot:      r.bytes(4),
	}
	if r.err != nil {
		return r.err
	}
	*h = out
	return nil
}

// MarshalSSZ ssz marshals the BeaconBlockHeader object
func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) { return marshalTyped(h) }

// MarshalSSZTo ssz marshals the BeaconBlockHeader object to a target array
func (h *BeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) { return marshalTypedTo(dst, h) }

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockHeader object
func (h *BeaconBlockHeader) SizeSSZ() int { return sizeTyped(h) }

// UnmarshalSSZ ssz unmarshals the BeaconBlockHeader object
func (h *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, h) }

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) { return rootTyped(h) }

// ExecutionPayloadHeader is the Deneb execution payload header.
type ExecutionPayloadHeader struct {
	ParentHash       []byte
	FeeRecipient     []byte
	StateRoot        []byte
	ReceiptsRoot     []byte
	LogsBloom        []byte
	PrevRandao       []byte
	BlockNumber      uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte
	BaseFeePerGas    *uint256.Int
	BlockHash        []byte
	TransactionsRoot []byte
	WithdrawalsRoot  []byte
	BlobGasUsed      uint64
	ExcessBlobGas    uint64
}

func (h *ExecutionPayloadHeader) Descriptor() *types.Descriptor { return ExecutionPayloadHeaderType }

func (h *ExecutionPayloadHeader) SSZValue() interface{} {
	extra := h.ExtraData
	if extra == nil {
		extra = []byte{}
	}
	return []interface{}{
		h.ParentHash,
		h.FeeRecipient,
		h.StateRoot,
		h.ReceiptsRoot,
		h.LogsBloom,
		h.PrevRandao,
		h.BlockNumber,
		h.GasLimit,
		h.GasUsed,
		h.Timestamp,
		extra,
		h.BaseFeePerGas,
		h.BlockHash,
		h.TransactionsRoot,
		h.WithdrawalsRoot,
		h.BlobGasUsed,
		h.ExcessBlobGas,
	}
}

func (h *ExecutionPayloadHeader) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, ExecutionPayloadHeaderType)
	out := ExecutionPayloadHeader{
		ParentHash:       r.bytes(0),
		FeeRecipient:     r.bytes(1),
		StateRoot:        r.bytes(2),
		ReceiptsRoot:     r.bytes(3),
		LogsBloom:        r.bytes(4),
		PrevRandao:       r.bytes(5),
		BlockNumber:      r.uint64(6),
		GasLimit:         r.uint64(7),
		GasUsed:          r.uint64(8),
		Timestamp:        r.uint64(9),
		ExtraData:        r.bytes(10),
		BaseFeePerGas:    r.uint256(11),
		BlockHash:        r.bytes(12),
		TransactionsRoot: r.bytes(13),
		WithdrawalsRoot:  r.bytes(14),
		BlobGasUsed:      r.uint64(15),
		ExcessBlobGas:    r.uint64(16),
	}
	if r.err != nil {
		return r.err
	}
	*h = out
	return nil
}

// MarshalSSZ ssz marshals the ExecutionPayloadHeader object
func (h *ExecutionPayloadHeader) MarshalSSZ() ([]byte, error) { return marshalTyped(h) }

// MarshalSSZTo ssz marshals the ExecutionPayloadHeader object to a target array
func (h *ExecutionPayloadHeader) MarshalSSZTo(dst []byte) ([]byte, error) {
	return marshalTypedTo(dst, h)
}

// SizeSSZ returns the ssz encoded size in bytes for the ExecutionPayloadHeader object
func (h *ExecutionPayloadHeader) SizeSSZ() int { return sizeTyped(h) }

// UnmarshalSSZ ssz unmarshals the ExecutionPayloadHeader object
func (h *ExecutionPayloadHeader) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, h) }

// HashTreeRoot ssz hashes the ExecutionPayloadHeader object
func (h *ExecutionPayloadHeader) HashTreeRoot() ([32]byte, error) { return rootTyped(h) }
