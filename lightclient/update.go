package lightclient

import (
	fssz "github.com/ferranbt/fastssz"

	"github.com/524119574/lcssz/types"
)

var (
	_ fssz.Marshaler   = (*LightClientHeader)(nil)
	_ fssz.Marshaler   = (*LightClientBootstrap)(nil)
	_ fssz.Marshaler   = (*LightClientUpdate)(nil)
	_ fssz.Marshaler   = (*LightClientFinalityUpdate)(nil)
	_ fssz.Marshaler   = (*LightClientOptimisticUpdate)(nil)
	_ fssz.Unmarshaler = (*LightClientUpdate)(nil)
)

// nestedValue returns the SSZ value of a possibly nil nested container. A nil
// pointer is encoded as the zero value of its type.
func nestedValue(v typedValue, isNil bool, d *types.Descriptor) interface{} {
	if isNil {
		return types.Default(d)
	}
	return v.SSZValue()
}

func headerValue(h *LightClientHeader) interface{} {
	return nestedValue(h, h == nil, LightClientHeaderType)
}

func committeeValue(c *SyncCommittee) interface{} {
	return nestedValue(c, c == nil, SyncCommitteeType)
}

func aggregateValue(a *SyncAggregate) interface{} {
	return nestedValue(a, a == nil, SyncAggregateType)
}

// LightClientHeader pairs a beacon header with the execution payload header
// it commits to.
type LightClientHeader struct {
	Beacon          *BeaconBlockHeader
	Execution       *ExecutionPayloadHeader
	ExecutionBranch [][]byte
}

func (h *LightClientHeader) Descriptor() *types.Descriptor { return LightClientHeaderType }

func (h *LightClientHeader) SSZValue() interface{} {
	return []interface{}{
		nestedValue(h.Beacon, h.Beacon == nil, BeaconBlockHeaderType),
		nestedValue(h.Execution, h.Execution == nil, ExecutionPayloadHeaderType),
		branchValue(h.ExecutionBranch),
	}
}

func (h *LightClientHeader) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, LightClientHeaderType)
	out := LightClientHeader{
		Beacon:    new(BeaconBlockHeader),
		Execution: new(ExecutionPayloadHeader),
	}
	r.nested(0, out.Beacon)
	r.nested(1, out.Execution)
	out.ExecutionBranch = r.branch(2)
	if r.err != nil {
		return r.err
	}
	*h = out
	return nil
}

// MarshalSSZ ssz marshals the LightClientHeader object
func (h *LightClientHeader) MarshalSSZ() ([]byte, error) { return marshalTyped(h) }

// MarshalSSZTo ssz marshals the LightClientHeader object to a target array
func (h *LightClientHeader) MarshalSSZTo(dst []byte) ([]byte, error) { return marshalTypedTo(dst, h) }

// SizeSSZ returns the ssz encoded size in bytes for the LightClientHeader object
func (h *LightClientHeader) SizeSSZ() int { return sizeTyped(h) }

// UnmarshalSSZ ssz unmarshals the LightClientHeader object
func (h *LightClientHeader) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, h) }

// HashTreeRoot ssz hashes the LightClientHeader object
func (h *LightClientHeader) HashTreeRoot() ([32]byte, error) { return rootTyped(h) }

// LightClientBootstrap is the trusted starting point of a light client.
type LightClientBootstrap struct {
	Header                     *LightClientHeader
	CurrentSyncCommittee       *SyncCommittee
	CurrentSyncCommitteeBranch [][]byte
}

func (b *LightClientBootstrap) Descriptor() *types.Descriptor { return LightClientBootstrapType }

func (b *LightClientBootstrap) SSZValue() interface{} {
	return []interface{}{
		headerValue(b.Header),
		committeeValue(b.CurrentSyncCommittee),
		branchValue(b.CurrentSyncCommitteeBranch),
	}
}

func (b *LightClientBootstrap) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, LightClientBootstrapType)
	out := LightClientBootstrap{
		Header:               new(LightClientHeader),
		CurrentSyncCommittee: new(SyncCommittee),
	}
	r.nested(0, out.Header)
	r.nested(1, out.CurrentSyncCommittee)
	out.CurrentSyncCommitteeBranch = r.branch(2)
	if r.err != nil {
		return r.err
	}
	*b = out
	return nil
}

// MarshalSSZ ssz marshals the LightClientBootstrap object
func (b *LightClientBootstrap) MarshalSSZ() ([]byte, error) { return marshalTyped(b) }

// MarshalSSZTo ssz marshals the LightClientBootstrap object to a target array
func (b *LightClientBootstrap) MarshalSSZTo(dst []byte) ([]byte, error) {
	return marshalTypedTo(dst, b)
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientBootstrap object
func (b *LightClientBootstrap) SizeSSZ() int { return sizeTyped(b) }

// UnmarshalSSZ ssz unmarshals the LightClientBootstrap object
func (b *LightClientBootstrap) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, b) }

// HashTreeRoot ssz hashes the LightClientBootstrap object
func (b *LightClientBootstrap) HashTreeRoot() ([32]byte, error) { return rootTyped(b) }

// LightClientUpdate advances a light client to a new attested and finalized
// header, optionally rotating in the next sync committee.
type LightClientUpdate struct {
	AttestedHeader          *LightClientHeader
	NextSyncCommittee       *SyncCommittee
	NextSyncCommitteeBranch [][]byte
	FinalizedHeader         *LightClientHeader
	FinalityBranch          [][]byte
	SyncAggregate           *SyncAggregate
	SignatureSlot           uint64
}

func (u *LightClientUpdate) Descriptor() *types.Descriptor { return LightClientUpdateType }

func (u *LightClientUpdate) SSZValue() interface{} {
	return []interface{}{
		headerValue(u.AttestedHeader),
		committeeValue(u.NextSyncCommittee),
		branchValue(u.NextSyncCommitteeBranch),
		headerValue(u.FinalizedHeader),
		branchValue(u.FinalityBranch),
		aggregateValue(u.SyncAggregate),
		u.SignatureSlot,
	}
}

func (u *LightClientUpdate) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, LightClientUpdateType)
	out := LightClientUpdate{
		AttestedHeader:    new(LightClientHeader),
		NextSyncCommittee: new(SyncCommittee),
		FinalizedHeader:   new(LightClientHeader),
		SyncAggregate:     new(SyncAggregate),
	}
	r.nested(0, out.AttestedHeader)
	r.nested(1, out.NextSyncCommittee)
	out.NextSyncCommitteeBranch = r.branch(2)
	r.nested(3, out.FinalizedHeader)
	out.FinalityBranch = r.branch(4)
	r.nested(5, out.SyncAggregate)
	out.SignatureSlot = r.uint64(6)
	if r.err != nil {
		return r.err
	}
	*u = out
	return nil
}

// MarshalSSZ ssz marshals the LightClientUpdate object
func (u *LightClientUpdate) MarshalSSZ() ([]byte, error) { return marshalTyped(u) }

// MarshalSSZTo ssz marshals the LightClientUpdate object to a target array
func (u *LightClientUpdate) MarshalSSZTo(dst []byte) ([]byte, error) { return marshalTypedTo(dst, u) }

// SizeSSZ returns the ssz encoded size in bytes for the LightClientUpdate object
func (u *LightClientUpdate) SizeSSZ() int { return sizeTyped(u) }

// UnmarshalSSZ ssz unmarshals the LightClientUpdate object
func (u *LightClientUpdate) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, u) }

// HashTreeRoot ssz hashes the LightClientUpdate object
func (u *LightClientUpdate) HashTreeRoot() ([32]byte, error) { return rootTyped(u) }

// LightClientFinalityUpdate is a LightClientUpdate without the sync
// committee rotation.
type LightClientFinalityUpdate struct {
	AttestedHeader  *LightClientHeader
	FinalizedHeader *LightClientHeader
	FinalityBranch  [][]byte
	SyncAggregate   *SyncAggregate
	SignatureSlot   uint64
}

func (u *LightClientFinalityUpdate) Descriptor() *types.Descriptor {
	return LightClientFinalityUpdateType
}

func (u *LightClientFinalityUpdate) SSZValue() interface{} {
	return []interface{}{
		headerValue(u.AttestedHeader),
		headerValue(u.FinalizedHeader),
		branchValue(u.FinalityBranch),
		aggregateValue(u.SyncAggregate),
		u.SignatureSlot,
	}
}

func (u *LightClientFinalityUpdate) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, LightClientFinalityUpdateType)
	out := LightClientFinalityUpdate{
		AttestedHeader:  new(LightClientHeader),
		FinalizedHeader: new(LightClientHeader),
		SyncAggregate:   new(SyncAggregate),
	}
	r.nested(0, out.AttestedHeader)
	r.nested(1, out.FinalizedHeader)
	out.FinalityBranch = r.branch(2)
	r.nested(3, out.SyncAggregate)
	out.SignatureSlot = r.uint64(4)
	if r.err != nil {
		return r.err
	}
	*u = out
	return nil
}

// MarshalSSZ ssz marshals the LightClientFinalityUpdate object
func (u *LightClientFinalityUpdate) MarshalSSZ() ([]byte, error) { return marshalTyped(u) }

// MarshalSSZTo ssz marshals the LightClientFinalityUpdate object to a target array
func (u *LightClientFinalityUpdate) MarshalSSZTo(dst []byte) ([]byte, error) {
	return marshalTypedTo(dst, u)
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientFinalityUpdate object
func (u *LightClientFinalityUpdate) SizeSSZ() int { return sizeTyped(u) }

// UnmarshalSSZ ssz unmarshals the LightClientFinalityUpdate object
func (u *LightClientFinalityUpdate) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, u) }

// HashTreeRoot ssz hashes the LightClientFinalityUpdate object
func (u *LightClientFinalityUpdate) HashTreeRoot() ([32]byte, error) { return rootTyped(u) }

// LightClientOptimisticUpdate carries only the attested header and its
// sync aggregate.
type LightClientOptimisticUpdate struct {
	AttestedHeader *LightClientHeader
	SyncAggregate  *SyncAggregate
	SignatureSlot  uint64
}

func (u *LightClientOptimisticUpdate) Descriptor() *types.Descriptor {
	return LightClientOptimisticUpdateType
}

func (u *LightClientOptimisticUpdate) SSZValue() interface{} {
	return []interface{}{
		headerValue(u.AttestedHeader),
		aggregateValue(u.SyncAggregate),
		u.SignatureSlot,
	}
}

func (u *LightClientOptimisticUpdate) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, LightClientOptimisticUpdateType)
	out := LightClientOptimisticUpdate{
		AttestedHeader: new(LightClientHeader),
		SyncAggregate:  new(SyncAggregate),
	}
	r.nested(0, out.AttestedHeader)
	r.nested(1, out.SyncAggregate)
	out.SignatureSlot = r.uint64(2)
	if r.err != nil {
		return r.err
	}
	*u = out
	return nil
}

// MarshalSSZ ssz marshals the LightClientOptimisticUpdate object
func (u *LightClientOptimisticUpdate) MarshalSSZ() ([]byte, error) { return marshalTyped(u) }

// MarshalSSZTo ssz marshals the LightClientOptimisticUpdate object to a target array
func (u *LightClientOptimisticUpdate) MarshalSSZTo(dst []byte) ([]byte, error) {
	return marshalTypedTo(dst, u)
}

// SizeSSZ returns the ssz encoded size in bytes for the LightClientOptimisticUpdate object
func (u *LightClientOptimisticUpdate) SizeSSZ() int { return sizeTyped(u) }

// UnmarshalSSZ ssz unmarshals the LightClientOptimisticUpdate object
func (u *LightClientOptimisticUpdate) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, u) }

// HashTreeRoot ssz hashes the LightClientOptimisticUpdate object
func (u *LightClientOptimisticUpdate) HashTreeRoot() ([32]byte, error) { return rootTyped(u) }
