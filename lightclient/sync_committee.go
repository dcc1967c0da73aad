package lightclient

import (
	fssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/524119574/lcssz/types"
)

var (
	_ fssz.Marshaler   = (*SyncCommittee)(nil)
	_ fssz.Unmarshaler = (*SyncCommittee)(nil)
	_ fssz.Marshaler   = (*SyncAggregate)(nil)
	_ fssz.Unmarshaler = (*SyncAggregate)(nil)
)

// SyncCommittee is the set of validators signing light-client updates for
// one sync committee period.
type SyncCommittee struct {
	PubKeys         [][]byte
	AggregatePubKey []byte
}

func (c *SyncCommittee) Descriptor() *types.Descriptor { return SyncCommitteeType }

func (c *SyncCommittee) SSZValue() interface{} {
	return []interface{}{branchValue(c.PubKeys), c.AggregatePubKey}
}

func (c *SyncCommittee) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, SyncCommitteeType)
	out := SyncCommittee{
		PubKeys:         r.branch(0),
		AggregatePubKey: r.bytes(1),
	}
	if r.err != nil {
		return r.err
	}
	*c = out
	return nil
}

// MarshalSSZ ssz marshals the SyncCommittee object
func (c *SyncCommittee) MarshalSSZ() ([]byte, error) { return marshalTyped(c) }

// MarshalSSZTo ssz marshals the SyncCommittee object to a target array
func (c *SyncCommittee) MarshalSSZTo(dst []byte) ([]byte, error) { return marshalTypedTo(dst, c) }

// SizeSSZ returns the ssz encoded size in bytes for the SyncCommittee object
func (c *SyncCommittee) SizeSSZ() int { return sizeTyped(c) }

// UnmarshalSSZ ssz unmarshals the SyncCommittee object
func (c *SyncCommittee) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, c) }

// HashTreeRoot ssz hashes the SyncCommittee object
func (c *SyncCommittee) HashTreeRoot() ([32]byte, error) { return rootTyped(c) }

// SyncAggregate carries the participation bits and aggregate signature of a
// sync committee over an attested header.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512
	SyncCommitteeSignature []byte
}

func (a *SyncAggregate) Descriptor() *types.Descriptor { return SyncAggregateType }

func (a *SyncAggregate) SSZValue() interface{} {
	return []interface{}{[]byte(a.SyncCommitteeBits), a.SyncCommitteeSignature}
}

func (a *SyncAggregate) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, SyncAggregateType)
	out := SyncAggregate{
		SyncCommitteeBits:      bitfield.Bitvector512(r.bytes(0)),
		SyncCommitteeSignature: r.bytes(1),
	}
	if r.err != nil {
		return r.err
	}
	*a = out
	return nil
}

// ParticipantCount returns the number of set participation bits.
func (a *SyncAggregate) ParticipantCount() uint64 {
	if len(a.SyncCommitteeBits) != SyncCommitteeSize/8 {
		return 0
	}
	return a.SyncCommitteeBits.Count()
}

// Participants returns the public keys of committee members whose
// participation bit is set, in committee order.
func (a *SyncAggregate) Participants(committee *SyncCommittee) [][]byte {
	if committee == nil || len(a.SyncCommitteeBits) != SyncCommitteeSize/8 {
		return nil
	}
	var out [][]byte
	for i, pk := range committee.PubKeys {
		if i >= SyncCommitteeSize {
			break
		}
		if a.SyncCommitteeBits.BitAt(uint64(i)) {
			out = append(out, pk)
		}
	}
	return out
}

// MarshalSSZ ssz marshals the SyncAggregate object
func (a *SyncAggregate) MarshalSSZ() ([]byte, error) { return marshalTyped(a) }

// MarshalSSZTo ssz marshals the SyncAggregate object to a target array
func (a *SyncAggregate) MarshalSSZTo(dst []byte) ([]byte, error) { return marshalTypedTo(dst, a) }

// SizeSSZ returns the ssz encoded size in bytes for the SyncAggregate object
func (a *SyncAggregate) SizeSSZ() int { return sizeTyped(a) }

// UnmarshalSSZ ssz unmarshals the SyncAggregate object
func (a *SyncAggregate) UnmarshalSSZ(buf []byte) error { return unmarshalTyped(buf, a) }

// HashTreeRoot ssz hashes the SyncAggregate object
func (a *SyncAggregate) HashTreeRoot() ([32]byte, error) { return rootTyped(a) }
