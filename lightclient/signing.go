package lightclient

import (
	"github.com/pkg/errors"

	"github.com/524119574/lcssz/types"
)

// DomainSyncCommittee is the domain type of sync committee signatures.
var DomainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// ForkData is hashed to derive a signature domain.
type ForkData struct {
	CurrentVersion        []byte
	GenesisValidatorsRoot []byte
}

func (f *ForkData) Descriptor() *types.Descriptor { return ForkDataType }

func (f *ForkData) SSZValue() interface{} {
	return []interface{}{f.CurrentVersion, f.GenesisValidatorsRoot}
}

func (f *ForkData) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, ForkDataType)
	out := ForkData{CurrentVersion: r.bytes(0), GenesisValidatorsRoot: r.bytes(1)}
	if r.err != nil {
		return r.err
	}
	*f = out
	return nil
}

// HashTreeRoot ssz hashes the ForkData object
func (f *ForkData) HashTreeRoot() ([32]byte, error) { return rootTyped(f) }

// SigningData binds an object root to a signature domain.
type SigningData struct {
	ObjectRoot []byte
	Domain     []byte
}

func (s *SigningData) Descriptor() *types.Descriptor { return SigningDataType }

func (s *SigningData) SSZValue() interface{} {
	return []interface{}{s.ObjectRoot, s.Domain}
}

func (s *SigningData) FromSSZValue(v interface{}) error {
	r := newFieldReader(v, SigningDataType)
	out := SigningData{ObjectRoot: r.bytes(0), Domain: r.bytes(1)}
	if r.err != nil {
		return r.err
	}
	*s = out
	return nil
}

// HashTreeRoot ssz hashes the SigningData object
func (s *SigningData) HashTreeRoot() ([32]byte, error) { return rootTyped(s) }

// ComputeForkDataRoot returns hash_tree_root(ForkData(version, genesisValidatorsRoot)).
func ComputeForkDataRoot(version [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	fd := &ForkData{CurrentVersion: version[:], GenesisValidatorsRoot: genesisValidatorsRoot[:]}
	return fd.HashTreeRoot()
}

// ComputeDomain returns the domain type followed by the first 28 bytes of
// the fork data root.
func ComputeDomain(domainType [4]byte, version [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	forkDataRoot, err := ComputeForkDataRoot(version, genesisValidatorsRoot)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute fork data root")
	}
	var domain [32]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}

// ComputeSigningRoot returns hash_tree_root(SigningData(objectRoot, domain)).
func ComputeSigningRoot(objectRoot [32]byte, domain [32]byte) ([32]byte, error) {
	sd := &SigningData{ObjectRoot: objectRoot[:], Domain: domain[:]}
	return sd.HashTreeRoot()
}

// SyncCommitteeSigningRoot returns the message a sync committee signs for
// an attested beacon header under the given fork.
func SyncCommitteeSigningRoot(header *BeaconBlockHeader, version [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	if header == nil {
		return [32]byte{}, errors.New("nil attested header")
	}
	headerRoot, err := header.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	domain, err := ComputeDomain(DomainSyncCommittee, version, genesisValidatorsRoot)
	if err != nil {
		return [32]byte{}, err
	}
	return ComputeSigningRoot(headerRoot, domain)
}
