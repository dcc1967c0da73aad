package crosscheck

import (
	"github.com/pkg/errors"

	"github.com/524119574/lcssz/lightclient"
)

// Mirrors of the light-client containers in the shapes go-ssz (struct tags
// on slices) and zssz (fixed-size arrays) reflect over.

type goSSZBeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    []byte `ssz-size:"32"`
	StateRoot     []byte `ssz-size:"32"`
	BodyRoot      []byte `ssz-size:"32"`
}

type goSSZSyncCommittee struct {
	PubKeys         [][]byte `ssz-size:"512,48"`
	AggregatePubKey []byte   `ssz-size:"48"`
}

type goSSZSyncAggregate struct {
	SyncCommitteeBits      []byte `ssz-size:"64"`
	SyncCommitteeSignature []byte `ssz-size:"96"`
}

type goSSZForkData struct {
	CurrentVersion        []byte `ssz-size:"4"`
	GenesisValidatorsRoot []byte `ssz-size:"32"`
}

func toGoSSZBeaconBlockHeader(h *lightclient.BeaconBlockHeader) *goSSZBeaconBlockHeader {
	return &goSSZBeaconBlockHeader{
		Slot:          h.Slot,
		ProposerIndex: h.ProposerIndex,
		ParentRoot:    h.ParentRoot,
		StateRoot:     h.StateRoot,
		BodyRoot:      h.BodyRoot,
	}
}

func toGoSSZSyncCommittee(c *lightclient.SyncCommittee) *goSSZSyncCommittee {
	return &goSSZSyncCommittee{PubKeys: c.PubKeys, AggregatePubKey: c.AggregatePubKey}
}

func toGoSSZSyncAggregate(a *lightclient.SyncAggregate) *goSSZSyncAggregate {
	return &goSSZSyncAggregate{
		SyncCommitteeBits:      []byte(a.SyncCommitteeBits),
		SyncCommitteeSignature: a.SyncCommitteeSignature,
	}
}

func toGoSSZForkData(f *lightclient.ForkData) *goSSZForkData {
	return &goSSZForkData{CurrentVersion: f.CurrentVersion, GenesisValidatorsRoot: f.GenesisValidatorsRoot}
}

type zsszBeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

type zsszSyncCommittee struct {
	PubKeys         [lightclient.SyncCommitteeSize][lightclient.BLSPubkeyLength]byte
	AggregatePubKey [lightclient.BLSPubkeyLength]byte
}

type zsszSyncAggregate struct {
	SyncCommitteeBits      [lightclient.SyncCommitteeSize / 8]byte
	SyncCommitteeSignature [lightclient.BLSSignatureLength]byte
}

type zsszForkData struct {
	CurrentVersion        [lightclient.VersionLength]byte
	GenesisValidatorsRoot [32]byte
}

func toZSSZBeaconBlockHeader(h *lightclient.BeaconBlockHeader) zsszBeaconBlockHeader {
	v := zsszBeaconBlockHeader{Slot: h.Slot, ProposerIndex: h.ProposerIndex}
	copy(v.ParentRoot[:], h.ParentRoot)
	copy(v.StateRoot[:], h.StateRoot)
	copy(v.BodyRoot[:], h.BodyRoot)
	return v
}

func toZSSZSyncCommittee(c *lightclient.SyncCommittee) (*zsszSyncCommittee, error) {
	if len(c.PubKeys) != lightclient.SyncCommitteeSize {
		return nil, errors.Errorf("expected %d pubkeys, got %d", lightclient.SyncCommitteeSize, len(c.PubKeys))
	}
	v := &zsszSyncCommittee{}
	for i, pk := range c.PubKeys {
		copy(v.PubKeys[i][:], pk)
	}
	copy(v.AggregatePubKey[:], c.AggregatePubKey)
	return v, nil
}

func toZSSZSyncAggregate(a *lightclient.SyncAggregate) zsszSyncAggregate {
	var v zsszSyncAggregate
	copy(v.SyncCommitteeBits[:], a.SyncCommitteeBits)
	copy(v.SyncCommitteeSignature[:], a.SyncCommitteeSignature)
	return v
}

func toZSSZForkData(f *lightclient.ForkData) zsszForkData {
	var v zsszForkData
	copy(v.CurrentVersion[:], f.CurrentVersion)
	copy(v.GenesisValidatorsRoot[:], f.GenesisValidatorsRoot)
	return v
}
