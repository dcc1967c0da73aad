// Package crosscheck recomputes light-client hash tree roots with independent
// SSZ implementations (fastssz's hasher, go-ssz reflection and zssz) so the
// descriptor-driven Merkleizer can be compared against them.
package crosscheck

import (
	"bytes"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/protolambda/zssz"
	"github.com/protolambda/zssz/htr"
	gossz "github.com/prysmaticlabs/go-ssz"

	ssz "github.com/524119574/lcssz"
	"github.com/524119574/lcssz/internal/logging"
	"github.com/524119574/lcssz/lightclient"
	"github.com/524119574/lcssz/vectors"
)

var logger = logging.NewLogger("crosscheck")

// Implementation names reported in mismatches.
const (
	ImplFastSSZ = "fastssz"
	ImplGoSSZ   = "go-ssz"
	ImplZSSZ    = "zssz"
)

// Mismatch records a root that an independent implementation disagrees on.
type Mismatch struct {
	Name string
	Impl string
	Got  [32]byte
	Want [32]byte
}

type rootFn func() ([32]byte, error)

type check struct {
	name  string
	value ssz.Typed
	impls map[string]rootFn
}

func checks() []check {
	header := vectors.SampleBeaconBlockHeader()
	execution := vectors.SampleExecutionPayloadHeader()
	committee := vectors.SampleSyncCommittee()
	aggregate := vectors.SampleSyncAggregate()
	lcHeader := vectors.SampleLightClientHeader()
	forkData := sampleForkData()
	return []check{
		{
			name:  "BeaconBlockHeader",
			value: header,
			impls: map[string]rootFn{
				ImplFastSSZ: func() ([32]byte, error) { return FastSSZBeaconBlockHeaderRoot(header) },
				ImplGoSSZ:   func() ([32]byte, error) { return gossz.HashTreeRoot(toGoSSZBeaconBlockHeader(header)) },
				ImplZSSZ: func() ([32]byte, error) {
					v := toZSSZBeaconBlockHeader(header)
					return zsszRoot(&v), nil
				},
			},
		},
		{
			name:  "ExecutionPayloadHeader",
			value: execution,
			impls: map[string]rootFn{
				ImplFastSSZ: func() ([32]byte, error) { return FastSSZExecutionPayloadHeaderRoot(execution) },
			},
		},
		{
			name:  "SyncCommittee",
			value: committee,
			impls: map[string]rootFn{
				ImplFastSSZ: func() ([32]byte, error) { return FastSSZSyncCommitteeRoot(committee) },
				ImplGoSSZ:   func() ([32]byte, error) { return gossz.HashTreeRoot(toGoSSZSyncCommittee(committee)) },
				ImplZSSZ: func() ([32]byte, error) {
					v, err := toZSSZSyncCommittee(committee)
					if err != nil {
						return [32]byte{}, err
					}
					return zsszRoot(v), nil
				},
			},
		},
		{
			name:  "SyncAggregate",
			value: aggregate,
			impls: map[string]rootFn{
				ImplFastSSZ: func() ([32]byte, error) { return FastSSZSyncAggregateRoot(aggregate) },
				ImplGoSSZ:   func() ([32]byte, error) { return gossz.HashTreeRoot(toGoSSZSyncAggregate(aggregate)) },
				ImplZSSZ: func() ([32]byte, error) {
					v := toZSSZSyncAggregate(aggregate)
					return zsszRoot(&v), nil
				},
			},
		},
		{
			name:  "LightClientHeader",
			value: lcHeader,
			impls: map[string]rootFn{
				ImplFastSSZ: func() ([32]byte, error) { return FastSSZLightClientHeaderRoot(lcHeader) },
			},
		},
		{
			name:  "ForkData",
			value: forkData,
			impls: map[string]rootFn{
				ImplGoSSZ: func() ([32]byte, error) { return gossz.HashTreeRoot(toGoSSZForkData(forkData)) },
				ImplZSSZ: func() ([32]byte, error) {
					v := toZSSZForkData(forkData)
					return zsszRoot(&v), nil
				},
			},
		},
	}
}

func sampleForkData() *lightclient.ForkData {
	return &lightclient.ForkData{
		CurrentVersion:        []byte{0x04, 0x00, 0x00, 0x00},
		GenesisValidatorsRoot: bytes.Repeat([]byte{0x4b}, lightclient.RootLength),
	}
}

// Run roots every sample with the descriptor Merkleizer and with each
// independent implementation that can express it, returning the
// disagreements.
func Run() ([]Mismatch, error) {
	var mismatches []Mismatch
	for _, c := range checks() {
		want, err := ssz.Root(c.value)
		if err != nil {
			return nil, errors.Wrapf(err, "could not root %s", c.name)
		}
		for impl, fn := range c.impls {
			got, err := fn()
			if err != nil {
				return nil, errors.Wrapf(err, "%s could not root %s", impl, c.name)
			}
			if got != want {
				logger.Error().Str(logging.FieldType, c.name).Str(logging.FieldImpl, impl).Msg("Root mismatch")
				mismatches = append(mismatches, Mismatch{Name: c.name, Impl: impl, Got: got, Want: want})
			}
		}
		logger.Debug().Str(logging.FieldType, c.name).Int(logging.FieldCount, len(c.impls)).Msg("Roots compared")
	}
	return mismatches, nil
}

func zsszRoot(ptr interface{}) [32]byte {
	return zssz.HashTreeRoot(htr.HashFn(sha256.Sum256), ptr, zssz.GetSSZ(ptr))
}
