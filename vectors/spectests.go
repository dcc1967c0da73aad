package vectors

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ghodss/yaml"
	"github.com/klauspost/compress/snappy"
	"github.com/pkg/errors"

	ssz "github.com/524119574/lcssz"
	"github.com/524119574/lcssz/internal/logging"
	"github.com/524119574/lcssz/lightclient"
)

// SpecTestNames lists the ssz_static containers checked against
// consensus-spec-tests.
var SpecTestNames = []string{
	"BeaconBlockHeader",
	"ExecutionPayloadHeader",
	"SyncCommittee",
	"SyncAggregate",
	"LightClientHeader",
	"LightClientBootstrap",
	"LightClientUpdate",
	"LightClientFinalityUpdate",
	"LightClientOptimisticUpdate",
	"ForkData",
	"SigningData",
}

// Failure describes a spec-test case that did not round-trip.
type Failure struct {
	Name string
	Case string
	Err  error
}

// Report summarizes a spec-test run.
type Report struct {
	Passed   int
	Skipped  []string
	Failures []Failure
}

type rootsFile struct {
	Root string `json:"root"`
}

// StaticDir returns the ssz_static directory of a consensus-spec-tests
// checkout for the mainnet preset and the given fork.
func StaticDir(specTests, fork string) string {
	return filepath.Join(specTests, "tests", "mainnet", fork, "ssz_static")
}

// RunSpecTests replays every ssz_random case of the named containers under
// staticDir. Containers without a directory are reported as skipped.
func RunSpecTests(staticDir string, names []string) (*Report, error) {
	report := &Report{}
	for _, name := range names {
		if _, ok := lightclient.Schemas[name]; !ok {
			return nil, errors.Errorf("%s: unknown container", name)
		}
		dir := filepath.Join(staticDir, name, "ssz_random")
		cases, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			logger.Warn().Str(logging.FieldType, name).Str(logging.FieldPath, dir).Msg("No spec tests found")
			report.Skipped = append(report.Skipped, name)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not list %s", dir)
		}
		sort.Slice(cases, func(i, j int) bool { return cases[i].Name() < cases[j].Name() })
		for _, c := range cases {
			if !c.IsDir() {
				continue
			}
			if err := runCase(filepath.Join(dir, c.Name()), name); err != nil {
				report.Failures = append(report.Failures, Failure{Name: name, Case: c.Name(), Err: err})
				logger.Error().Err(err).Str(logging.FieldType, name).Str(logging.FieldCase, c.Name()).Msg("Spec test failed")
				continue
			}
			report.Passed++
		}
		logger.Info().Str(logging.FieldType, name).Int(logging.FieldCount, len(cases)).Msg("Spec tests replayed")
	}
	return report, nil
}

func runCase(dir, name string) error {
	d := lightclient.Schemas[name]
	compressed, err := os.ReadFile(filepath.Join(dir, "serialized.ssz_snappy"))
	if err != nil {
		return err
	}
	serialized, err := snappy.Decode(nil, compressed)
	if err != nil {
		return errors.Wrap(err, "could not decompress serialized.ssz_snappy")
	}
	rootsYaml, err := os.ReadFile(filepath.Join(dir, "roots.yaml"))
	if err != nil {
		return err
	}
	var roots rootsFile
	if err := yaml.Unmarshal(rootsYaml, &roots); err != nil {
		return errors.Wrap(err, "could not parse roots.yaml")
	}
	want, err := hexutil.Decode(roots.Root)
	if err != nil {
		return errors.Wrap(err, "invalid root in roots.yaml")
	}

	val, err := ssz.Decode(serialized, d)
	if err != nil {
		return err
	}
	enc, err := ssz.Encode(val, d)
	if err != nil {
		return err
	}
	if !bytes.Equal(enc, serialized) {
		return errors.New("re-encoding differs from serialized input")
	}
	root, err := ssz.HashTreeRoot(val, d)
	if err != nil {
		return err
	}
	if !bytes.Equal(root[:], want) {
		return errors.Errorf("root %s, expected %s", hexutil.Encode(root[:]), roots.Root)
	}
	return nil
}
