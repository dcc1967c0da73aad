package vectors

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	ssz "github.com/524119574/lcssz"
	"github.com/524119574/lcssz/internal/logging"
	"github.com/524119574/lcssz/types"
)

var logger = logging.NewLogger("vectors")

// Result is the encoding and root of one sample.
type Result struct {
	Name string
	SSZ  []byte
	Root [32]byte
}

// Generate encodes and roots every sample concurrently. Results keep the
// order of samples. cache may be nil.
func Generate(ctx context.Context, samples []Sample, cache *types.RootCache) ([]Result, error) {
	results := make([]Result, len(samples))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := generateOne(s, cache)
			if err != nil {
				return errors.Wrapf(err, "could not generate %s", s.Name)
			}
			results[i] = res
			logger.Debug().
				Str(logging.FieldType, s.Name).
				Int(logging.FieldSize, len(res.SSZ)).
				Str(logging.FieldRoot, hexutil.Encode(res.Root[:])).
				Msg("Vector generated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func generateOne(s Sample, cache *types.RootCache) (Result, error) {
	if s.Value == nil {
		return Result{}, errors.New("sample has no value")
	}
	d := s.Value.Descriptor()
	val := s.Value.SSZValue()
	enc, err := ssz.Encode(val, d)
	if err != nil {
		return Result{}, err
	}
	var root [32]byte
	if cache != nil {
		root, err = cache.HashTreeRoot(val, d)
	} else {
		root, err = ssz.HashTreeRoot(val, d)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Name: s.Name, SSZ: enc, Root: root}, nil
}
