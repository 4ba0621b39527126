package zkproof

import (
	"context"
	"fmt"
	"runtime"

	"github.com/famoser/post-evoting-sub013/group"

	"github.com/go-errors/errors"
	"golang.org/x/sync/errgroup"
)

// BatchEntry is one proof to check in VerifyBatch.
type BatchEntry struct {
	PublicValues []*group.Element
	Proof        *Proof
	ContextData  string
}

// VerifyBatch verifies independent proofs in parallel, with at most workers
// verifications running at once (runtime.NumCPU() if workers < 1). The result
// has one entry per input. An argument error in any entry, or cancellation of
// ctx, aborts the batch.
func VerifyBatch(ctx context.Context, verifier *Verifier, entries []BatchEntry, workers int) ([]bool, error) {
	if verifier == nil {
		return nil, group.InvalidArgument("verifier must not be nil")
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]bool, len(entries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range entries {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := verifier.Verify(entries[i].PublicValues, entries[i].Proof, entries[i].ContextData)
			if err != nil {
				return errors.WrapPrefix(err, fmt.Sprintf("batch entry %d", i), 0)
			}
			results[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
