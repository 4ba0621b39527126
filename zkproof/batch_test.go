package zkproof

import (
	"context"
	"testing"

	"github.com/famoser/post-evoting-sub013/group"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyBatch(t *testing.T) {
	grp := largeGroup
	phi, err := NewExponentiationPhiFunction(grp, []*group.Element{grp.Generator()}, WithFixedBaseTables(5))
	require.NoError(t, err)
	s := newSetup(t, grp, phi)

	entries := make([]BatchEntry, 10)
	for i := range entries {
		public, proof := s.proveAndVerify(t, phi, randomExponents(t, grp, 1), "batch")
		entries[i] = BatchEntry{PublicValues: public, Proof: proof, ContextData: "batch"}
	}
	entries[3].ContextData = "other"
	entries[7].PublicValues = entries[6].PublicValues

	results, err := VerifyBatch(context.Background(), s.verifier, entries, 3)
	require.NoError(t, err)
	require.Len(t, results, len(entries))
	for i, ok := range results {
		assert.Equal(t, i != 3 && i != 7, ok, "entry %d", i)
	}

	results, err = VerifyBatch(context.Background(), s.verifier, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestVerifyBatchErrors(t *testing.T) {
	grp := largeGroup
	phi, err := NewExponentiationPhiFunction(grp, []*group.Element{grp.Generator()})
	require.NoError(t, err)
	s := newSetup(t, grp, phi)
	public, proof := s.proveAndVerify(t, phi, randomExponents(t, grp, 1), "batch")

	entries := []BatchEntry{{public, proof, "batch"}, {public, nil, "batch"}}
	_, err = VerifyBatch(context.Background(), s.verifier, entries, 2)
	assert.True(t, errors.Is(err, group.ErrInvalidArgument))

	_, err = VerifyBatch(context.Background(), nil, entries, 2)
	assert.True(t, errors.Is(err, group.ErrInvalidArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = VerifyBatch(ctx, s.verifier, entries[:1], 1)
	assert.ErrorIs(t, err, context.Canceled)
}
