package curriculum

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/vecshuffle/core"
	"github.com/poiesic/vecshuffle/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchPlaceholders(t *testing.T, sizes ...int) []*core.Placeholder {
	t.Helper()

	placeholders := make([]*core.Placeholder, len(sizes))
	for i, size := range sizes {
		emb := make(core.Embedding, size)
		for row := range emb {
			emb[row] = []float32{float32(i*100 + row), 0.5}
		}
		placeholders[i] = &core.Placeholder{
			Id:        core.ID(i + 1),
			Token:     fmt.Sprintf("<concept-%d>", i),
			Embedding: emb,
		}
	}
	return placeholders
}

func firstComponents(emb core.Embedding) []float32 {
	out := make([]float32, len(emb))
	for i, row := range emb {
		out[i] = row[0]
	}
	return out
}

func TestApplierOffPreservesOrder(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeOff)
	require.NoError(t, err)
	defer applier.Release()

	placeholders := batchPlaceholders(t, 3, 5, 2)

	results, err := applier.Apply(context.Background(), placeholders, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, result := range results {
		assert.Equal(t, firstComponents(placeholders[i].Embedding), firstComponents(result))
	}
}

func TestApplierOffTrims(t *testing.T) {
	applier, err := NewApplier("off")
	require.NoError(t, err)
	defer applier.Release()

	placeholders := batchPlaceholders(t, 5)

	results, err := applier.Apply(context.Background(), placeholders, 2)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []float32{0, 1}, firstComponents(results[0]))
}

func TestApplierTrailingAnchorsFirstRow(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeTrailing, WithPoolSize(2))
	require.NoError(t, err)
	defer applier.Release()

	placeholders := batchPlaceholders(t, 6, 6, 6, 6)

	results, err := applier.Apply(context.Background(), placeholders, 0)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, result := range results {
		require.Len(t, result, 6)
		assert.Equal(t, placeholders[i].Embedding[0][0], result[0][0])
	}
}

func TestApplierDoesNotMutateInputs(t *testing.T) {
	applier, err := NewApplier(true)
	require.NoError(t, err)
	defer applier.Release()

	placeholders := batchPlaceholders(t, 8)
	before := firstComponents(placeholders[0].Embedding)

	_, err = applier.Apply(context.Background(), placeholders, 0)
	require.NoError(t, err)
	assert.Equal(t, before, firstComponents(placeholders[0].Embedding))
}

func TestApplierSeededDeterminism(t *testing.T) {
	build := func() *Applier {
		applier, err := NewApplier(shuffle.ModeAll,
			WithShuffler(shuffle.New(shuffle.WithSource(shuffle.NewPCGSource(7, 11)))))
		require.NoError(t, err)
		return applier
	}

	first := build()
	defer first.Release()
	second := build()
	defer second.Release()

	placeholders := batchPlaceholders(t, 6)

	got1, err := first.Apply(context.Background(), placeholders, 0)
	require.NoError(t, err)
	got2, err := second.Apply(context.Background(), placeholders, 0)
	require.NoError(t, err)

	assert.Equal(t, firstComponents(got1[0]), firstComponents(got2[0]))
}

func TestApplierEmptyBatch(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeAll)
	require.NoError(t, err)
	defer applier.Release()

	results, err := applier.Apply(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestApplierAfterRelease(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeAll)
	require.NoError(t, err)

	applier.Release()
	// Release is idempotent.
	applier.Release()

	_, err = applier.Apply(context.Background(), batchPlaceholders(t, 3), 0)
	assert.ErrorIs(t, err, ErrApplierReleased)
}

func TestApplierNilShufflerOption(t *testing.T) {
	_, err := NewApplier(shuffle.ModeAll, WithShuffler(nil))
	assert.ErrorIs(t, err, ErrShufflerRequired)
}

func TestApplierUnknownModeFallsBack(t *testing.T) {
	applier, err := NewApplier("definitely-not-a-mode")
	require.NoError(t, err)
	defer applier.Release()

	assert.Equal(t, shuffle.ModeOff, applier.Mode())
}

func TestApplyAtClampsPerPlaceholder(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeOff)
	require.NoError(t, err)
	defer applier.Release()

	sched := Schedule{InitialVectors: 4, MaxVectors: 8, StepsPerVector: 100}
	placeholders := batchPlaceholders(t, 6, 2)

	results, err := applier.ApplyAt(context.Background(), sched, 0, placeholders)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// first placeholder has enough rows, second is clamped to its length
	assert.Len(t, results[0], 4)
	assert.Len(t, results[1], 2)
}

func TestApplyAtInvalidSchedule(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeOff)
	require.NoError(t, err)
	defer applier.Release()

	sched := Schedule{InitialVectors: 0, MaxVectors: 4, StepsPerVector: 100}
	_, err = applier.ApplyAt(context.Background(), sched, 0, batchPlaceholders(t, 3))
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestApplyAtGrowth(t *testing.T) {
	applier, err := NewApplier(shuffle.ModeOff)
	require.NoError(t, err)
	defer applier.Release()

	sched := Schedule{InitialVectors: 1, MaxVectors: 5, StepsPerVector: 10}
	placeholders := batchPlaceholders(t, 5)

	for step, want := range map[int]int{0: 1, 10: 2, 45: 5, 1000: 5} {
		results, err := applier.ApplyAt(context.Background(), sched, step, placeholders)
		require.NoError(t, err)
		assert.Len(t, results[0], want, "step %d", step)
	}
}
