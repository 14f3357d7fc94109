package shuffle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCGSource_Deterministic(t *testing.T) {
	a := NewPCGSource(1, 2)
	b := NewPCGSource(1, 2)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Perm(8), b.Perm(8), "draw %d", i)
	}
}

func TestPCGSource_PermIsPermutation(t *testing.T) {
	src := NewRandomSource()

	perm := src.Perm(16)
	require.Len(t, perm, 16)

	seen := make(map[int]bool, 16)
	for _, v := range perm {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 16)
		assert.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
}

func TestPCGSource_ConcurrentUse(t *testing.T) {
	src := NewRandomSource()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				perm := src.Perm(5)
				if len(perm) != 5 {
					t.Errorf("Perm(5) returned %d elements", len(perm))
					return
				}
			}
		}()
	}
	wg.Wait()
}
