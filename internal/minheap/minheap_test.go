package minheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_ExtractsRandomInputInSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Every N from 0 up must drain fully sorted, including N = 0.
	for n := 0; n <= 64; n++ {
		h := New()
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(2001) - 1000
			h.Insert(values[i])
		}
		sort.Ints(values)

		got := make([]int, 0, n)
		for h.Len() > 0 {
			v, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, values, got, "n=%d", n)
	}
}

func TestHeap_PeekMinDoesNotRemove(t *testing.T) {
	h := New()
	h.Insert(7)
	h.Insert(3)
	h.Insert(9)

	min, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 3, min)
	assert.Equal(t, 3, h.Len())

	min, err = h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 3, min)
	assert.Equal(t, 2, h.Len())
}

func TestHeap_EmptyOperations(t *testing.T) {
	h := New()

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = h.PeekMin()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestHeap_DuplicateValues(t *testing.T) {
	h := New()
	for _, v := range []int{5, 1, 5, 1, 5} {
		h.Insert(v)
	}

	var got []int
	for h.Len() > 0 {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 1, 5, 5, 5}, got)
}

func TestHeap_Destroy(t *testing.T) {
	h := NewWithCapacity(16)
	assert.Equal(t, 16, h.Cap())
	h.Insert(1)
	h.Insert(2)

	h.Destroy()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Cap())

	_, err := h.PeekMin()
	assert.ErrorIs(t, err, ErrEmpty)

	// Still usable after Destroy.
	h.Insert(4)
	min, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 4, min)
}

func TestHeap_ZeroValueUsable(t *testing.T) {
	var h Heap
	h.Insert(2)
	h.Insert(1)

	min, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, min)
}
