package suites

import (
	"math/rand"
	"sort"

	"github.com/grit-dev/grit/internal/harness"
	"github.com/grit-dev/grit/internal/minheap"
)

func registerMinHeap(r *harness.Registry) {
	r.Register("MinHeap", "ExtractsInSortedOrder", func(t *harness.T) {
		// Fixed seed keeps the run deterministic across invocations.
		rng := rand.New(rand.NewSource(42))

		h := minheap.New()
		values := make([]int, 100)
		for i := range values {
			values[i] = rng.Intn(1000) - 500
			h.Insert(values[i])
		}
		sort.Ints(values)

		for _, want := range values {
			got, err := h.ExtractMin()
			t.AssertTrue(err == nil, "err == nil")
			t.ExpectEqual(got, want, "got", "want")
		}
		t.ExpectEqual(h.Len(), 0, "h.Len()", "0")
	})

	r.Register("MinHeap", "PeeksWithoutRemoving", func(t *harness.T) {
		h := minheap.New()
		h.Insert(7)
		h.Insert(3)
		h.Insert(9)

		min, err := h.PeekMin()
		t.AssertTrue(err == nil, "err == nil")
		t.ExpectEqual(min, 3, "min", "3")
		t.ExpectEqual(h.Len(), 3, "h.Len()", "3")
	})

	r.Register("MinHeap", "EmptyHeapReportsError", func(t *harness.T) {
		h := minheap.New()

		_, err := h.ExtractMin()
		t.ExpectTrue(err != nil, "err != nil")
		_, err = h.PeekMin()
		t.ExpectTrue(err != nil, "err != nil")
	})

	r.Register("MinHeap", "DestroyReleasesStorage", func(t *harness.T) {
		h := minheap.NewWithCapacity(16)
		h.Insert(1)
		h.Insert(2)
		h.Destroy()

		t.ExpectEqual(h.Len(), 0, "h.Len()", "0")
		t.ExpectEqual(h.Cap(), 0, "h.Cap()", "0")
		_, err := h.PeekMin()
		t.ExpectTrue(err != nil, "err != nil")
	})
}
