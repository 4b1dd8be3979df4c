// Package minheap implements the growable priority-queue subject used by the
// example suites: a slice-backed binary min-heap with explicit size and
// capacity state.
package minheap

import "errors"

// ErrEmpty is returned by ExtractMin and PeekMin on an empty heap.
var ErrEmpty = errors.New("heap is empty")

// Heap is an array-backed binary min-heap of ints.
// The zero value is an empty heap ready for use.
type Heap struct {
	data []int
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{}
}

// NewWithCapacity returns an empty heap with preallocated capacity.
func NewWithCapacity(capacity int) *Heap {
	return &Heap{data: make([]int, 0, capacity)}
}

// Len returns the number of stored values.
func (h *Heap) Len() int { return len(h.data) }

// Cap returns the current backing-array capacity.
func (h *Heap) Cap() int { return cap(h.data) }

// Insert adds a value, growing the backing array as needed.
func (h *Heap) Insert(v int) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// PeekMin returns the smallest value without removing it.
func (h *Heap) PeekMin() (int, error) {
	if len(h.data) == 0 {
		return 0, ErrEmpty
	}
	return h.data[0], nil
}

// ExtractMin removes and returns the smallest value.
func (h *Heap) ExtractMin() (int, error) {
	if len(h.data) == 0 {
		return 0, ErrEmpty
	}
	min := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return min, nil
}

// Destroy releases the backing array and resets size and capacity to zero.
// The heap remains usable afterwards.
func (h *Heap) Destroy() {
	h.data = nil
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent] <= h.data[i] {
			return
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.data[left] < h.data[smallest] {
			smallest = left
		}
		if right < n && h.data[right] < h.data[smallest] {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
