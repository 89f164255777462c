// Package series holds the demo's rolling data window.
package series

// Ring is a fixed-capacity ring buffer of samples. It provides O(1)
// append with eviction of the oldest sample when full.
type Ring struct {
	values   []float64
	head     int // index of oldest sample
	tail     int // index where the next sample is written
	count    int
	capacity int
}

// NewRing creates a ring with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 12
	}
	return &Ring{
		values:   make([]float64, capacity),
		capacity: capacity,
	}
}

// Push adds a sample. If full, the oldest sample is evicted.
func (r *Ring) Push(v float64) {
	r.values[r.tail] = v
	r.tail = (r.tail + 1) % r.capacity

	if r.count < r.capacity {
		r.count++
	} else {
		r.head = (r.head + 1) % r.capacity
	}
}

// Len returns the number of samples currently held.
func (r *Ring) Len() int { return r.count }

// Cap returns the maximum number of samples.
func (r *Ring) Cap() int { return r.capacity }

// At returns the sample at logical index i (0 = oldest). Out-of-range
// reads return 0.
func (r *Ring) At(i int) float64 {
	if i < 0 || i >= r.count {
		return 0
	}
	return r.values[(r.head+i)%r.capacity]
}

// Values returns the samples oldest-first.
func (r *Ring) Values() []float64 {
	out := make([]float64, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.At(i)
	}
	return out
}
