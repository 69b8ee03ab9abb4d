package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations via bit conversion
// The zero value is ready to use and represents 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
