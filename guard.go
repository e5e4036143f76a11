package perceptron

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Guard is the synchronization policy of a weight matrix.
//
// Readers bracket a whole weighted sum with RLock/RUnlock, writers bracket a whole correction phase with
// Lock/Unlock. Within those brackets, every cell is read with Load and updated with Add.
type Guard interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()

	Load(p *float64) float64
	Add(p *float64, delta float64)
}

// NewGuard returns the Guard that implements the given policy.
func NewGuard(p LockPolicy) Guard {
	switch p {
	case CellLock:
		return cellGuard{}
	default:
		return new(regionGuard)
	}
}

// regionGuard excludes writers from readers and from each other over the entire matrix.
// Inside the brackets the cells are plain memory.
type regionGuard struct {
	sync.RWMutex
}

func (g *regionGuard) Load(p *float64) float64       { return *p }
func (g *regionGuard) Add(p *float64, delta float64) { *p += delta }

// cellGuard has no brackets. Each cell is a float64 updated with a compare-and-swap on its bits.
type cellGuard struct{}

func (cellGuard) RLock()   {}
func (cellGuard) RUnlock() {}
func (cellGuard) Lock()    {}
func (cellGuard) Unlock()  {}

func (cellGuard) Load(p *float64) float64 {
	return math.Float64frombits(atomic.LoadUint64(bitsOf(p)))
}

func (cellGuard) Add(p *float64, delta float64) {
	addr := bitsOf(p)
	for {
		old := atomic.LoadUint64(addr)
		updated := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(addr, old, updated) {
			return
		}
	}
}

func bitsOf(p *float64) *uint64 { return (*uint64)(unsafe.Pointer(p)) }
