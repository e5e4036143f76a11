package perceptron

import (
	"strings"

	"gorgonia.org/tensor"
)

// Weights is the trainable N×N×K weight matrix: one weight per (association cell, output bit).
//
// All access goes through the Guard, so the matrix may be read and corrected from many goroutines.
type Weights struct {
	g    Guard
	n, k int

	t    *tensor.Dense
	data []float64 // backing of t, laid out as ((x*n)+y)*k + bit
}

func newWeights(n, k int, policy LockPolicy) *Weights {
	t := tensor.New(tensor.WithShape(n, n, k), tensor.Of(tensor.Float64))
	return &Weights{
		g:    NewGuard(policy),
		n:    n,
		k:    k,
		t:    t,
		data: t.Data().([]float64),
	}
}

// Shape returns (N, N, K).
func (w *Weights) Shape() tensor.Shape { return w.t.Shape().Clone() }

// At returns Weights[x][y][bit].
func (w *Weights) At(x, y, bit int) float64 {
	w.g.RLock()
	v := w.g.Load(&w.data[(x*w.n+y)*w.k+bit])
	w.g.RUnlock()
	return v
}

// readout sums the weights of the active cells for each bit. A bit is '1' iff its sum is strictly positive.
// active holds flat cell indices (x*n + y).
func (w *Weights) readout(active []int) Code {
	var buf strings.Builder
	buf.Grow(w.k)

	w.g.RLock()
	for bit := 0; bit < w.k; bit++ {
		var sum float64
		for _, cell := range active {
			sum += w.g.Load(&w.data[cell*w.k+bit])
		}
		if sum > 0 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	w.g.RUnlock()
	return Code(buf.String())
}

// correct applies the delta rule for every bit where predicted and expected differ: the weights of the active
// cells move by +delta if the predicted bit was '0', by -delta otherwise.
// Both codes must be of length K.
func (w *Weights) correct(active []int, predicted, expected Code, delta float64) {
	w.g.Lock()
	for bit := 0; bit < w.k; bit++ {
		if predicted[bit] == expected[bit] {
			continue
		}
		d := delta
		if predicted[bit] != '0' {
			d = -delta
		}
		for _, cell := range active {
			w.g.Add(&w.data[cell*w.k+bit], d)
		}
	}
	w.g.Unlock()
}

// Snapshot returns a copy of the weights as a (N, N, K) tensor.
func (w *Weights) Snapshot() *tensor.Dense {
	backing := make([]float64, len(w.data))
	w.g.RLock()
	for i := range w.data {
		backing[i] = w.g.Load(&w.data[i])
	}
	w.g.RUnlock()
	return tensor.New(tensor.WithShape(w.n, w.n, w.k), tensor.WithBacking(backing))
}

// Plane returns the weights of one output bit as a row major N×N slice of float32, for rendering.
func (w *Weights) Plane(bit int) []float32 {
	retVal := make([]float32, w.n*w.n)
	w.g.RLock()
	for cell := range retVal {
		retVal[cell] = float32(w.g.Load(&w.data[cell*w.k+bit]))
	}
	w.g.RUnlock()
	return retVal
}

// reset zeroes the weights.
func (w *Weights) reset() {
	w.g.Lock()
	w.t.Zero()
	w.g.Unlock()
}
