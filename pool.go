package perceptron

import (
	"sync"
)

// gridPool recycles excitation grids. Excitation grids never leave a recognition, so they can be reused
// by the next one.
type gridPool struct {
	n int
	sync.Pool
}

func makeGridPool(n int) *gridPool {
	retVal := &gridPool{n: n}
	retVal.New = func() interface{} { return NewGrid(n) }
	return retVal
}

// borrowGrid returns a zeroed grid.
func (p *gridPool) borrowGrid() *Grid {
	g := p.Get().(*Grid)
	for i := range g.data {
		g.data[i] = 0
	}
	return g
}

func (p *gridPool) returnGrid(g *Grid) {
	if g == nil || g.n != p.n {
		return
	}
	p.Put(g)
}
