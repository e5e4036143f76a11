package projection

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Coord is a cell coordinate in the association layer.
type Coord struct {
	X, Y int
}

func (c Coord) Format(s fmt.State, r rune) { fmt.Fprintf(s, "(%d, %d)", c.X, c.Y) }

// Projection maps every receptor (pixel) of an N×N canvas to the C association cells it excites.
//
// A Projection is immutable once generated, so it may be shared by any number of readers.
type Projection struct {
	n, c    int
	targets []Coord // row major over (x, y), c targets per receptor
}

// New creates a projection where every receptor points at (0, 0). It is mostly useful for building
// hand crafted projections with Set.
func New(n, c int) (*Projection, error) {
	if n <= 0 {
		return nil, errors.Errorf("Cannot build a projection for a canvas of size %d", n)
	}
	if c <= 0 {
		return nil, errors.Errorf("Cannot build a projection with %d connections per receptor", c)
	}
	return &Projection{
		n:       n,
		c:       c,
		targets: make([]Coord, n*n*c),
	}, nil
}

// Generate draws a fresh projection. For each receptor and each of its c slots, two uniform integers
// in [0, n) are drawn (X first, then Y).
func Generate(n, c int, rnd *rand.Rand) (*Projection, error) {
	p, err := New(n, c)
	if err != nil {
		return nil, err
	}
	for i := range p.targets {
		x := rnd.Intn(n)
		y := rnd.Intn(n)
		p.targets[i] = Coord{x, y}
	}
	return p, nil
}

// Size returns N, the side of the canvas.
func (p *Projection) Size() int { return p.n }

// Connections returns C, the number of cells each receptor excites.
func (p *Projection) Connections() int { return p.c }

// Targets returns the cells the receptor at (x, y) excites. The returned slice must not be modified.
func (p *Projection) Targets(x, y int) []Coord {
	start := (x*p.n + y) * p.c
	return p.targets[start : start+p.c : start+p.c]
}

// Set sets the target of the given slot of the receptor at (x, y).
// It is not safe to call Set on a projection that is in use.
func (p *Projection) Set(x, y, slot int, to Coord) error {
	switch {
	case x < 0 || x >= p.n || y < 0 || y >= p.n:
		return errors.Errorf("Receptor (%d, %d) is outside a %dx%d canvas", x, y, p.n, p.n)
	case slot < 0 || slot >= p.c:
		return errors.Errorf("Slot %d out of range. Each receptor has %d connections", slot, p.c)
	case to.X < 0 || to.X >= p.n || to.Y < 0 || to.Y >= p.n:
		return errors.Errorf("Target %v is outside a %dx%d association layer", to, p.n, p.n)
	}
	p.targets[(x*p.n+y)*p.c+slot] = to
	return nil
}
