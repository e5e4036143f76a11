package perceptron

import (
	"fmt"
)

// Grid is an N×N grid of integers, indexed by (x, y). It backs both the excitation of the
// association layer (counts) and its activation (0 or 1).
type Grid struct {
	n    int
	data []int32 // row major over x
}

// NewGrid creates a zeroed grid.
func NewGrid(n int) *Grid {
	return &Grid{
		n:    n,
		data: make([]int32, n*n),
	}
}

// Size returns N.
func (g *Grid) Size() int { return g.n }

// At returns the value at (x, y).
func (g *Grid) At(x, y int) int32 { return g.data[x*g.n+y] }

// Set sets the value at (x, y).
func (g *Grid) Set(x, y int, v int32) { g.data[x*g.n+y] = v }

// Data returns the flat backing slice, row major over x.
func (g *Grid) Data() []int32 { return g.data }

// Rows returns a view of the grid as rows, so that Rows()[x][y] == At(x, y).
// The views share memory with the grid.
func (g *Grid) Rows() [][]int32 { return MakeIterator(g.data, g.n, g.n) }

// Count returns the number of non zero cells.
func (g *Grid) Count() (retVal int) {
	for _, v := range g.data {
		if v != 0 {
			retVal++
		}
	}
	return
}

// Threshold returns the activation of an excitation grid: 1 where excitation > limit, 0 elsewhere.
func Threshold(excitation *Grid, limit int) *Grid {
	retVal := NewGrid(excitation.n)
	l := int32(limit)
	for i, v := range excitation.data {
		if v > l {
			retVal.data[i] = 1
		}
	}
	return retVal
}

func (g *Grid) Format(s fmt.State, c rune) {
	for x := 0; x < g.n; x++ {
		fmt.Fprint(s, "⎢ ")
		for y := 0; y < g.n; y++ {
			switch c {
			case 's':
				if g.At(x, y) != 0 {
					fmt.Fprint(s, "█ ")
				} else {
					fmt.Fprint(s, "· ")
				}
			default:
				fmt.Fprintf(s, "%d ", g.At(x, y))
			}
		}
		fmt.Fprint(s, "⎥\n")
	}
}
