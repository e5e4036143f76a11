package projection

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// ToDot renders the projection as a graphviz digraph: receptors on the left, association cells on the
// right, one edge per connection. Repeated connections to the same cell are drawn once with a weight label.
//
// The graph grows with N*N*C, so this is only useful for tiny canvases.
func (p *Projection) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)
	g.AddAttr("G", "rankdir", "LR")

	g.AddSubGraph("G", "cluster_receptors", map[string]string{"label": "receptors"})
	g.AddSubGraph("G", "cluster_cells", map[string]string{"label": "\"association cells\""})
	for x := 0; x < p.n; x++ {
		for y := 0; y < p.n; y++ {
			g.AddNode("cluster_receptors", receptorName(x, y), map[string]string{
				"shape": "box",
				"label": fmt.Sprintf("\"%d,%d\"", x, y),
			})
			g.AddNode("cluster_cells", cellName(x, y), map[string]string{
				"shape": "circle",
				"label": fmt.Sprintf("\"%d,%d\"", x, y),
			})
		}
	}

	for x := 0; x < p.n; x++ {
		for y := 0; y < p.n; y++ {
			counts := make(map[Coord]int)
			var order []Coord
			for _, t := range p.Targets(x, y) {
				if counts[t] == 0 {
					order = append(order, t)
				}
				counts[t]++
			}
			for _, t := range order {
				var attrs map[string]string
				if counts[t] > 1 {
					attrs = map[string]string{"label": fmt.Sprintf("%d", counts[t])}
				}
				g.AddEdge(receptorName(x, y), cellName(t.X, t.Y), true, attrs)
			}
		}
	}
	return g.String()
}

func receptorName(x, y int) string { return fmt.Sprintf("r_%d_%d", x, y) }
func cellName(x, y int) string     { return fmt.Sprintf("a_%d_%d", x, y) }
