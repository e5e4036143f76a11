package projection

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	n, c := 7, 5
	p, err := Generate(n, c, rand.New(rand.NewSource(1337)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(n, p.Size())
	assert.Equal(c, p.Connections())
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			targets := p.Targets(x, y)
			assert.Len(targets, c)
			for _, to := range targets {
				assert.True(to.X >= 0 && to.X < n, "X of %v out of range", to)
				assert.True(to.Y >= 0 && to.Y < n, "Y of %v out of range", to)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1, err := Generate(10, 3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Generate(10, 3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, p1.targets, p2.targets, "Same seed should yield the same projection")
}

func TestGenerateDrawOrder(t *testing.T) {
	// each slot consumes two draws, X then Y
	n, c := 3, 2
	p, err := Generate(n, c, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	r := rand.New(rand.NewSource(7))
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for k := 0; k < c; k++ {
				want := Coord{r.Intn(n), 0}
				want.Y = r.Intn(n)
				if got := p.Targets(x, y)[k]; got != want {
					t.Errorf("receptor (%d, %d) slot %d: want %v, got %v", x, y, k, want, got)
				}
			}
		}
	}
}

var badSizes = []struct{ n, c int }{
	{0, 1},
	{-1, 1},
	{1, 0},
	{4, -3},
}

func TestNewInvalid(t *testing.T) {
	for _, bs := range badSizes {
		if _, err := New(bs.n, bs.c); err == nil {
			t.Errorf("Expected an error for n %d c %d", bs.n, bs.c)
		}
		if _, err := Generate(bs.n, bs.c, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("Expected Generate to fail for n %d c %d", bs.n, bs.c)
		}
	}
}

func TestSet(t *testing.T) {
	assert := assert.New(t)
	p, err := New(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	assert.NoError(p.Set(0, 0, 0, Coord{1, 1}))
	assert.Equal([]Coord{{1, 1}}, p.Targets(0, 0))
	assert.Equal([]Coord{{0, 0}}, p.Targets(3, 3))

	assert.Error(p.Set(4, 0, 0, Coord{1, 1}))
	assert.Error(p.Set(0, 0, 1, Coord{1, 1}))
	assert.Error(p.Set(0, 0, 0, Coord{4, 0}))
}

func TestToDot(t *testing.T) {
	p, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.Set(0, 1, 0, Coord{1, 1})
	p.Set(0, 1, 1, Coord{1, 1})
	dot := p.ToDot()
	t.Logf("\n%s", dot)

	for _, s := range []string{"r_0_0", "r_1_1", "a_0_0", "a_1_1", "r_0_1->a_1_1"} {
		if !strings.Contains(dot, s) {
			t.Errorf("Expected %q in the dot output", s)
		}
	}
	if strings.Count(dot, "r_0_1->a_1_1") != 1 {
		t.Errorf("Repeated connections should be collapsed into a single edge")
	}
}
