package dataset

import (
	"image"
	"math"
	"math/rand"

	"golang.org/x/image/vector"
)

// Shape labels.
const (
	Circle  = "circle"
	Rhombus = "rhombus"
)

// Outlines renders the outlines of shapes of random size at random positions.
// Labels it doesn't know of are rendered as a blank canvas.
type Outlines struct {
	Stroke int // stroke width in pixels. If 0, it's 1/25 of the canvas, but at least 2px
}

// Shapes creates a Set of circles and rhombi.
func Shapes(seed int64) (*Set, error) {
	return NewSet([]string{Circle, Rhombus}, Outlines{}, seed)
}

// Render draws the outline of the named shape in black on a white canvas.
// The shape's radius (or half diagonal) is between 1/5 and 1/2 of the canvas.
func (o Outlines) Render(label string, size int, rnd *rand.Rand) image.Image {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	stroke := float32(o.Stroke)
	if stroke <= 0 {
		stroke = float32(size) / 25
		if stroke < 2 {
			stroke = 2
		}
	}

	r := between(rnd, size/5, size/2)
	cx := between(rnd, r, size-r)
	cy := between(rnd, r, size-r)
	z := vector.NewRasterizer(size, size)
	switch label {
	case Circle:
		ring(z, float32(cx), float32(cy), float32(r), stroke, 64)
	case Rhombus:
		// a rhombus is a 4 sided ring, rotated by a quarter
		ring(z, float32(cx), float32(cy), float32(r), stroke*math.Sqrt2, 4)
	default:
		return binarize(mask)
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return binarize(mask)
}

// ring adds a regular polygon outline with the given number of sides to z. The inner polygon is wound the
// other way, so it's cut out of the outer one.
func ring(z *vector.Rasterizer, cx, cy, r, width float32, sides int) {
	polygon(z, cx, cy, r, sides, 1)
	if inner := r - width; inner > 0 {
		polygon(z, cx, cy, inner, sides, -1)
	}
}

func polygon(z *vector.Rasterizer, cx, cy, r float32, sides int, dir float64) {
	at := func(i int) (float32, float32) {
		θ := dir * 2 * math.Pi * float64(i) / float64(sides)
		return cx + r*float32(math.Sin(θ)), cy - r*float32(math.Cos(θ))
	}
	z.MoveTo(at(0))
	for i := 1; i < sides; i++ {
		z.LineTo(at(i))
	}
	z.ClosePath()
}
