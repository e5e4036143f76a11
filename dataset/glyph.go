package dataset

import (
	"image"
	"math/rand"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Glyphs renders labels as text, in the Go regular font (which covers Latin, Greek and Cyrillic).
//
// The text is MinScale to MaxScale times the canvas size high, placed at a random position such that it fits in the canvas.
type Glyphs struct {
	MinScale, MaxScale float64

	font *truetype.Font
}

// GlyphOption configures a Glyphs renderer.
type GlyphOption func(g *Glyphs)

// WithScale makes the glyph size vary uniformly between min and max times the canvas size.
func WithScale(min, max float64) GlyphOption {
	return func(g *Glyphs) {
		g.MinScale = min
		g.MaxScale = max
	}
}

// NewGlyphs creates a glyph renderer. The default glyph size is half the canvas.
func NewGlyphs(opts ...GlyphOption) (*Glyphs, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to parse the Go regular font")
	}
	retVal := &Glyphs{
		MinScale: 0.5,
		MaxScale: 0.5,
		font:     f,
	}
	for _, opt := range opts {
		opt(retVal)
	}
	if retVal.MinScale <= 0 || retVal.MaxScale < retVal.MinScale {
		return nil, errors.Errorf("Invalid glyph scale [%v, %v]", retVal.MinScale, retVal.MaxScale)
	}
	return retVal, nil
}

// Alphabet creates a Set whose labels are rendered as glyphs.
func Alphabet(labels []string, seed int64, opts ...GlyphOption) (*Set, error) {
	g, err := NewGlyphs(opts...)
	if err != nil {
		return nil, err
	}
	return NewSet(labels, g, seed)
}

// Render draws the label in black on a white canvas.
func (g *Glyphs) Render(label string, size int, rnd *rand.Rand) image.Image {
	scale := g.MinScale
	if g.MaxScale > g.MinScale {
		scale += rnd.Float64() * (g.MaxScale - g.MinScale)
	}
	px := scale * float64(size)
	if px < 1 {
		px = 1
	}

	// faces cache glyphs and are not safe for concurrent use, so each render gets its own.
	face := truetype.NewFace(g.font, &truetype.Options{
		Size:    px,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	defer face.Close()

	bounds, _ := font.BoundString(face, label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := between(rnd, 0, size-w+1)
	y := between(rnd, 0, size-h+1)

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(label)
	return binarize(mask)
}

// binarize turns a coverage mask into a black on white image. Pixels at least half covered are ink.
func binarize(mask *image.Alpha) *image.Gray {
	retVal := image.NewGray(mask.Bounds())
	for i, a := range mask.Pix {
		if a >= 0x80 {
			retVal.Pix[i] = 0
		} else {
			retVal.Pix[i] = 0xff
		}
	}
	return retVal
}
