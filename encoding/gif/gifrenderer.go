package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/perceptron"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
	"gorgonia.org/vecf32"
)

var regular *truetype.Font

const (
	dpi        = 72.0
	fontsize   = 12.0
	lineheight = 1.25
	ramp       = 32 // shades per sign in the weight heatmaps
	lines      = 2  // caption lines under each frame
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var (
	black = color.Gray{0}
	white = color.Gray{255}
	green = color.RGBA{0, 160, 0, 255}
	red   = color.RGBA{200, 0, 0, 255}
)

// globPalette is black, white, green, red, then a white to red ramp and a white to blue ramp.
var globPalette = func() color.Palette {
	p := color.Palette{black, white, green, red}
	for i := 0; i < ramp; i++ {
		v := uint8(255 - 255*i/(ramp-1))
		p = append(p, color.RGBA{255, v, v, 255})
	}
	for i := 0; i < ramp; i++ {
		v := uint8(255 - 255*i/(ramp-1))
		p = append(p, color.RGBA{v, v, 255, 255})
	}
	return p
}()

const (
	posRamp = 4
	negRamp = posRamp + ramp
)

var _ perceptron.OutputEncoder = &Encoder{}

// Encoder encodes evaluated samples as the frames of an animated gif. Each frame shows the sample image next to
// the activation of the association layer, captioned with the label, the expected and the recognized code.
//
// Frames are kept in memory until Flush writes the gif into Writer.
type Encoder struct {
	Scale int // pixels per receptor
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	n           int // side of the frames' grids. All frames share it
	side        int // n*Scale
	dy          int
	pad         int
	initialized bool
}

// NewGifEncoder creates an encoder that draws each receptor as a scale×scale square.
func NewGifEncoder(scale int) *Encoder {
	if scale < 1 {
		scale = 1
	}
	return &Encoder{
		Scale: scale,
		pad:   10,
		Drawer: font.Drawer{
			Src: image.Black,
		},
		out: &gif.GIF{LoopCount: -1},
	}
}

func (enc *Encoder) init(n int) error {
	if enc.initialized {
		if n != enc.n {
			return errors.Errorf("Frame of side %d does not fit an encoder of side %d", n, enc.n)
		}
		return nil
	}
	// lazy init of the frame layout
	enc.face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	enc.Drawer.Face = enc.face
	enc.n = n
	enc.side = n * enc.Scale
	enc.dy = int(math.Ceil(fontsize * lineheight * dpi / 72))

	w := 2*enc.side + 3*enc.pad
	if mw := font.MeasureString(enc.face, "#0000 expected 00000000 got 00000000").Ceil() + 2*enc.pad; mw > w {
		w = mw
	}
	h := enc.side + 2*enc.pad + lines*enc.dy
	enc.out.Config = image.Config{
		ColorModel: globPalette,
		Width:      w,
		Height:     h,
	}
	enc.initialized = true
	return nil
}

func (enc *Encoder) newFrame() *image.Paletted {
	im := image.NewPaletted(image.Rect(0, 0, enc.out.Config.Width, enc.out.Config.Height), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im
	return im
}

func (enc *Encoder) caption(text ...string) {
	y := enc.pad + enc.side + enc.dy
	for _, s := range text {
		enc.Dot = fixed.P(enc.pad, y)
		enc.DrawString(s)
		y += enc.dy
	}
}

// cell fills the scaled receptor (x, y) of the panel-th panel with colour index c.
func (enc *Encoder) cell(im *image.Paletted, panel, x, y int, c uint8) {
	x0 := enc.pad + panel*(enc.side+enc.pad) + x*enc.Scale
	y0 := enc.pad + y*enc.Scale
	for i := x0; i < x0+enc.Scale; i++ {
		for j := y0; j < y0+enc.Scale; j++ {
			im.SetColorIndex(i, j, c)
		}
	}
}

func (enc *Encoder) border(im *image.Paletted, panel int) {
	x0 := enc.pad + panel*(enc.side+enc.pad) - 1
	y0 := enc.pad - 1
	x1, y1 := x0+enc.side+1, y0+enc.side+1
	for i := x0; i <= x1; i++ {
		im.SetColorIndex(i, y0, 0)
		im.SetColorIndex(i, y1, 0)
	}
	for j := y0; j <= y1; j++ {
		im.SetColorIndex(x0, j, 0)
		im.SetColorIndex(x1, j, 0)
	}
}

// Encode adds a frame for the sample.
func (enc *Encoder) Encode(s perceptron.Sample) error {
	if s.Image == nil {
		return errors.Errorf("Sample %d has no image", s.Index)
	}
	b := s.Image.Bounds()
	n := b.Dx()
	if s.Activation != nil {
		n = s.Activation.Size()
	}
	if err := enc.init(n); err != nil {
		return errors.WithMessagef(err, "Sample %d", s.Index)
	}

	im := enc.newFrame()
	w, h := minInt(n, b.Dx()), minInt(n, b.Dy())
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := color.NRGBAModel.Convert(s.Image.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				enc.cell(im, 0, x, y, 0)
			}
		}
	}
	enc.border(im, 0)
	if s.Activation != nil {
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				if s.Activation.At(x, y) != 0 {
					enc.cell(im, 1, x, y, 0)
				}
			}
		}
		enc.border(im, 1)
	}

	delay := 50
	enc.Src = image.NewUniform(green)
	if !s.Correct() {
		enc.Src = image.NewUniform(red)
		delay = 150
	}
	enc.caption(
		fmt.Sprintf("#%d %q", s.Index, s.Label),
		fmt.Sprintf("expected %s got %s", s.Expected, s.Code),
	)
	enc.Src = image.Black

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// EncodeWeights adds a heatmap frame of a row major n×n weight plane, as returned by (*perceptron.Weights).Plane.
// Positive weights are red, negative ones are blue. The plane is normalized by its largest magnitude.
func (enc *Encoder) EncodeWeights(plane []float32, n int) error {
	if len(plane) != n*n {
		return errors.Errorf("Expected a plane of %d weights. Got %d", n*n, len(plane))
	}
	if err := enc.init(n); err != nil {
		return err
	}

	p := make([]float32, len(plane))
	copy(p, plane)
	max, min := vecf32.MaxOf(p), vecf32.MinOf(p)
	if m := math32.Max(math32.Abs(max), math32.Abs(min)); m > 0 {
		vecf32.Scale(p, 1/m)
	}

	im := enc.newFrame()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			v := p[x*n+y]
			shade := uint8(math32.Abs(v)*float32(ramp-1) + 0.5)
			switch {
			case v > 0:
				enc.cell(im, 0, x, y, posRamp+shade)
			case v < 0:
				enc.cell(im, 0, x, y, negRamp+shade)
			}
		}
	}
	enc.border(im, 0)
	enc.caption("weights", fmt.Sprintf("min %.3f max %.3f", min, max))

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, 300)
	return nil
}

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if enc.Writer == nil {
		return errors.New("No writer to flush into")
	}
	if len(enc.out.Image) == 0 {
		return errors.New("Nothing to flush")
	}
	return gif.EncodeAll(enc.Writer, enc.out)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
