package perceptron

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math/rand"
	"sync/atomic"

	"github.com/gorgonia/perceptron/projection"
	"github.com/pkg/errors"
)

// Engine is the associative perceptron: a fixed random projection from the receptors to the association layer,
// followed by a trainable weight matrix that reads a binary code out of the active association cells.
//
// Recognize, Learn and Train may be called concurrently. Regenerate and SetProjection must not be called while
// any of those are running.
type Engine struct {
	Config
	ds Dataset

	rnd     *rand.Rand // only used to generate projections
	proj    *projection.Projection
	weights *Weights
	grids   *gridPool

	// counters. atomic access only
	steps     int64
	successes int64

	// io
	buf    bytes.Buffer
	logger *log.Logger
	trace  lumberjack
}

// New creates an engine with a freshly generated projection and zeroed weights.
func New(conf Config, ds Dataset) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "A Dataset is required")
	}

	rnd := rand.New(rand.NewSource(conf.Seed))
	proj, err := projection.Generate(conf.Size, conf.Connections, rnd)
	if err != nil {
		return nil, errors.WithMessage(err, "Unable to generate the projection")
	}

	retVal := &Engine{
		Config:  conf,
		ds:      ds,
		rnd:     rnd,
		proj:    proj,
		weights: newWeights(conf.Size, conf.Bits, conf.Locking),
		grids:   makeGridPool(conf.Size),
		trace:   makeLumberJack(),
	}
	retVal.logger = log.New(&retVal.buf, "", log.Ltime)
	retVal.logger.Printf("New engine. Size %d, Connections %d, Bits %d, Limit %d, Correction %v, Locking %v",
		conf.Size, conf.Connections, conf.Bits, conf.ActivationLimit, conf.WeightCorrection, conf.Locking)
	go retVal.trace.start()
	return retVal, nil
}

// Projection returns the projection in use.
func (e *Engine) Projection() *projection.Projection { return e.proj }

// Weights returns the weight matrix.
func (e *Engine) Weights() *Weights { return e.weights }

// Regenerate draws a new projection and zeroes the weights, since weights trained against another projection are meaningless.
func (e *Engine) Regenerate() error {
	proj, err := projection.Generate(e.Size, e.Connections, e.rnd)
	if err != nil {
		return errors.WithMessage(err, "Unable to regenerate the projection")
	}
	e.proj = proj
	e.weights.reset()
	e.logger.Printf("Regenerated projection %p. Weights reset", proj)
	return nil
}

// SetProjection replaces the projection with a caller built one. The weights are left as they are.
func (e *Engine) SetProjection(p *projection.Projection) error {
	if p == nil {
		return errors.New("Cannot use a nil projection")
	}
	if p.Size() != e.Size || p.Connections() != e.Connections {
		return errors.Errorf("Projection is %dx%d with %d connections. Expected %dx%d with %d connections",
			p.Size(), p.Size(), p.Connections(), e.Size, e.Size, e.Connections)
	}
	e.proj = p
	e.logger.Printf("Set projection %p", p)
	return nil
}

// Excite returns the excitation of the association layer for the image: for every ink pixel, each of the cells it
// projects to is incremented by one.
func (e *Engine) Excite(img image.Image) *Grid {
	g := NewGrid(e.Size)
	e.excite(img, g)
	return g
}

// Recognize reads a code out of the image.
func (e *Engine) Recognize(img image.Image) Result {
	res, _ := e.recognize(img)
	return res
}

// Learn recognizes the image and, if the recognized code differs from the expected one, corrects the weights of the
// active cells for every wrong bit. It returns the recognition made before the correction, and whether it was correct.
func (e *Engine) Learn(img image.Image, expected Code) (res Result, ok bool, err error) {
	if !expected.Valid(e.Bits) {
		return res, false, errors.Wrapf(ErrBadCode, "%q is not a %d bit code", expected, e.Bits)
	}
	var active []int
	res, active = e.recognize(img)
	if res.Code == expected {
		return res, true, nil
	}
	e.weights.correct(active, res.Code, expected, e.WeightCorrection)
	return res, false, nil
}

// Steps returns the number of training steps completed over the life of the engine.
func (e *Engine) Steps() int64 { return atomic.LoadInt64(&e.steps) }

// Successes returns the number of training steps that were recognized correctly.
func (e *Engine) Successes() int64 { return atomic.LoadInt64(&e.successes) }

// Ratio returns the cumulative training success ratio.
func (e *Engine) Ratio() float64 { return ratio(e.Successes(), e.Steps()) }

// Log writes the engine log into w. It must not be called while training.
func (e *Engine) Log(w io.Writer) {
	fmt.Fprint(w, e.buf.String())
	if tr := e.trace.Log(); tr != "" {
		fmt.Fprintln(w, "\nSteps:")
		fmt.Fprint(w, tr)
	}
}

func (e *Engine) recognize(img image.Image) (Result, []int) {
	excitation := e.grids.borrowGrid()
	e.excite(img, excitation)
	activation, active := e.activate(excitation)
	e.grids.returnGrid(excitation)

	return Result{
		Code:       e.weights.readout(active),
		Activation: activation,
	}, active
}

func (e *Engine) excite(img image.Image, g *Grid) {
	n := e.Size
	proj := e.proj
	b := img.Bounds()
	w, h := minInt(n, b.Dx()), minInt(n, b.Dy())
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !isInk(img.At(b.Min.X+x, b.Min.Y+y)) {
				continue
			}
			for _, t := range proj.Targets(x, y) {
				g.data[t.X*n+t.Y]++
			}
		}
	}
}

// activate thresholds the excitation. It also returns the flat indices of the active cells.
func (e *Engine) activate(excitation *Grid) (*Grid, []int) {
	activation := Threshold(excitation, e.ActivationLimit)
	var active []int
	for i, v := range activation.data {
		if v == 1 {
			active = append(active, i)
		}
	}
	return activation, active
}

// isInk returns true for pixels that are exact black.
func isInk(c color.Color) bool {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return nc.R == 0 && nc.G == 0 && nc.B == 0
}

func ratio(successes, steps int64) float64 {
	if steps <= 0 {
		return 0
	}
	r := float64(successes) / float64(steps)
	if r > 1 {
		return 1
	}
	return r
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
