// Package dataset provides labelled synthetic images for the perceptron: rendered glyphs of an alphabet,
// and simple outlined shapes.
package dataset

import (
	"fmt"
	"image"
	"math/bits"
	"math/rand"
	"sync"

	"github.com/gorgonia/perceptron"
	"github.com/pkg/errors"
)

var _ perceptron.Dataset = &Set{}

// Renderer draws a label onto a size×size canvas. Ink must be exact black.
// The *rand.Rand handed to a Renderer is safe for concurrent use.
type Renderer interface {
	Render(label string, size int, rnd *rand.Rand) image.Image
}

// Set is a finite set of labels, each with a binary code, and a Renderer to draw them.
//
// The code of a label is its index (in order of first appearance) in binary,
// zero padded to ceil(log2(number of labels)) bits, with a minimum of 1 bit.
type Set struct {
	labels []string
	codes  map[string]perceptron.Code
	byCode map[perceptron.Code]string
	width  int

	rnd *rand.Rand
	Renderer
}

// NewSet creates a set of the given labels. Repeated labels are ignored.
func NewSet(labels []string, r Renderer, seed int64) (*Set, error) {
	if r == nil {
		return nil, errors.New("A Renderer is required")
	}
	var uniq []string
	seen := make(map[string]struct{})
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	if len(uniq) == 0 {
		return nil, errors.New("Cannot create a dataset without labels")
	}

	width := bits.Len(uint(len(uniq) - 1))
	if width == 0 {
		width = 1
	}
	retVal := &Set{
		labels:   uniq,
		codes:    make(map[string]perceptron.Code, len(uniq)),
		byCode:   make(map[perceptron.Code]string, len(uniq)),
		width:    width,
		rnd:      rand.New(&lockedSource{src: rand.NewSource(seed)}),
		Renderer: r,
	}
	for i, l := range uniq {
		code := perceptron.Code(fmt.Sprintf("%0*b", width, i))
		retVal.codes[l] = code
		retVal.byCode[code] = l
	}
	return retVal, nil
}

// Len returns the number of labels.
func (s *Set) Len() int { return len(s.labels) }

// Labels returns a copy of the labels, in code order.
func (s *Set) Labels() []string {
	retVal := make([]string, len(s.labels))
	copy(retVal, s.labels)
	return retVal
}

// CodeLen returns the length of the codes.
func (s *Set) CodeLen() int { return s.width }

// Label returns the label at i mod Len(). Negative indices wrap around too.
func (s *Set) Label(i int) string {
	n := len(s.labels)
	return s.labels[((i%n)+n)%n]
}

// Code returns the code of a label.
func (s *Set) Code(label string) (perceptron.Code, bool) {
	c, ok := s.codes[label]
	return c, ok
}

// LabelOf returns the label a code stands for. Codes that stand for nothing return false.
func (s *Set) LabelOf(code perceptron.Code) (string, bool) {
	l, ok := s.byCode[code]
	return l, ok
}

// Render renders the label.
func (s *Set) Render(label string, size int) image.Image { return s.Renderer.Render(label, size, s.rnd) }

// lockedSource is a rand.Source that may be shared by many goroutines.
type lockedSource struct {
	sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.Lock()
	n := s.src.Int63()
	s.Unlock()
	return n
}

func (s *lockedSource) Seed(seed int64) {
	s.Lock()
	s.src.Seed(seed)
	s.Unlock()
}

// between returns a uniform integer in [lo, hi). If the range is empty, lo is returned.
func between(rnd *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.Intn(hi-lo)
}
