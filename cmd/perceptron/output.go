package main

import (
	"fmt"
	"io"

	"github.com/gorgonia/perceptron"
	"github.com/gorgonia/perceptron/dataset"
)

// console keeps the last few evaluated samples and prints them as ASCII art on Flush.
type console struct {
	w    io.Writer
	ds   *dataset.Set
	keep int
	last []perceptron.Sample
}

func newConsole(w io.Writer, ds *dataset.Set, keep int) *console {
	return &console{
		w:    w,
		ds:   ds,
		keep: keep,
	}
}

// Encode a sample
func (c *console) Encode(s perceptron.Sample) error {
	if c.keep <= 0 {
		return nil
	}
	if len(c.last) == c.keep {
		copy(c.last, c.last[1:])
		c.last = c.last[:len(c.last)-1]
	}
	c.last = append(c.last, s)
	return nil
}

// Flush prints the kept samples.
func (c *console) Flush() error {
	for _, s := range c.last {
		got, ok := c.ds.LabelOf(s.Code)
		if !ok {
			got = "?"
		}
		mark := "✗"
		if s.Correct() {
			mark = "✓"
		}
		if _, err := fmt.Fprintf(c.w, "%s#%d expected %q (%s) got %q (%s) %s\n\n",
			dataset.ASCII(s.Image), s.Index, s.Label, s.Expected, got, s.Code, mark); err != nil {
			return err
		}
	}
	c.last = c.last[:0]
	return nil
}

// multiEncoder hands every sample to each of its encoders.
type multiEncoder []perceptron.OutputEncoder

func (m multiEncoder) Encode(s perceptron.Sample) error {
	for _, enc := range m {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}

func (m multiEncoder) Flush() error {
	for _, enc := range m {
		if err := enc.Flush(); err != nil {
			return err
		}
	}
	return nil
}
