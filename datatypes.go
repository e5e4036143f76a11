package perceptron

import (
	"image"
)

// Dataset is the collaborator that supplies labelled samples.
//
// Implementations must be safe for concurrent use: Train calls Label, Code and Render from every worker.
type Dataset interface {
	Len() int                                  // number of distinct labels
	Label(i int) string                        // label at i mod Len()
	Code(label string) (Code, bool)            // canonical code of a label; false if the label is unknown
	Render(label string, size int) image.Image // a size×size raster; ink pixels are exact black
}

// Code is a binary code - a string of '0's and '1's. It's used both as a label encoding and as the output of the perceptron.
type Code string

// Valid returns true if the code has exactly k characters, all of them '0' or '1'.
func (c Code) Valid(k int) bool {
	if len(c) != k {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] != '0' && c[i] != '1' {
			return false
		}
	}
	return true
}

// Result is the result of a recognition.
type Result struct {
	Code       Code  // the code read out of the weights
	Activation *Grid // the thresholded association layer. It belongs to the caller.
}

// Progress is a periodic observation of a training run. It is advisory only:
// Successes and Steps are loaded at slightly different times.
type Progress struct {
	Steps     int64   // steps completed so far
	Successes int64   // steps whose prediction matched the expected code
	Ratio     float64 // Successes/Steps, clamped to [0, 1]
	Worker    int     // the worker that crossed the reporting boundary
}

// Reporter receives progress observations. It may be called concurrently from several workers.
type Reporter interface {
	Report(p Progress)
}

// ReporterFunc is a function that implements Reporter.
type ReporterFunc func(p Progress)

// Report calls f(p).
func (f ReporterFunc) Report(p Progress) { f(p) }

// Sample is an evaluated sample, as handed to an OutputEncoder.
type Sample struct {
	Index    int
	Label    string
	Image    image.Image
	Expected Code
	Result   // the prediction
}

// Correct returns true if the prediction was right.
func (s Sample) Correct() bool { return s.Expected == s.Code }

// OutputEncoder encodes evaluated samples as whatever.
//
// An example OutputEncoder is the gif Encoder. Another example would be a logger.
type OutputEncoder interface {
	Encode(s Sample) error
	Flush() error
}

// Evaluation is the outcome of an evaluation pass.
type Evaluation struct {
	Samples   int
	Successes int
}

// Ratio returns the proportion of correctly recognized samples.
func (e Evaluation) Ratio() float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(e.Successes) / float64(e.Samples)
}
