package perceptron

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is the cause of every configuration error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownLabel is returned when the dataset has no code for a label it produced itself.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrBadCode is returned when a code is not exactly Bits characters of '0' and '1'.
	ErrBadCode = errors.New("malformed code")
)

type manyErr []error

func (err manyErr) Error() string {
	var buf bytes.Buffer
	for _, e := range err {
		fmt.Fprintln(&buf, e.Error())
	}
	return buf.String()
}
