package perceptron

import (
	"github.com/pkg/errors"
)

// Evaluate recognizes freshly rendered images of the first samples labels (cycling through the dataset) without
// training on them. Each sample is handed to enc, if it's not nil. Flushing enc is up to the caller.
func (e *Engine) Evaluate(samples int, enc OutputEncoder) (retVal Evaluation, err error) {
	if samples < 0 {
		return retVal, errors.Wrapf(ErrInvalidConfig, "Cannot evaluate %d samples", samples)
	}
	for i := 0; i < samples; i++ {
		label := e.ds.Label(i)
		expected, ok := e.ds.Code(label)
		if !ok {
			return retVal, errors.Wrapf(ErrUnknownLabel, "Sample %d: no code for %q", i, label)
		}
		img := e.ds.Render(label, e.Size)
		res := e.Recognize(img)

		retVal.Samples++
		if res.Code == expected {
			retVal.Successes++
		}
		if enc == nil {
			continue
		}
		s := Sample{
			Index:    i,
			Label:    label,
			Image:    img,
			Expected: expected,
			Result:   res,
		}
		if err = enc.Encode(s); err != nil {
			return retVal, errors.WithMessagef(err, "Unable to encode sample %d", i)
		}
	}
	e.logger.Printf("Evaluated %d samples. %d recognized", retVal.Samples, retVal.Successes)
	return retVal, nil
}
