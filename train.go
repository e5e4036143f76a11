package perceptron

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Train runs steps training steps on a pool of workers goroutines.
//
// Step s (1 ≤ s ≤ steps) trains on the dataset's label s mod Len(), so the labels are covered uniformly
// and repeatably. Steps are independent of each other apart from the weights they correct, and may run in any
// order. Training is not convergence driven: all steps are run unless the dataset fails to provide a code, in which
// case the remaining steps are abandoned and the error is returned.
func (e *Engine) Train(steps, workers int) error {
	if steps < 0 {
		return errors.Wrapf(ErrInvalidConfig, "Cannot train for %d steps", steps)
	}
	if workers <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "Cannot train with %d workers", workers)
	}
	e.logger.Printf("Training for %d steps with %d workers", steps, workers)
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan int, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go e.work(ctx, cancel, i, ch, errs, &wg)
	}

loop:
	for s := 1; s <= steps; s++ {
		select {
		case ch <- s:
		case <-ctx.Done():
			break loop
		}
	}
	close(ch)
	wg.Wait()
	close(errs)

	var allErrs manyErr
	for err := range errs {
		allErrs = append(allErrs, err)
	}
	if len(allErrs) > 0 {
		e.logger.Printf("Training aborted: %v", allErrs)
		return allErrs[0]
	}

	e.logger.Printf("Trained %d steps in %v. Success ratio %.4f", steps, time.Since(start), e.Ratio())
	return nil
}

func (e *Engine) work(ctx context.Context, cancel context.CancelFunc, id int, ch <-chan int, errs chan<- error, wg *sync.WaitGroup) {
	defer wg.Done()
	for s := range ch {
		if ctx.Err() != nil {
			continue // drain
		}
		if err := e.step(s, id); err != nil {
			errs <- err
			cancel()
			return
		}
	}
}

// step is one recognize-then-correct cycle.
func (e *Engine) step(s, worker int) error {
	label := e.ds.Label(s)
	expected, ok := e.ds.Code(label)
	if !ok {
		return errors.Wrapf(ErrUnknownLabel, "Step %d: no code for %q", s, label)
	}
	if !expected.Valid(e.Bits) {
		return errors.Wrapf(ErrBadCode, "Step %d: code %q of %q is not a %d bit code", s, expected, label, e.Bits)
	}

	img := e.ds.Render(label, e.Size)
	res, ok, err := e.Learn(img, expected)
	if err != nil {
		return errors.WithMessagef(err, "Step %d", s)
	}
	var successes int64
	if ok {
		successes = atomic.AddInt64(&e.successes, 1)
	} else {
		successes = atomic.LoadInt64(&e.successes)
	}
	done := atomic.AddInt64(&e.steps, 1)
	e.trace.log("%d\tworker %d\t%q\texpected %s\tgot %s\tactive %d", s, worker, label, expected, res.Code, res.Activation.Count())

	if e.Reporter != nil && e.ReportEvery > 0 && done%int64(e.ReportEvery) == 0 {
		e.Reporter.Report(Progress{
			Steps:     done,
			Successes: successes,
			Ratio:     ratio(successes, done),
			Worker:    worker,
		})
	}
	return nil
}
