package perceptron

import (
	"github.com/pkg/errors"
)

// LockPolicy chooses how concurrent training synchronizes access to the weights.
type LockPolicy int

const (
	// RegionLock guards the whole weight matrix with a reader/writer lock: a recognition's
	// weighted sum holds the read lock, a step's correction phase holds the write lock.
	RegionLock LockPolicy = iota

	// CellLock updates each weight cell atomically and takes no region lock. A weighted sum
	// may observe a correction that is still being applied.
	CellLock

	MAXLOCKPOLICY
)

func (p LockPolicy) String() string {
	switch p {
	case RegionLock:
		return "region"
	case CellLock:
		return "cell"
	}
	return "UNKNOWN LOCK POLICY"
}

// Config configures the perceptron.
type Config struct {
	Size             int     // N - side of the receptor canvas and of the association layer
	Connections      int     // C - association cells each receptor excites
	Bits             int     // K - length of the output code
	ActivationLimit  int     // a cell is active if its excitation is strictly greater than this
	WeightCorrection float64 // reward/punishment applied to a weight on a wrong bit

	Locking     LockPolicy
	ReportEvery int   // report progress every this many completed steps. 0 disables reporting
	Seed        int64 // seed for the random projection

	Reporter Reporter // optional
}

// DefaultConfig returns a configuration for 100×100 images and codes of the given length.
func DefaultConfig(bits int) Config {
	return Config{
		Size:             100,
		Connections:      100,
		Bits:             bits,
		ActivationLimit:  3,
		WeightCorrection: 0.05,

		Locking:     RegionLock,
		ReportEvery: 1000,
		Seed:        1337,
	}
}

// Validate returns an error describing the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "Size must be positive. Got %d", c.Size)
	case c.Connections <= 0:
		return errors.Wrapf(ErrInvalidConfig, "Connections must be positive. Got %d", c.Connections)
	case c.Bits <= 0:
		return errors.Wrapf(ErrInvalidConfig, "Bits must be positive. Got %d", c.Bits)
	case c.ReportEvery < 0:
		return errors.Wrapf(ErrInvalidConfig, "ReportEvery cannot be negative. Got %d", c.ReportEvery)
	case c.Locking < 0 || c.Locking >= MAXLOCKPOLICY:
		return errors.Wrapf(ErrInvalidConfig, "Unknown lock policy %d", int(c.Locking))
	}
	return nil
}

func (c Config) IsValid() bool { return c.Validate() == nil }
