package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidFilterSpec reports a cutoff/order combination that cannot
// produce a stable bandpass design. Caller error, never retried.
var ErrInvalidFilterSpec = errors.New("invalid filter spec")

func validateSpec(s Spec) error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidFilterSpec, s.SampleRate)
	}
	if s.LowHz <= 0 {
		return fmt.Errorf("%w: low cutoff must be > 0: %v", ErrInvalidFilterSpec, s.LowHz)
	}
	if s.HighHz <= s.LowHz {
		return fmt.Errorf("%w: high cutoff %v must exceed low cutoff %v", ErrInvalidFilterSpec, s.HighHz, s.LowHz)
	}
	if s.HighHz >= s.SampleRate/2 {
		return fmt.Errorf("%w: high cutoff %v must be below Nyquist %v", ErrInvalidFilterSpec, s.HighHz, s.SampleRate/2)
	}
	if s.Order < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrInvalidFilterSpec, s.Order)
	}
	return nil
}
