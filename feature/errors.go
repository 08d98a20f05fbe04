package feature

import "errors"

// ErrInsufficientSamples reports a window too short for the requested
// extraction. Surfaced to the caller, never silently zero-filled:
// NaN propagation into the classifier is a latent correctness bug.
var ErrInsufficientSamples = errors.New("insufficient samples")

// ErrInvalidWindow reports a malformed signal window (empty, ragged,
// or containing non-finite samples).
var ErrInvalidWindow = errors.New("invalid signal window")
