package risk

import "errors"

var (
	// ErrModelNotFound reports a missing persisted artifact. Callers
	// recover by training from scratch; the fallback lives in the
	// orchestration layer, not here.
	ErrModelNotFound = errors.New("model artifact not found")

	// ErrSchemaMismatch reports a feature vector or artifact whose
	// schema disagrees with the trained model. Fatal for the call;
	// never coerced by truncation or padding.
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrNotTrained reports a prediction attempted on an untrained
	// classifier.
	ErrNotTrained = errors.New("classifier not trained")
)
