package risk

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/injsense/biosig/feature"
	"github.com/injsense/biosig/risk/forest"
)

// DefaultArtifactName is the conventional filename of the persisted
// model artifact.
const DefaultArtifactName = "injury_model.gob"

// artifactVersion guards against silently loading an artifact written
// by an incompatible build after a schema or format change.
const artifactVersion = 1

// artifact is the serialized form of a trained classifier.
type artifact struct {
	Version  int
	Schema   []string
	Scaler   standardizer
	Ensemble forest.Forest
}

// Save serializes the trained transform and ensemble to a binary
// artifact at path.
func (c *Classifier) Save(path string) error {
	if !c.trained {
		return ErrNotTrained
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("risk: create artifact: %w", err)
	}

	a := artifact{
		Version:  artifactVersion,
		Schema:   c.schema,
		Scaler:   c.scaler,
		Ensemble: *c.ensemble,
	}

	if err := gob.NewEncoder(f).Encode(a); err != nil {
		f.Close()
		return fmt.Errorf("risk: encode artifact: %w", err)
	}

	return f.Close()
}

// Load deserializes a classifier from the artifact at path. A missing
// file yields ErrModelNotFound, signaling the caller to fall back to
// training; a version or schema incompatibility yields
// ErrSchemaMismatch.
func Load(path string, opts ...Option) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("risk: open artifact: %w", err)
	}
	defer f.Close()

	var a artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("risk: decode artifact: %w", err)
	}

	if a.Version != artifactVersion {
		return nil, fmt.Errorf("%w: artifact version %d, expected %d", ErrSchemaMismatch, a.Version, artifactVersion)
	}

	c := New(opts...)
	if !c.schema.Equal(feature.Schema(a.Schema)) {
		return nil, fmt.Errorf("%w: artifact schema %v, expected %v", ErrSchemaMismatch, a.Schema, c.schema)
	}

	ensemble := a.Ensemble
	c.scaler = a.Scaler
	c.ensemble = &ensemble
	c.trained = true

	return c, nil
}
