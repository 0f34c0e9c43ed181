package godielectric

import pkgerrors "github.com/pkg/errors"

var (
	// ErrUnknownKind is returned for a model kind tag or value with no formula.
	ErrUnknownKind = pkgerrors.New("unknown model kind")

	// ErrEmptySweep is returned for a frequency sweep without samples.
	ErrEmptySweep = pkgerrors.New("empty frequency sweep")

	// ErrNonPositiveFrequency is returned for a sweep sample that is not a
	// finite positive frequency.
	ErrNonPositiveFrequency = pkgerrors.New("frequency must be positive")
)
