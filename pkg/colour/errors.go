package colour

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a numeric input lies outside the domain of an operation.
	ErrDomain = errors.New("value outside valid domain")

	// ErrIlluminantMismatch is returned when two illuminant-relative colours with different
	// white points are compared or mixed without requesting adaptation.
	ErrIlluminantMismatch = errors.New("illuminant mismatch")

	// ErrGamutUnrepresentable is returned when no in-gamut point is found within the search bound.
	ErrGamutUnrepresentable = errors.New("colour cannot be represented in gamut")

	// ErrUnknownIlluminant is returned by LookupIlluminant for names not in the registry.
	ErrUnknownIlluminant = errors.New("unknown illuminant")

	// ErrUnknownRGBSpace is returned by LookupRGBSpace for names it does not recognise.
	ErrUnknownRGBSpace = errors.New("unknown rgb space")

	// ErrInvalidStops is returned when colormap stops are empty or out of order.
	ErrInvalidStops = errors.New("invalid colormap stops")
)

// DomainError describes an input that has no well-defined result.
type DomainError struct {
	Op     string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (got %g)", e.Op, e.Reason, e.Value)
}

// Unwrap allows errors.Is(err, ErrDomain).
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// IlluminantMismatchError reports the two white points that could not be reconciled.
type IlluminantMismatchError struct {
	Op   string
	A, B Illuminant
}

func (e *IlluminantMismatchError) Error() string {
	return fmt.Sprintf("%s: colours are relative to %s and %s; request adaptation to compare them",
		e.Op, e.A.Name, e.B.Name)
}

// Unwrap allows errors.Is(err, ErrIlluminantMismatch).
func (e *IlluminantMismatchError) Unwrap() error {
	return ErrIlluminantMismatch
}

func domainError(op string, v float64, reason string) error {
	return &DomainError{Op: op, Value: v, Reason: reason}
}
