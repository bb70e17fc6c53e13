package genetics

import "errors"

var (
	// ErrInvalidDistribution is returned when fitness scores cannot form a
	// selection distribution (total fitness <= 0, or a non-finite score).
	ErrInvalidDistribution = errors.New("invalid fitness distribution")
	// ErrShapeMismatch is returned when chromosomes that must share a length do not.
	ErrShapeMismatch = errors.New("chromosome shape mismatch")
	// ErrConfiguration is returned when call arguments are inconsistent with the config.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidConfig is returned when a config field is outside its domain.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvariant signals an internal postcondition violation.
	ErrInvariant = errors.New("internal invariant violated")
)
