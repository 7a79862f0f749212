package group

import "errors"

// Sentinel error kinds, inspectable with errors.Is. Errors this package
// raises about its own inputs wrap one of these with fmt.Errorf("%w: ...");
// errors from the randomness source during parameter generation are
// returned as they come.
var (
	// ErrInvalidParameter covers an index out of range, a value that is
	// not a valid mod-p residue, a value outside the order-q subgroup,
	// or a coefficient outside [0, q).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSerialization covers malformed JSON, a missing field, or an
	// integer that does not fit in the required byte width.
	ErrSerialization = errors.New("serialization error")
)
