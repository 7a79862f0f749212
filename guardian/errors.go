package guardian

import "errors"

var (
	// ErrInvalidParameter mirrors group.ErrInvalidParameter for the
	// guardian-key validation predicates (index out of range, a
	// commitment that is not a valid order-q subgroup element, ...).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrCoverage reports that a guardian public key list does not
	// cover {1, ..., n} exactly once: duplicates and/or missing
	// indices are named in the wrapping error's message.
	ErrCoverage = errors.New("coverage error")

	// ErrSerialization covers malformed JSON for the wire types in
	// this package.
	ErrSerialization = errors.New("serialization error")
)
