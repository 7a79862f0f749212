package election

import "errors"

// ErrValidation reports that a JointElectionPublicKey fails its mod-p
// validity check.
var ErrValidation = errors.New("validation error")

// ErrSerialization covers malformed JSON for the wire types in this
// package.
var ErrSerialization = errors.New("serialization error")
