package share

import "errors"

var (
	// ErrIndexMismatch reports that the dealer/recipient indices
	// embedded in an encrypted share don't match the supplied
	// public/secret key.
	ErrIndexMismatch = errors.New("dealer/recipient index mismatch")

	// ErrMacMismatch reports that the MAC computed during decryption
	// differs from the share's stored c2.
	ErrMacMismatch = errors.New("MAC does not verify")

	// ErrSerialization covers malformed JSON for the wire types in
	// this package.
	ErrSerialization = errors.New("serialization error")
)
