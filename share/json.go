package share

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/egcore/eg-core/guardian"
	"github.com/egcore/eg-core/hash"
)

type wireEncryptedShare struct {
	Dealer    uint32 `json:"dealer"`
	Recipient uint32 `json:"recipient"`
	C0        string `json:"c0"`
	C1        string `json:"c1"`
	C2        string `json:"c2"`
}

// MarshalJSON encodes an EncryptedShare per spec §6:
// {dealer, recipient, c0, c1, c2}, integers as hex-encoded big-endian bytes.
func (s *EncryptedShare) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEncryptedShare{
		Dealer:    uint32(s.Dealer),
		Recipient: uint32(s.Recipient),
		C0:        hex.EncodeToString(s.C0.Bytes()),
		C1:        hex.EncodeToString(s.C1.Bytes()),
		C2:        hex.EncodeToString(s.C2[:]),
	})
}

// UnmarshalJSON decodes an EncryptedShare from the wire form produced by
// MarshalJSON. It cannot check c0/c1 against L_p/L_q, since
// json.Unmarshaler has no way to receive the election parameters; callers
// that have them should use DecodeEncryptedShare instead.
func (s *EncryptedShare) UnmarshalJSON(data []byte) error {
	decoded, err := decodeEncryptedShare(data, 0, 0)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// DecodeEncryptedShare decodes an EncryptedShare from the wire form
// produced by MarshalJSON, rejecting c0 longer than lp bytes or c1 longer
// than lq bytes with ErrSerialization (spec §4.8).
func DecodeEncryptedShare(data []byte, lp, lq int) (*EncryptedShare, error) {
	return decodeEncryptedShare(data, lp, lq)
}

func decodeEncryptedShare(data []byte, lp, lq int) (*EncryptedShare, error) {
	var wire wireEncryptedShare
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	c0, err := decodeHexBigIntBounded(wire.C0, lp)
	if err != nil {
		return nil, fmt.Errorf("%w: c0: %v", ErrSerialization, err)
	}
	c1, err := decodeHexBigIntBounded(wire.C1, lq)
	if err != nil {
		return nil, fmt.Errorf("%w: c1: %v", ErrSerialization, err)
	}
	c2Raw, err := hex.DecodeString(wire.C2)
	if err != nil {
		return nil, fmt.Errorf("%w: c2: %v", ErrSerialization, err)
	}
	if len(c2Raw) != hash.Size {
		return nil, fmt.Errorf("%w: c2 must be %d bytes, got %d", ErrSerialization, hash.Size, len(c2Raw))
	}

	var c2 hash.HValue
	copy(c2[:], c2Raw)

	return &EncryptedShare{
		Dealer:    guardian.Index(wire.Dealer),
		Recipient: guardian.Index(wire.Recipient),
		C0:        c0,
		C1:        c1,
		C2:        c2,
	}, nil
}

// decodeHexBigIntBounded decodes a hex string to a big.Int, rejecting
// payloads longer than maxLen bytes when maxLen > 0.
func decodeHexBigIntBounded(s string, maxLen int) (*big.Int, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && len(raw) > maxLen {
		return nil, fmt.Errorf("%d bytes exceeds limit of %d", len(raw), maxLen)
	}
	return new(big.Int).SetBytes(raw), nil
}

type wireSecretKeyShare struct {
	I  uint32 `json:"i"`
	PI string `json:"p_i"`
}

// MarshalJSON encodes a SecretKeyShare per spec §6: {i, p_i}.
func (s *SecretKeyShare) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSecretKeyShare{I: uint32(s.I), PI: hex.EncodeToString(s.PI.Bytes())})
}

// UnmarshalJSON decodes a SecretKeyShare from the wire form produced by
// MarshalJSON. It cannot check p_i against L_q, since json.Unmarshaler has
// no way to receive the election parameters; callers that have them should
// use DecodeSecretKeyShare instead.
func (s *SecretKeyShare) UnmarshalJSON(data []byte) error {
	decoded, err := decodeSecretKeyShare(data, 0)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// DecodeSecretKeyShare decodes a SecretKeyShare from the wire form produced
// by MarshalJSON, rejecting p_i longer than lq bytes with ErrSerialization
// (spec §4.8).
func DecodeSecretKeyShare(data []byte, lq int) (*SecretKeyShare, error) {
	return decodeSecretKeyShare(data, lq)
}

func decodeSecretKeyShare(data []byte, lq int) (*SecretKeyShare, error) {
	var wire wireSecretKeyShare
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	pI, err := decodeHexBigIntBounded(wire.PI, lq)
	if err != nil {
		return nil, fmt.Errorf("%w: p_i: %v", ErrSerialization, err)
	}
	return &SecretKeyShare{I: guardian.Index(wire.I), PI: pI}, nil
}
