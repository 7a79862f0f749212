package guardian

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

type wirePublicKey struct {
	I           uint32   `json:"i"`
	Commitments []string `json:"commitments"`
}

// MarshalJSON encodes a PublicKey as {i, commitments: [hex, ...]}, per
// spec §6. Integers are big-endian byte strings, hex-encoded.
func (pk *PublicKey) MarshalJSON() ([]byte, error) {
	commitments := make([]string, len(pk.Commitments))
	for j, c := range pk.Commitments {
		commitments[j] = hex.EncodeToString(c.Bytes())
	}
	return json.Marshal(wirePublicKey{I: uint32(pk.I), Commitments: commitments})
}

// UnmarshalJSON decodes a PublicKey from the wire form produced by
// MarshalJSON, failing with ErrSerialization on malformed input. It cannot
// check commitments against L_p, since json.Unmarshaler has no way to
// receive the election parameters; callers that have them should use
// DecodePublicKey instead.
func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	decoded, err := decodePublicKey(data, 0)
	if err != nil {
		return err
	}
	*pk = *decoded
	return nil
}

// DecodePublicKey decodes a PublicKey from the wire form produced by
// MarshalJSON, rejecting any commitment whose encoded length exceeds lp
// bytes with ErrSerialization (spec §4.8).
func DecodePublicKey(data []byte, lp int) (*PublicKey, error) {
	return decodePublicKey(data, lp)
}

func decodePublicKey(data []byte, lp int) (*PublicKey, error) {
	var wire wirePublicKey
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	commitments := make([]*big.Int, len(wire.Commitments))
	for j, s := range wire.Commitments {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: commitment %d is not valid hex: %v", ErrSerialization, j, err)
		}
		if lp > 0 && len(raw) > lp {
			return nil, fmt.Errorf("%w: commitment %d is %d bytes, exceeds L_p=%d", ErrSerialization, j, len(raw), lp)
		}
		commitments[j] = new(big.Int).SetBytes(raw)
	}

	return &PublicKey{I: Index(wire.I), Commitments: commitments}, nil
}
