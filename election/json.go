package election

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
)

type wireJointElectionPublicKey struct {
	JointElectionPublicKey string `json:"joint_election_public_key"`
}

// MarshalJSON encodes a JointElectionPublicKey per spec §6:
// {joint_election_public_key: K}, K as hex-encoded big-endian bytes.
func (jepk *JointElectionPublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireJointElectionPublicKey{JointElectionPublicKey: hex.EncodeToString(jepk.K.Bytes())})
}

// UnmarshalJSON decodes a JointElectionPublicKey from the wire form
// produced by MarshalJSON. It cannot check K against L_p, since
// json.Unmarshaler has no way to receive the election parameters; callers
// that have them should use DecodeJointElectionPublicKey instead. Callers
// must call Validate before use either way.
func (jepk *JointElectionPublicKey) UnmarshalJSON(data []byte) error {
	decoded, err := decodeJointElectionPublicKey(data, 0)
	if err != nil {
		return err
	}
	*jepk = *decoded
	return nil
}

// DecodeJointElectionPublicKey decodes a JointElectionPublicKey from the
// wire form produced by MarshalJSON, rejecting K longer than lp bytes with
// ErrSerialization (spec §4.8). Callers must still call Validate before use.
func DecodeJointElectionPublicKey(data []byte, lp int) (*JointElectionPublicKey, error) {
	return decodeJointElectionPublicKey(data, lp)
}

func decodeJointElectionPublicKey(data []byte, lp int) (*JointElectionPublicKey, error) {
	var wire wireJointElectionPublicKey
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	raw, err := hex.DecodeString(wire.JointElectionPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if lp > 0 && len(raw) > lp {
		return nil, fmt.Errorf("%w: joint election public key is %d bytes, exceeds L_p=%d", ErrSerialization, len(raw), lp)
	}
	return &JointElectionPublicKey{K: new(big.Int).SetBytes(raw)}, nil
}

type wireCiphertext struct {
	Alpha string `json:"alpha"`
	Beta  string `json:"beta"`
}

// MarshalJSON encodes a Ciphertext per spec §6: {alpha, beta}.
func (c *Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireCiphertext{
		Alpha: hex.EncodeToString(c.Alpha.Bytes()),
		Beta:  hex.EncodeToString(c.Beta.Bytes()),
	})
}

// UnmarshalJSON decodes a Ciphertext from the wire form produced by
// MarshalJSON. It cannot check alpha/beta against L_p, since
// json.Unmarshaler has no way to receive the election parameters; callers
// that have them should use DecodeCiphertext instead.
func (c *Ciphertext) UnmarshalJSON(data []byte) error {
	decoded, err := decodeCiphertext(data, 0)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// DecodeCiphertext decodes a Ciphertext from the wire form produced by
// MarshalJSON, rejecting alpha or beta longer than lp bytes with
// ErrSerialization (spec §4.8).
func DecodeCiphertext(data []byte, lp int) (*Ciphertext, error) {
	return decodeCiphertext(data, lp)
}

func decodeCiphertext(data []byte, lp int) (*Ciphertext, error) {
	var wire wireCiphertext
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	alphaRaw, err := hex.DecodeString(wire.Alpha)
	if err != nil {
		return nil, fmt.Errorf("%w: alpha: %v", ErrSerialization, err)
	}
	if lp > 0 && len(alphaRaw) > lp {
		return nil, fmt.Errorf("%w: alpha is %d bytes, exceeds L_p=%d", ErrSerialization, len(alphaRaw), lp)
	}
	betaRaw, err := hex.DecodeString(wire.Beta)
	if err != nil {
		return nil, fmt.Errorf("%w: beta: %v", ErrSerialization, err)
	}
	if lp > 0 && len(betaRaw) > lp {
		return nil, fmt.Errorf("%w: beta is %d bytes, exceeds L_p=%d", ErrSerialization, len(betaRaw), lp)
	}

	return &Ciphertext{
		Alpha: new(big.Int).SetBytes(alphaRaw),
		Beta:  new(big.Int).SetBytes(betaRaw),
	}, nil
}
