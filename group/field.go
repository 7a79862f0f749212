package group

import (
	"fmt"
	"math/big"
)

// BigUintToBEBytesLeftPad encodes x as exactly l big-endian bytes,
// zero-padded on the left. It fails if x does not fit in l bytes or is
// negative.
func BigUintToBEBytesLeftPad(x *big.Int, l int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", ErrSerialization)
	}

	raw := x.Bytes()
	if len(raw) > l {
		return nil, fmt.Errorf("%w: value does not fit in %d bytes", ErrSerialization, l)
	}

	out := make([]byte, l)
	copy(out[l-len(raw):], raw)
	return out, nil
}

// AddMod returns (a+b) mod n.
func AddMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), n)
}

// SubMod returns (a-b) mod n, always in [0, n).
func SubMod(a, b, n *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), n)
}

// ModInverse returns the multiplicative inverse of a mod m, and false if
// a has no inverse (gcd(a, m) != 1, including a = 0).
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	inv := new(big.Int)
	if inv.ModInverse(a, m) == nil {
		return nil, false
	}
	return inv, true
}

// XORBytes returns a xor b, byte-wise. Both slices must have equal length.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: xor operands must share length, got %d and %d", ErrInvalidParameter, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
