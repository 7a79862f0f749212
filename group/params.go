package group

import (
	"fmt"
	"math/big"
)

// FixedParameters describes the multiplicative group of integers modulo P,
// and its order-Q subgroup generated by G. It is immutable once constructed
// and, per the ElectionGuard contract, is normally supplied by an external
// collaborator rather than generated here.
//
// Invariant: G^Q ≡ 1 (mod P); 1 < G < P.
type FixedParameters struct {
	// P is the large prime modulus of (Z/PZ)*.
	P *big.Int
	// Q is the prime divisor of P-1 giving the order of the subgroup G generates.
	Q *big.Int
	// G is a generator of the order-Q subgroup of (Z/PZ)*.
	G *big.Int
}

// LP returns the byte width needed to left-pad any valid mod-P residue,
// re-derived from P's bit length so that non-standard parameters stay
// self-consistent (see spec §9).
func (fp *FixedParameters) LP() int {
	return (fp.P.BitLen() + 7) / 8
}

// LQ returns the byte width needed to left-pad any valid mod-Q scalar.
func (fp *FixedParameters) LQ() int {
	return (fp.Q.BitLen() + 7) / 8
}

// IsValidModP reports whether 0 <= x < P.
func (fp *FixedParameters) IsValidModP(x *big.Int) bool {
	return IsValidModP(x, fp.P)
}

// IsValidModP reports whether 0 <= x < p.
func IsValidModP(x, p *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(p) < 0
}

// IsValidOrderQSubgroupElement reports whether x is a valid mod-P residue
// whose order divides Q, i.e. x^Q ≡ 1 (mod P).
func (fp *FixedParameters) IsValidOrderQSubgroupElement(x *big.Int) bool {
	if !fp.IsValidModP(x) {
		return false
	}
	check := new(big.Int).Exp(x, fp.Q, fp.P)
	return check.Cmp(big.NewInt(1)) == 0
}

// VaryingParameters describes the per-election guardian count and threshold.
type VaryingParameters struct {
	// N is the number of guardians, 1 <= N <= 2^31-1.
	N uint32
	// K is the decryption threshold, 1 <= K <= N.
	K uint32
	// Date is a free-text election date.
	Date string
	// Info is free-text election metadata.
	Info string
}

// Validate checks the internal consistency of the varying parameters.
func (vp *VaryingParameters) Validate() error {
	if vp.N == 0 {
		return fmt.Errorf("%w: guardian count n must be >= 1", ErrInvalidParameter)
	}
	if vp.K == 0 || vp.K > vp.N {
		return fmt.Errorf("%w: threshold k=%d must be in [1, n=%d]", ErrInvalidParameter, vp.K, vp.N)
	}
	return nil
}

// ElectionParameters bundles the fixed group description with the
// per-election guardian count and threshold, mirroring the combined
// struct every guardian/share/election operation is handed.
type ElectionParameters struct {
	Fixed   FixedParameters
	Varying VaryingParameters
}
