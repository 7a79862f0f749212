// Package guardian models a single election guardian's secret polynomial,
// its public coefficient commitments, and the validation/coverage
// predicates every downstream operation (share dealing, joint key
// computation) relies on.
package guardian

import (
	"fmt"
	"math/big"

	"github.com/lavode/secret-sharing/gf"

	"github.com/egcore/eg-core/group"
)

// Index is a 1-based guardian index in [1, n]. Zero is forbidden.
type Index uint32

// Validate checks that i lies in [1, n].
func (i Index) Validate(n uint32) error {
	if i == 0 || uint32(i) > n {
		return fmt.Errorf("%w: guardian index %d out of range [1, %d]", ErrInvalidParameter, i, n)
	}
	return nil
}

// SecretKey is a guardian's secret polynomial of degree k-1 over the
// scalar field, together with the public commitments to its
// coefficients. Coefficients[0] is the guardian's secret s. A SecretKey
// is generated once per guardian and never leaves the owning process.
type SecretKey struct {
	I            Index
	Coefficients []*big.Int // k scalars in [0, q)
	Commitments  []*big.Int // k group elements, Commitments[j] = g^Coefficients[j] mod p
}

// PublicKey is the public projection of a SecretKey: the guardian index
// and its coefficient commitments, freely copyable and exchanged between
// guardians.
type PublicKey struct {
	I           Index
	Commitments []*big.Int
}

// Generate draws k scalars uniformly from [0, q) via csprng (or uses the
// caller-supplied fixedCoefficients, for reproducible tests) and computes
// the corresponding coefficient commitments g^a_j mod p.
func Generate(csprng *group.Csprng, params *group.ElectionParameters, i Index, fixedCoefficients []*big.Int) (*SecretKey, error) {
	if err := i.Validate(params.Varying.N); err != nil {
		return nil, err
	}

	k := int(params.Varying.K)
	coeffs := make([]*big.Int, k)

	if fixedCoefficients != nil {
		if len(fixedCoefficients) != k {
			return nil, fmt.Errorf("%w: expected %d fixed coefficients, got %d", ErrInvalidParameter, k, len(fixedCoefficients))
		}
		for j, c := range fixedCoefficients {
			if c.Sign() < 0 || c.Cmp(params.Fixed.Q) >= 0 {
				return nil, fmt.Errorf("%w: coefficient %d out of [0, q)", ErrInvalidParameter, j)
			}
			coeffs[j] = new(big.Int).Set(c)
		}
	} else {
		for j := 0; j < k; j++ {
			coeffs[j] = csprng.NextBiguintLt(params.Fixed.Q)
		}
	}

	field, err := gf.NewGF(params.Fixed.P)
	if err != nil {
		return nil, err
	}

	commitments := make([]*big.Int, k)
	for j, a := range coeffs {
		commitments[j] = field.Exp(params.Fixed.G, a)
	}

	return &SecretKey{I: i, Coefficients: coeffs, Commitments: commitments}, nil
}

// MakePublicKey projects a SecretKey to its public {i, commitments} form.
func (sk *SecretKey) MakePublicKey() *PublicKey {
	commitments := make([]*big.Int, len(sk.Commitments))
	copy(commitments, sk.Commitments)
	return &PublicKey{I: sk.I, Commitments: commitments}
}

// SecretS returns the guardian's secret s = Coefficients[0].
func (sk *SecretKey) SecretS() *big.Int {
	return sk.Coefficients[0]
}

// PublicKeyKI0 returns K_{i,0} = Commitments[0], the value used as this
// guardian's standalone ElGamal public key.
func (pk *PublicKey) PublicKeyKI0() *big.Int {
	return pk.Commitments[0]
}

// Validate checks that the secret key's index is in range and that every
// coefficient commitment is a valid element of the order-q subgroup of
// (Z/pZ)*.
func (sk *SecretKey) Validate(params *group.ElectionParameters) error {
	if err := sk.I.Validate(params.Varying.N); err != nil {
		return err
	}
	for j, c := range sk.Commitments {
		if !params.Fixed.IsValidOrderQSubgroupElement(c) {
			return fmt.Errorf("%w: commitment %d is not a valid order-q subgroup element", ErrInvalidParameter, j)
		}
	}
	return nil
}

// Validate checks that the public key's index is in range and that every
// coefficient commitment is a valid element of the order-q subgroup of
// (Z/pZ)*.
func (pk *PublicKey) Validate(params *group.ElectionParameters) error {
	if err := pk.I.Validate(params.Varying.N); err != nil {
		return err
	}
	if len(pk.Commitments) != int(params.Varying.K) {
		return fmt.Errorf("%w: expected %d commitments, got %d", ErrInvalidParameter, params.Varying.K, len(pk.Commitments))
	}
	for j, c := range pk.Commitments {
		if !params.Fixed.IsValidOrderQSubgroupElement(c) {
			return fmt.Errorf("%w: commitment %d is not a valid order-q subgroup element", ErrInvalidParameter, j)
		}
	}
	return nil
}

// ValidateCoverage checks that pks represents each guardian in
// {1, ..., n} exactly once, validating every key in the process. It
// reports duplicate and missing indices separately, as spec §4.5/§4.6
// require.
func ValidateCoverage(params *group.ElectionParameters, pks []*PublicKey) error {
	for _, pk := range pks {
		if err := pk.Validate(params); err != nil {
			return err
		}
	}

	n := int(params.Varying.N)
	seen := make([]bool, n)
	var duplicates []Index

	for _, pk := range pks {
		ix := int(pk.I) - 1
		if ix < 0 || ix >= n {
			// Already validated above; unreachable in practice.
			continue
		}
		if seen[ix] {
			duplicates = append(duplicates, pk.I)
			continue
		}
		seen[ix] = true
	}

	var missing []Index
	for ix, ok := range seen {
		if !ok {
			missing = append(missing, Index(ix+1))
		}
	}

	if len(duplicates) > 0 || len(missing) > 0 {
		return fmt.Errorf("%w: duplicate guardians %v, missing guardians %v", ErrCoverage, duplicates, missing)
	}

	return nil
}
