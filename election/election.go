// Package election computes the joint election public key from a set of
// guardian public keys and implements the ElGamal-style ciphertext
// primitive ballots are encrypted under (spec §4.6).
package election

import (
	"fmt"
	"math/big"

	"github.com/lavode/secret-sharing/gf"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
)

// JointElectionPublicKey is the product of every guardian's K_{i,0} mod p,
// the ElGamal encryption key ballots are encrypted under.
type JointElectionPublicKey struct {
	K *big.Int
}

// Compute validates every supplied guardian public key, checks coverage,
// and multiplies together their K_{i,0} values mod p. The result does
// not depend on the order of guardianPublicKeys (spec §8 invariant 3).
func Compute(params *group.ElectionParameters, guardianPublicKeys []*guardian.PublicKey) (*JointElectionPublicKey, error) {
	if err := guardian.ValidateCoverage(params, guardianPublicKeys); err != nil {
		return nil, err
	}

	field, err := gf.NewGF(params.Fixed.P)
	if err != nil {
		return nil, err
	}

	product := big.NewInt(1)
	for _, pk := range guardianPublicKeys {
		product = field.Mul(product, pk.PublicKeyKI0())
	}

	return &JointElectionPublicKey{K: product}, nil
}

// Validate reports whether K is a valid mod-p residue. Deserialization
// must call this before the key is used for anything.
func (jepk *JointElectionPublicKey) Validate(params *group.ElectionParameters) error {
	if !params.Fixed.IsValidModP(jepk.K) {
		return fmt.Errorf("%w: joint election public key is not valid mod p", ErrValidation)
	}
	return nil
}

// Ciphertext is an ElGamal ciphertext {alpha, beta}. The identity element
// is {1, 1}.
type Ciphertext struct {
	Alpha *big.Int
	Beta  *big.Int
}

// One returns the identity ciphertext {alpha: 1, beta: 1}.
func One() *Ciphertext {
	return &Ciphertext{Alpha: big.NewInt(1), Beta: big.NewInt(1)}
}

// EncryptWith encrypts vote under the joint public key with the given
// nonce: alpha = g^nonce mod p, beta = K^(nonce+vote) mod p.
func (jepk *JointElectionPublicKey) EncryptWith(fixed *group.FixedParameters, nonce *big.Int, vote *big.Int) (*Ciphertext, error) {
	field, err := gf.NewGF(fixed.P)
	if err != nil {
		return nil, err
	}

	alpha := field.Exp(fixed.G, nonce)
	exponent := new(big.Int).Add(nonce, vote)
	beta := field.Exp(jepk.K, exponent)

	return &Ciphertext{Alpha: alpha, Beta: beta}, nil
}

// Scale returns {alpha^factor, beta^factor} mod p. Scaling the identity
// ciphertext by any factor yields the identity (spec §8 invariant 5).
func (c *Ciphertext) Scale(fixed *group.FixedParameters, factor *big.Int) (*Ciphertext, error) {
	field, err := gf.NewGF(fixed.P)
	if err != nil {
		return nil, err
	}

	alpha := field.Exp(c.Alpha, factor)
	beta := field.Exp(c.Beta, factor)

	return &Ciphertext{Alpha: alpha, Beta: beta}, nil
}
