package group

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomBits returns bits random bits suitable for cryptographic usage,
// drawn from r. If bits is not a multiple of 8, the leading bits of the
// first byte are forced to zero. The two most significant (requested)
// bits are forced to one, which costs two bits of randomness but keeps
// products of such numbers close to the expected bit length.
//
// Draws from a Csprng rather than crypto/rand.Reader directly, so that
// parameter generation can be made deterministic for tests.
func randomBits(r *Csprng, bits int) ([]byte, error) {
	if bits <= 2 {
		return nil, fmt.Errorf("%w: bits must be > 2", ErrInvalidParameter)
	}

	nbytes := (bits + 7) / 8
	out := make([]byte, nbytes)
	if _, err := r.Read(out); err != nil {
		return out, err
	}

	zeroLeadingBits := 8*nbytes - bits
	out[0] &= 0xFF >> zeroLeadingBits
	out[0] |= 0xC0 >> zeroLeadingBits
	if zeroLeadingBits == 7 {
		// The second requested bit is the top bit of the next byte.
		out[1] |= 0x80
	}

	return out, nil
}

// GenerateFixedParameters deterministically generates an order-Q subgroup
// of (Z/PZ)*, with P of length pBits and Q of length qBits, driven
// entirely by csprng. In production the fixed parameters are an external
// constant handed in by a collaborator (spec §6); this generator exists
// for tests and the demo program, where a reproducible-but-real group is
// preferable to a hand-picked toy modulus.
func GenerateFixedParameters(csprng *Csprng, pBits, qBits int) (*FixedParameters, error) {
	if qBits >= pBits {
		return nil, fmt.Errorf("%w: qBits must be < pBits", ErrInvalidParameter)
	}

	q, err := rand.Prime(csprng, qBits)
	if err != nil {
		return nil, err
	}

	// Find a prime p = q*r + 1 for some integer r.
	p := big.NewInt(0)
	for !p.ProbablyPrime(32) {
		rBits := pBits - qBits
		rBytes, err := randomBits(csprng, rBits)
		if err != nil {
			return nil, err
		}

		p.SetBytes(rBytes)
		p.Mul(p, q)
		p.Add(p, big.NewInt(1))
	}

	// Find a generator h^((p-1)/q) mod p that isn't the identity.
	g := big.NewInt(1)
	for g.Cmp(big.NewInt(1)) == 0 {
		max := new(big.Int).Sub(p, big.NewInt(2))
		h, err := rand.Int(csprng, max) // [0, p-2)
		if err != nil {
			return nil, err
		}
		h.Add(h, big.NewInt(2)) // [2, p)

		exp := new(big.Int).Sub(p, big.NewInt(1))
		exp.Div(exp, q)

		g.Exp(h, exp, p)
	}

	return &FixedParameters{P: p, Q: q, G: g}, nil
}

// ExampleElectionParameters returns a deterministic, internally
// consistent set of election parameters suitable for tests and
// demonstration: a 1024-bit/256-bit Schnorr group generated from a fixed
// seed, with 5 guardians and a threshold of 3.
//
// The fixed parameters are this generated group, not the standard
// ElectionGuard parameters; the varying parameters are n=5, k=3 with the
// reference election's date and info text.
func ExampleElectionParameters() (*ElectionParameters, error) {
	csprng := NewCsprng([]byte("eg-example-parameters-v1"))
	fixed, err := GenerateFixedParameters(csprng, 1024, 256)
	if err != nil {
		return nil, err
	}

	return &ElectionParameters{
		Fixed: *fixed,
		Varying: VaryingParameters{
			N:    5,
			K:    3,
			Date: "2023-05-02",
			Info: "The United Realms of Imaginaria, General Election",
		},
	}, nil
}
