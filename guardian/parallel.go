package guardian

import (
	"fmt"
	"math/big"

	"github.com/lavode/secret-sharing/gf"
	"golang.org/x/sync/errgroup"

	"github.com/egcore/eg-core/group"
)

// GenerateParallel behaves exactly like Generate, but computes the k
// coefficient commitments concurrently. Correctness is unaffected:
// commitment j only depends on coefficient j, all of which are drawn
// up front from a single CSPRNG call sequence before any goroutine
// starts (spec §5 permits parallelizing "independent modular
// exponentiations" such as these).
func GenerateParallel(csprng *group.Csprng, params *group.ElectionParameters, i Index, fixedCoefficients []*big.Int) (*SecretKey, error) {
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
	var g errgroup.Group
	for j := range coeffs {
		j := j
		g.Go(func() error {
			commitments[j] = field.Exp(params.Fixed.G, coeffs[j])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SecretKey{I: i, Coefficients: coeffs, Commitments: commitments}, nil
}
