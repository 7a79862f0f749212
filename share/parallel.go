package share

import (
	"golang.org/x/sync/errgroup"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
	"github.com/egcore/eg-core/hash"
)

// DealAllParallel computes the encrypted shares dealerSK owes every
// recipient in recipientPKs concurrently, one sub-seeded Csprng per
// recipient so the result is identical regardless of goroutine
// scheduling (spec §5's explicit allowance for parallelizing the n^2
// pairwise shares). The returned slice is ordered the same as
// recipientPKs.
func DealAllParallel(csprng *group.Csprng, params *group.ElectionParameters, hP hash.HValue, dealerSK *guardian.SecretKey, recipientPKs []*guardian.PublicKey) ([]*EncryptedShare, error) {
	shares := make([]*EncryptedShare, len(recipientPKs))

	var g errgroup.Group
	for idx, pk := range recipientPKs {
		idx, pk := idx, pk
		label := append([]byte("recipient-"), byte(pk.I), byte(pk.I>>8), byte(pk.I>>16), byte(pk.I>>24))
		childCsprng := csprng.Subseed(label)

		g.Go(func() error {
			s, err := New(childCsprng, params, hP, dealerSK, pk)
			if err != nil {
				return err
			}
			shares[idx] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return shares, nil
}
