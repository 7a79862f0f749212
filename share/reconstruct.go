package share

import (
	"fmt"
	"math/big"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
	"github.com/egcore/eg-core/hash"
)

// SecretKeyShare is a recipient's share of the joint secret key, the sum
// of every dealer's decrypted contribution (spec §4.5).
type SecretKeyShare struct {
	I  guardian.Index
	PI *big.Int
}

// ComputeSecretKeyShare validates every supplied guardian public key,
// checks coverage, decrypts and validates each incoming encrypted share
// against its paired public key, and sums the results mod q.
//
// guardianPublicKeys[j] and encryptedShares[j] must come from the same
// dealer; a single decryption failure fails the whole computation and
// names the offending dealer (spec §4.5 step 4, §9).
func ComputeSecretKeyShare(params *group.ElectionParameters, hP hash.HValue, guardianPublicKeys []*guardian.PublicKey, encryptedShares []*EncryptedShare, recipientSK *guardian.SecretKey) (*SecretKeyShare, error) {
	if err := guardian.ValidateCoverage(params, guardianPublicKeys); err != nil {
		return nil, err
	}

	if len(guardianPublicKeys) != len(encryptedShares) {
		return nil, fmt.Errorf("%w: %d guardian public keys but %d encrypted shares", ErrIndexMismatch, len(guardianPublicKeys), len(encryptedShares))
	}

	sum := big.NewInt(0)
	for j, pk := range guardianPublicKeys {
		s := encryptedShares[j]
		if s.Dealer != pk.I {
			return nil, fmt.Errorf("%w: encrypted share %d has dealer %d, expected %d", ErrIndexMismatch, j, s.Dealer, pk.I)
		}

		pL, err := s.DecryptAndValidate(params, hP, pk, recipientSK)
		if err != nil {
			return nil, fmt.Errorf("could not decrypt and validate share from guardian %d: %w", pk.I, err)
		}

		sum = group.AddMod(sum, pL, params.Fixed.Q)
	}

	return &SecretKeyShare{I: recipientSK.I, PI: sum}, nil
}
