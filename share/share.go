// Package share implements the guardian-to-guardian encrypted share
// distribution protocol (spec §4.4): a dealer secret-shares its secret
// polynomial evaluation to a recipient using hybrid encryption keyed by a
// Diffie-Hellman value, with an HMAC for integrity, and reconstruction
// of the recipient's own secret key share from everything it receives
// (spec §4.5).
package share

import (
	"fmt"
	"math/big"

	"github.com/lavode/secret-sharing/gf"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
	"github.com/egcore/eg-core/hash"
)

// EncryptedShare is the dealer-to-recipient encrypted evaluation of the
// dealer's secret polynomial at the recipient's index. Immutable once
// constructed.
type EncryptedShare struct {
	Dealer    guardian.Index
	Recipient guardian.Index
	C0        *big.Int   // alpha = g^xi mod p
	C1        *big.Int   // encrypted 32-byte scalar, as an integer
	C2        hash.HValue // MAC over (alpha, c1)
}

// New constructs a GuardianEncryptedShare of dealerSK's secret polynomial,
// evaluated at recipientPK's index, encrypted for recipientPK (spec §4.4).
func New(csprng *group.Csprng, params *group.ElectionParameters, hP hash.HValue, dealerSK *guardian.SecretKey, recipientPK *guardian.PublicKey) (*EncryptedShare, error) {
	fixed := &params.Fixed
	i := uint32(dealerSK.I)
	l := uint32(recipientPK.I)
	lp := fixed.LP()
	lq := fixed.LQ()

	capitalK := recipientPK.PublicKeyKI0()

	field, err := gf.NewGF(fixed.P)
	if err != nil {
		return nil, err
	}

	xi := csprng.NextBiguintLt(fixed.Q)
	alpha := field.Exp(fixed.G, xi)
	beta := field.Exp(capitalK, xi)

	kIL, err := shareSecretKey(hP, i, l, capitalK, alpha, beta, lp)
	if err != nil {
		return nil, err
	}
	k0, k1 := macAndEncryptionKey(i, l, kIL)

	// Horner evaluation of the dealer's polynomial at x = l, over Z_q.
	scalarField, err := gf.NewGF(fixed.Q)
	if err != nil {
		return nil, err
	}
	x := new(big.Int).SetUint64(uint64(l))
	pL := big.NewInt(0)
	for j := len(dealerSK.Coefficients) - 1; j >= 0; j-- {
		pL = scalarField.Mul(pL, x)
		pL = group.AddMod(pL, dealerSK.Coefficients[j], fixed.Q)
	}

	pLBytes, err := group.BigUintToBEBytesLeftPad(pL, lq)
	if err != nil {
		return nil, err
	}
	c1Bytes, err := group.XORBytes(pLBytes, k1[:])
	if err != nil {
		return nil, err
	}

	alphaBytes, err := group.BigUintToBEBytesLeftPad(alpha, lp)
	if err != nil {
		return nil, err
	}
	c2 := shareMAC(k0, alphaBytes, c1Bytes)

	return &EncryptedShare{
		Dealer:    dealerSK.I,
		Recipient: recipientPK.I,
		C0:        alpha,
		C1:        new(big.Int).SetBytes(c1Bytes),
		C2:        c2,
	}, nil
}

// DecryptAndValidate decrypts the share for its recipient, verifying the
// MAC before returning the plaintext share value, and reports MacMismatch
// or IndexMismatch as appropriate (spec §4.4).
func (s *EncryptedShare) DecryptAndValidate(params *group.ElectionParameters, hP hash.HValue, dealerPK *guardian.PublicKey, recipientSK *guardian.SecretKey) (*big.Int, error) {
	if s.Dealer != dealerPK.I {
		return nil, fmt.Errorf("%w: share dealer %d != supplied dealer public key %d", ErrIndexMismatch, s.Dealer, dealerPK.I)
	}
	if s.Recipient != recipientSK.I {
		return nil, fmt.Errorf("%w: share recipient %d != supplied recipient secret key %d", ErrIndexMismatch, s.Recipient, recipientSK.I)
	}

	fixed := &params.Fixed
	i := uint32(s.Dealer)
	l := uint32(s.Recipient)
	lp := fixed.LP()
	lq := fixed.LQ()

	field, err := gf.NewGF(fixed.P)
	if err != nil {
		return nil, err
	}

	alpha := s.C0
	beta := field.Exp(alpha, recipientSK.SecretS())
	// The recipient's own commitment[0] is K_l, exactly the value the
	// dealer used to derive the shared secret.
	capitalK := recipientSK.Commitments[0]

	kIL, err := shareSecretKey(hP, i, l, capitalK, alpha, beta, lp)
	if err != nil {
		return nil, err
	}
	k0, k1 := macAndEncryptionKey(i, l, kIL)

	alphaBytes, err := group.BigUintToBEBytesLeftPad(alpha, lp)
	if err != nil {
		return nil, err
	}
	c1Bytes, err := group.BigUintToBEBytesLeftPad(s.C1, lq)
	if err != nil {
		return nil, err
	}

	mac := shareMAC(k0, alphaBytes, c1Bytes)

	// The MAC must be checked before the plaintext is used for
	// anything (spec §4.4).
	if !hash.Equal(mac, s.C2) {
		return nil, fmt.Errorf("%w", ErrMacMismatch)
	}

	pLBytes, err := group.XORBytes(c1Bytes, k1[:])
	if err != nil {
		return nil, err
	}

	pL := new(big.Int).SetBytes(pLBytes)
	// Defensive reduction (spec §9 Open Question): safe no-op when the
	// dealer encrypted a correctly reduced value.
	pL.Mod(pL, fixed.Q)

	return pL, nil
}
