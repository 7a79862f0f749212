package share

import (
	"math/big"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/hash"
)

// These byte-length constants are part of the on-wire contract (spec
// §9) and must be emitted exactly as given, matching ElectionGuard v2.
const (
	labelShareEncKeys   = "share_enc_keys" // 14 bytes
	contextShareEncrypt = "share_encrypt"  // 13 bytes

	domainSepShareSecret byte = 0x11
	counterMAC           byte = 0x01
	counterEncryption    byte = 0x02
)

func be32(x uint32) []byte {
	return []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

// shareSecretKey computes the dealer/recipient share-encryption secret
// k_{i,l} (spec §4.4 step 4 / Equation 15):
//
//	v = 0x11 || be(i,4) || be(l,4) || be(K_l, L_p) || be(alpha, L_p) || be(beta, L_p)
//	k_{i,l} = H(h_p, v)
func shareSecretKey(hP hash.HValue, i, l uint32, capitalKL, alpha, beta *big.Int, lp int) (hash.HValue, error) {
	capitalKLBytes, err := group.BigUintToBEBytesLeftPad(capitalKL, lp)
	if err != nil {
		return hash.HValue{}, err
	}
	alphaBytes, err := group.BigUintToBEBytesLeftPad(alpha, lp)
	if err != nil {
		return hash.HValue{}, err
	}
	betaBytes, err := group.BigUintToBEBytesLeftPad(beta, lp)
	if err != nil {
		return hash.HValue{}, err
	}

	v := make([]byte, 0, 1+4+4+3*lp)
	v = append(v, domainSepShareSecret)
	v = append(v, be32(i)...)
	v = append(v, be32(l)...)
	v = append(v, capitalKLBytes...)
	v = append(v, alphaBytes...)
	v = append(v, betaBytes...)

	return hash.H(hP, v), nil
}

// macAndEncryptionKey computes the MAC key k0 (Equation 16) and the
// encryption key k1 (Equation 17) from the share secret k_{i,l}, using a
// NIST-SP-800-108-style single-block counter-mode KDF keyed by k_{i,l}.
func macAndEncryptionKey(i, l uint32, kIL hash.HValue) (k0, k1 hash.HValue) {
	label := []byte(labelShareEncKeys)

	context := make([]byte, 0, len(contextShareEncrypt)+8)
	context = append(context, []byte(contextShareEncrypt)...)
	context = append(context, be32(i)...)
	context = append(context, be32(l)...)

	build := func(counter byte) []byte {
		v := make([]byte, 0, 1+len(label)+1+len(context)+2)
		v = append(v, counter)
		v = append(v, label...)
		v = append(v, 0x00)
		v = append(v, context...)
		v = append(v, 0x02, 0x00)
		return v
	}

	k0 = hash.H(kIL, build(counterMAC))
	k1 = hash.H(kIL, build(counterEncryption))
	return k0, k1
}

// shareMAC computes the MAC over (alpha, c1) as in Equation (19).
func shareMAC(k0 hash.HValue, alphaBytes, c1 []byte) hash.HValue {
	v := make([]byte, 0, len(alphaBytes)+len(c1))
	v = append(v, alphaBytes...)
	v = append(v, c1...)
	return hash.H(k0, v)
}
