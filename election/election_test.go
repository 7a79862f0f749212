package election

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
)

func testParams(t *testing.T) *group.ElectionParameters {
	t.Helper()
	params, err := group.ExampleElectionParameters()
	require.NoError(t, err)
	return params
}

func testGuardianPublicKeys(t *testing.T, params *group.ElectionParameters, seed string) []*guardian.PublicKey {
	t.Helper()
	csprng := group.NewCsprng([]byte(seed))
	var pks []*guardian.PublicKey
	for i := uint32(1); i <= params.Varying.N; i++ {
		sk, err := guardian.Generate(csprng, params, guardian.Index(i), nil)
		require.NoError(t, err)
		pks = append(pks, sk.MakePublicKey())
	}
	return pks
}

// Invariant 3 (spec §8): Compute is invariant to guardian key order.
func TestComputeIsOrderInvariant(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	forward, err := Compute(params, pks)
	require.NoError(t, err)

	reversed := make([]*guardian.PublicKey, len(pks))
	for i, pk := range pks {
		reversed[len(pks)-1-i] = pk
	}
	backward, err := Compute(params, reversed)
	require.NoError(t, err)

	assert.Equal(t, 0, forward.K.Cmp(backward.K))
}

// S4: omitting a guardian yields a coverage error naming its index.
func TestComputeCoverageError(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	missingThree := append(append([]*guardian.PublicKey{}, pks[:2]...), pks[3:]...)

	_, err := Compute(params, missingThree)
	require.ErrorIs(t, err, guardian.ErrCoverage)
	assert.Contains(t, err.Error(), "3")
}

// S5: encrypting v=0 with nonce 0 yields the identity ciphertext, and
// scaling the identity by any factor returns the identity.
func TestEncryptZeroWithZeroNonceIsIdentity(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)
	require.NoError(t, jepk.Validate(params))

	ct, err := jepk.EncryptWith(&params.Fixed, big.NewInt(0), big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, 0, ct.Alpha.Cmp(big.NewInt(1)))
	assert.Equal(t, 0, ct.Beta.Cmp(big.NewInt(1)))

	scaled, err := ct.Scale(&params.Fixed, big.NewInt(12345))
	require.NoError(t, err)
	assert.Equal(t, 0, scaled.Alpha.Cmp(big.NewInt(1)))
	assert.Equal(t, 0, scaled.Beta.Cmp(big.NewInt(1)))
}

// Invariant 5 (spec §8): scale(c, 1) == c; scale(one(), f) == one().
func TestScaleIdentityInvariants(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)

	ct, err := jepk.EncryptWith(&params.Fixed, big.NewInt(7), big.NewInt(1))
	require.NoError(t, err)

	scaledByOne, err := ct.Scale(&params.Fixed, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, 0, ct.Alpha.Cmp(scaledByOne.Alpha))
	assert.Equal(t, 0, ct.Beta.Cmp(scaledByOne.Beta))

	identity := One()
	scaledIdentity, err := identity.Scale(&params.Fixed, big.NewInt(99))
	require.NoError(t, err)
	assert.Equal(t, 0, scaledIdentity.Alpha.Cmp(big.NewInt(1)))
	assert.Equal(t, 0, scaledIdentity.Beta.Cmp(big.NewInt(1)))
}

func TestValidateRejectsOutOfRangeKey(t *testing.T) {
	params := testParams(t)
	jepk := &JointElectionPublicKey{K: new(big.Int).Add(params.Fixed.P, big.NewInt(1))}
	assert.ErrorIs(t, jepk.Validate(params), ErrValidation)
}

func TestJointElectionPublicKeyJSONRoundTrip(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)

	data, err := json.Marshal(jepk)
	require.NoError(t, err)

	var roundTripped JointElectionPublicKey
	require.NoError(t, json.Unmarshal(data, &roundTripped))
	assert.Equal(t, 0, jepk.K.Cmp(roundTripped.K))
}

func TestCiphertextJSONRoundTrip(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)

	ct, err := jepk.EncryptWith(&params.Fixed, big.NewInt(3), big.NewInt(1))
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)

	var roundTripped Ciphertext
	require.NoError(t, json.Unmarshal(data, &roundTripped))
	assert.Equal(t, 0, ct.Alpha.Cmp(roundTripped.Alpha))
	assert.Equal(t, 0, ct.Beta.Cmp(roundTripped.Beta))
}

func TestDecodeJointElectionPublicKeyRejectsOversizedKey(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)

	data, err := json.Marshal(jepk)
	require.NoError(t, err)

	lp := params.Fixed.LP()
	decoded, err := DecodeJointElectionPublicKey(data, lp)
	require.NoError(t, err)
	assert.Equal(t, 0, jepk.K.Cmp(decoded.K))

	_, err = DecodeJointElectionPublicKey(data, 1)
	require.ErrorIs(t, err, ErrSerialization)
}

func TestDecodeCiphertextRejectsOversizedFields(t *testing.T) {
	params := testParams(t)
	pks := testGuardianPublicKeys(t, params, "test_proof_generation")

	jepk, err := Compute(params, pks)
	require.NoError(t, err)

	ct, err := jepk.EncryptWith(&params.Fixed, big.NewInt(3), big.NewInt(1))
	require.NoError(t, err)

	data, err := json.Marshal(ct)
	require.NoError(t, err)

	lp := params.Fixed.LP()
	decoded, err := DecodeCiphertext(data, lp)
	require.NoError(t, err)
	assert.Equal(t, 0, ct.Alpha.Cmp(decoded.Alpha))

	_, err = DecodeCiphertext(data, 1)
	require.ErrorIs(t, err, ErrSerialization)
}
