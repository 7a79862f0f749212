// Command demo narrates a full guardian key-generation ceremony end to
// end: generate secret keys, deal encrypted shares pairwise, reconstruct
// each guardian's share, compute the joint election public key, and
// encrypt a sample ballot selection.
package main

import (
	"fmt"
	"math/big"

	"github.com/egcore/eg-core/election"
	"github.com/egcore/eg-core/group"
	"github.com/egcore/eg-core/guardian"
	"github.com/egcore/eg-core/hash"
	"github.com/egcore/eg-core/share"
)

func main() {
	params, err := group.ExampleElectionParameters()
	if err != nil {
		fmt.Printf("Could not build election parameters: %v\n", err)
		return
	}
	fmt.Printf("Election parameters: n=%d, k=%d, date=%q\n", params.Varying.N, params.Varying.K, params.Varying.Date)

	fmt.Println("\n---------------\n")

	csprng := group.NewCsprng([]byte("demo-ceremony-seed"))

	var hP hash.HValue
	copy(hP[:], []byte("demo-parameter-base-hash-32byte"))

	n := int(params.Varying.N)
	secretKeys := make([]*guardian.SecretKey, n)
	publicKeys := make([]*guardian.PublicKey, n)
	for i := 0; i < n; i++ {
		sk, err := guardian.Generate(csprng, params, guardian.Index(i+1), nil)
		if err != nil {
			fmt.Printf("Guardian %d key generation failed: %v\n", i+1, err)
			return
		}
		secretKeys[i] = sk
		publicKeys[i] = sk.MakePublicKey()
		fmt.Printf("Guardian %d generated, K_{%d,0} = %d\n", i+1, i+1, publicKeys[i].PublicKeyKI0())
	}

	fmt.Println("\n---------------\n")

	// Every guardian deals an encrypted share to every guardian.
	sharesByRecipient := make([][]*share.EncryptedShare, n)
	for recipientIdx, recipientPK := range publicKeys {
		sharesByRecipient[recipientIdx] = make([]*share.EncryptedShare, n)
		for dealerIdx, dealerSK := range secretKeys {
			es, err := share.New(csprng, params, hP, dealerSK, recipientPK)
			if err != nil {
				fmt.Printf("Dealing share from guardian %d to %d failed: %v\n", dealerIdx+1, recipientIdx+1, err)
				return
			}
			sharesByRecipient[recipientIdx][dealerIdx] = es
		}
	}
	fmt.Printf("Dealt %d pairwise encrypted shares\n", n*n)

	fmt.Println("\n---------------\n")

	keyShares := make([]*share.SecretKeyShare, n)
	for recipientIdx, recipientSK := range secretKeys {
		ks, err := share.ComputeSecretKeyShare(params, hP, publicKeys, sharesByRecipient[recipientIdx], recipientSK)
		if err != nil {
			fmt.Printf("Reconstructing share for guardian %d failed: %v\n", recipientIdx+1, err)
			return
		}
		keyShares[recipientIdx] = ks
		fmt.Printf("Guardian %d's secret key share p_%d = %d\n", recipientIdx+1, recipientIdx+1, ks.PI)
	}

	fmt.Println("\n---------------\n")

	jointKey, err := election.Compute(params, publicKeys)
	if err != nil {
		fmt.Printf("Computing joint election public key failed: %v\n", err)
		return
	}
	fmt.Printf("Joint election public key K = %d\n", jointKey.K)

	fmt.Println("\n---------------\n")

	nonce := csprng.NextBiguintLt(params.Fixed.Q)
	ciphertext, err := jointKey.EncryptWith(&params.Fixed, nonce, big.NewInt(1))
	if err != nil {
		fmt.Printf("Encrypting ballot selection failed: %v\n", err)
		return
	}
	fmt.Printf("Encrypted vote=1: alpha = %d\n\tbeta = %d\n", ciphertext.Alpha, ciphertext.Beta)
}
