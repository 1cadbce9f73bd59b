// Package verifier defines the proof verification capability the pipeline
// relies on. Cryptographic verification of Bayer-Groth arguments and
// decryption proofs is provided by an external implementation.
package verifier

import (
	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/pkg/errors"
)

var ErrProofRejected = errors.New("verifier: proof rejected")

type CiphertextVector = group.Vector[*elgamal.Ciphertext]

type ProofVerifier interface {
	// VerifyShuffle checks that shuffle re-encrypts and permutes in under pk.
	VerifyShuffle(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, shuffle *zkshuffle.VerifiableShuffle) error

	// VerifyDecryptions checks the partial decryptions of in.
	VerifyDecryptions(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, decryptions *zkdec.VerifiableDecryptions) error

	// VerifyPlaintextDecryption checks the final decryption of in.
	VerifyPlaintextDecryption(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, decryption *zkdec.VerifiablePlaintextDecryption) error
}

// Structural accepts every proof whose shape matches its inputs: group,
// vector lengths and recipient counts. It performs no cryptographic checks.
type Structural struct{}

var _ ProofVerifier = Structural{}

func (Structural) VerifyShuffle(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, shuffle *zkshuffle.VerifiableShuffle) error {
	if err := checkInput(gq, pk, in); err != nil {
		return err
	}
	out := shuffle.ShuffledCiphertexts()
	if !shuffle.Group().Equal(gq) {
		return errors.WithMessage(ErrProofRejected, "shuffle is not in the encryption group")
	}
	if out.Len() != in.Len() || out.ElementSize() != in.ElementSize() {
		return errors.WithMessagef(ErrProofRejected, "shuffled %dx%d ciphertexts from %dx%d",
			out.Len(), out.ElementSize(), in.Len(), in.ElementSize())
	}
	return nil
}

func (Structural) VerifyDecryptions(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, decryptions *zkdec.VerifiableDecryptions) error {
	if err := checkInput(gq, pk, in); err != nil {
		return err
	}
	out := decryptions.Ciphertexts()
	if !decryptions.Group().Equal(gq) {
		return errors.WithMessage(ErrProofRejected, "decryptions are not in the encryption group")
	}
	if out.Len() != in.Len() || out.ElementSize() != in.ElementSize() {
		return errors.WithMessagef(ErrProofRejected, "decrypted %dx%d ciphertexts from %dx%d",
			out.Len(), out.ElementSize(), in.Len(), in.ElementSize())
	}
	return nil
}

func (Structural) VerifyPlaintextDecryption(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector, decryption *zkdec.VerifiablePlaintextDecryption) error {
	if err := checkInput(gq, pk, in); err != nil {
		return err
	}
	out := decryption.DecryptedVotes()
	if !decryption.Group().Equal(gq) {
		return errors.WithMessage(ErrProofRejected, "plaintexts are not in the encryption group")
	}
	if out.Len() != in.Len() || out.ElementSize() != in.ElementSize() {
		return errors.WithMessagef(ErrProofRejected, "decrypted %dx%d plaintexts from %dx%d",
			out.Len(), out.ElementSize(), in.Len(), in.ElementSize())
	}
	return nil
}

func checkInput(gq *group.GqGroup, pk *elgamal.PublicKey, in *CiphertextVector) error {
	if in.IsEmpty() {
		return errors.WithMessage(ErrProofRejected, "no input ciphertexts")
	}
	if !in.At(0).Group().Equal(gq) || !pk.Group().Equal(gq) {
		return errors.WithMessage(ErrProofRejected, "inputs are not in the encryption group")
	}
	if pk.Size() < in.ElementSize() {
		return errors.WithMessagef(ErrProofRejected, "key of size %d for ciphertexts of size %d", pk.Size(), in.ElementSize())
	}
	return nil
}
