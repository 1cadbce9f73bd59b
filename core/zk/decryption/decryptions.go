package zkdec

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// VerifiableDecryptions pairs each partially decrypted ciphertext with the
// proof of its decryption.
type VerifiableDecryptions struct {
	ciphertexts *CiphertextVector
	proofs      *ProofVector
}

func NewVerifiableDecryptions(ciphertexts *CiphertextVector, proofs *ProofVector) (*VerifiableDecryptions, error) {
	if ciphertexts.IsEmpty() {
		return nil, fmt.Errorf("%w: no ciphertexts", group.ErrInconsistentVectorLength)
	}
	if err := checkPairing(ciphertexts.Len(), ciphertexts.ElementSize(), proofs); err != nil {
		return nil, err
	}
	if !ciphertexts.At(0).Group().HasSameOrderAs(proofs.At(0).Group()) {
		return nil, fmt.Errorf("%w: ciphertexts and proofs have different orders", group.ErrGroupMismatch)
	}
	return &VerifiableDecryptions{ciphertexts: ciphertexts, proofs: proofs}, nil
}

func (v *VerifiableDecryptions) Ciphertexts() *CiphertextVector { return v.ciphertexts }

func (v *VerifiableDecryptions) DecryptionProofs() *ProofVector { return v.proofs }

func (v *VerifiableDecryptions) Len() int { return v.ciphertexts.Len() }

func (v *VerifiableDecryptions) Group() *group.GqGroup { return v.ciphertexts.At(0).Group() }

func (v *VerifiableDecryptions) Equal(other *VerifiableDecryptions) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.ciphertexts.Equal(other.ciphertexts) && v.proofs.Equal(other.proofs)
}

// VerifiablePlaintextDecryption is the last node's output: the decrypted
// votes and a proof per vote.
type VerifiablePlaintextDecryption struct {
	messages *MessageVector
	proofs   *ProofVector
}

func NewVerifiablePlaintextDecryption(messages *MessageVector, proofs *ProofVector) (*VerifiablePlaintextDecryption, error) {
	if messages.IsEmpty() {
		return nil, fmt.Errorf("%w: no decrypted votes", group.ErrInconsistentVectorLength)
	}
	if err := checkPairing(messages.Len(), messages.ElementSize(), proofs); err != nil {
		return nil, err
	}
	if !messages.At(0).Group().HasSameOrderAs(proofs.At(0).Group()) {
		return nil, fmt.Errorf("%w: votes and proofs have different orders", group.ErrGroupMismatch)
	}
	return &VerifiablePlaintextDecryption{messages: messages, proofs: proofs}, nil
}

func (v *VerifiablePlaintextDecryption) DecryptedVotes() *MessageVector { return v.messages }

func (v *VerifiablePlaintextDecryption) DecryptionProofs() *ProofVector { return v.proofs }

func (v *VerifiablePlaintextDecryption) Len() int { return v.messages.Len() }

func (v *VerifiablePlaintextDecryption) Group() *group.GqGroup { return v.messages.At(0).Group() }

func (v *VerifiablePlaintextDecryption) Equal(other *VerifiablePlaintextDecryption) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.messages.Equal(other.messages) && v.proofs.Equal(other.proofs)
}

func checkPairing(n, l int, proofs *ProofVector) error {
	if proofs.Len() != n {
		return fmt.Errorf("%w: %d entries but %d decryption proofs", group.ErrInconsistentVectorLength, n, proofs.Len())
	}
	if proofs.ElementSize() != l {
		return fmt.Errorf("%w: entries have size %d, proofs have size %d", group.ErrInconsistentVectorLength, l, proofs.ElementSize())
	}
	return nil
}
