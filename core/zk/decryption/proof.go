package zkdec

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

type (
	ZqVector         = group.Vector[*group.ZqElement]
	CiphertextVector = group.Vector[*elgamal.Ciphertext]
	MessageVector    = group.Vector[*elgamal.Message]
	ProofVector      = group.Vector[*DecryptionProof]
)

// DecryptionProof is a Schnorr-style proof (e, z₀..zₗ₋₁) that a ciphertext
// was decrypted with the secret key matching a public key.
type DecryptionProof struct {
	e *group.ZqElement
	z *ZqVector
}

func NewDecryptionProof(e *group.ZqElement, z *ZqVector) (*DecryptionProof, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: missing e", group.ErrInvalidGroupMember)
	}
	if z.IsEmpty() {
		return nil, fmt.Errorf("%w: z must not be empty", group.ErrInconsistentVectorLength)
	}
	if !e.SameGroupAs(z.At(0)) {
		return nil, group.ErrGroupMismatch
	}
	return &DecryptionProof{e: e, z: z}, nil
}

func (p *DecryptionProof) E() *group.ZqElement { return p.e }

func (p *DecryptionProof) Z() *ZqVector { return p.z }

// Size is the number of key components the proof covers.
func (p *DecryptionProof) Size() int { return p.z.Len() }

func (p *DecryptionProof) Group() *group.ZqGroup { return p.e.Group() }

func (p *DecryptionProof) SameGroupAs(other *DecryptionProof) bool {
	return p.e.SameGroupAs(other.e)
}

func (p *DecryptionProof) Equal(other *DecryptionProof) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.e.Equal(other.e) && p.z.Equal(other.z)
}
