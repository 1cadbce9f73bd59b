package elgamal

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// Ciphertext is a multi-recipient ElGamal ciphertext (γ, φ₀, ..., φₗ₋₁) with
// γ = gʳ and φᵢ = pkᵢʳ⋅mᵢ.
type Ciphertext struct {
	gamma *group.GqElement
	phis  *GqVector
}

func NewCiphertext(gamma *group.GqElement, phis *GqVector) (*Ciphertext, error) {
	if gamma == nil {
		return nil, fmt.Errorf("%w: missing gamma", group.ErrInvalidGroupMember)
	}
	if phis.IsEmpty() {
		return nil, ErrEmptyPhis
	}
	if !gamma.SameGroupAs(phis.At(0)) {
		return nil, group.ErrGroupMismatch
	}
	return &Ciphertext{gamma: gamma, phis: phis}, nil
}

func (c *Ciphertext) Gamma() *group.GqElement { return c.gamma }

func (c *Ciphertext) Phis() *GqVector { return c.phis }

func (c *Ciphertext) Phi(i int) *group.GqElement { return c.phis.At(i) }

// Size is the number of phis, that is the number of recipients l.
func (c *Ciphertext) Size() int { return c.phis.Len() }

func (c *Ciphertext) Group() *group.GqGroup { return c.gamma.Group() }

func (c *Ciphertext) SameGroupAs(other *Ciphertext) bool {
	return c.gamma.SameGroupAs(other.gamma)
}

func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.gamma.Equal(other.gamma) && c.phis.Equal(other.phis)
}

// Encrypt encrypts m under pk with randomness r. A key longer than the
// message is compressed to the message size first.
func Encrypt(m *Message, r *group.ZqElement, pk *PublicKey) (*Ciphertext, error) {
	if m.Size() > pk.Size() {
		return nil, fmt.Errorf("%w: message of size %d under key of size %d", group.ErrInconsistentVectorLength, m.Size(), pk.Size())
	}
	if !m.Group().Equal(pk.Group()) {
		return nil, group.ErrGroupMismatch
	}
	pk, err := pk.Compress(m.Size())
	if err != nil {
		return nil, err
	}
	gamma, err := m.Group().Generator().Exponentiate(r)
	if err != nil {
		return nil, err
	}
	phis := make([]*group.GqElement, m.Size())
	for i := range phis {
		pkr, err := pk.At(i).Exponentiate(r)
		if err != nil {
			return nil, err
		}
		if phis[i], err = pkr.Multiply(m.At(i)); err != nil {
			return nil, err
		}
	}
	vec, err := group.NewVector(phis...)
	if err != nil {
		return nil, err
	}
	return NewCiphertext(gamma, vec)
}

// PartialDecrypt removes the key share sk from c: φᵢ' = φᵢ / γ^skᵢ. Gamma is
// carried over unchanged.
func PartialDecrypt(c *Ciphertext, sk *PrivateKey) (*Ciphertext, error) {
	if c.Size() > sk.Size() {
		return nil, fmt.Errorf("%w: ciphertext of size %d under key of size %d", group.ErrInconsistentVectorLength, c.Size(), sk.Size())
	}
	sk, err := sk.Compress(c.Size())
	if err != nil {
		return nil, err
	}
	phis := make([]*group.GqElement, c.Size())
	for i := range phis {
		share, err := c.gamma.Exponentiate(sk.At(i))
		if err != nil {
			return nil, err
		}
		if phis[i], err = c.Phi(i).Divide(share); err != nil {
			return nil, err
		}
	}
	vec, err := group.NewVector(phis...)
	if err != nil {
		return nil, err
	}
	return NewCiphertext(c.gamma, vec)
}

// Decrypt fully decrypts c with the last remaining key share.
func Decrypt(c *Ciphertext, sk *PrivateKey) (*Message, error) {
	stripped, err := PartialDecrypt(c, sk)
	if err != nil {
		return nil, err
	}
	return NewMessage(stripped.phis)
}
