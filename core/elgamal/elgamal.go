package elgamal

import (
	"errors"
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

var (
	ErrEmptyKey  = errors.New("elgamal: key or message must not be empty")
	ErrEmptyPhis = errors.New("elgamal: ciphertext must have at least one phi")
)

type (
	GqVector = group.Vector[*group.GqElement]
	ZqVector = group.Vector[*group.ZqElement]
)

// PublicKey is a multi-recipient ElGamal public key (pk₀, ..., pkₗ₋₁).
type PublicKey struct {
	elems *GqVector
}

func NewPublicKey(elems *GqVector) (*PublicKey, error) {
	if elems.IsEmpty() {
		return nil, ErrEmptyKey
	}
	return &PublicKey{elems: elems}, nil
}

func (pk *PublicKey) Size() int { return pk.elems.Len() }

func (pk *PublicKey) At(i int) *group.GqElement { return pk.elems.At(i) }

func (pk *PublicKey) Elements() *GqVector { return pk.elems }

func (pk *PublicKey) Group() *group.GqGroup { return pk.elems.At(0).Group() }

func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.elems.Equal(other.elems)
}

// Compress folds the trailing components into the last of l components by
// multiplication.
func (pk *PublicKey) Compress(l int) (*PublicKey, error) {
	if l <= 0 || l > pk.Size() {
		return nil, fmt.Errorf("%w: cannot compress key of size %d to %d", group.ErrInconsistentVectorLength, pk.Size(), l)
	}
	elems := pk.elems.Elements()
	last := elems[l-1]
	for _, e := range elems[l:] {
		var err error
		if last, err = last.Multiply(e); err != nil {
			return nil, err
		}
	}
	vec, err := group.NewVector(append(elems[:l-1], last)...)
	if err != nil {
		return nil, err
	}
	return &PublicKey{elems: vec}, nil
}

// Divide returns the component-wise quotient pk / other. A mixing node uses it
// to strip its own key share from the remaining election key.
func (pk *PublicKey) Divide(other *PublicKey) (*PublicKey, error) {
	if pk.Size() != other.Size() {
		return nil, fmt.Errorf("%w: key sizes %d and %d", group.ErrInconsistentVectorLength, pk.Size(), other.Size())
	}
	out := make([]*group.GqElement, pk.Size())
	for i := range out {
		q, err := pk.At(i).Divide(other.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	vec, err := group.NewVector(out...)
	if err != nil {
		return nil, err
	}
	return &PublicKey{elems: vec}, nil
}

// PrivateKey is a multi-recipient ElGamal private key (sk₀, ..., skₗ₋₁).
type PrivateKey struct {
	elems *ZqVector
}

func NewPrivateKey(elems *ZqVector) (*PrivateKey, error) {
	if elems.IsEmpty() {
		return nil, ErrEmptyKey
	}
	return &PrivateKey{elems: elems}, nil
}

func (sk *PrivateKey) Size() int { return sk.elems.Len() }

func (sk *PrivateKey) At(i int) *group.ZqElement { return sk.elems.At(i) }

func (sk *PrivateKey) Elements() *ZqVector { return sk.elems }

func (sk *PrivateKey) Group() *group.ZqGroup { return sk.elems.At(0).Group() }

func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if sk == nil || other == nil {
		return sk == other
	}
	return sk.elems.Equal(other.elems)
}

// Compress folds the trailing components into the last of l components by
// addition, matching PublicKey.Compress.
func (sk *PrivateKey) Compress(l int) (*PrivateKey, error) {
	if l <= 0 || l > sk.Size() {
		return nil, fmt.Errorf("%w: cannot compress key of size %d to %d", group.ErrInconsistentVectorLength, sk.Size(), l)
	}
	elems := sk.elems.Elements()
	last := elems[l-1]
	for _, e := range elems[l:] {
		var err error
		if last, err = last.Add(e); err != nil {
			return nil, err
		}
	}
	vec, err := group.NewVector(append(elems[:l-1], last)...)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{elems: vec}, nil
}

// PublicKey derives pkᵢ = g^skᵢ in gq.
func (sk *PrivateKey) PublicKey(gq *group.GqGroup) (*PublicKey, error) {
	g := gq.Generator()
	out := make([]*group.GqElement, sk.Size())
	for i := range out {
		pk, err := g.Exponentiate(sk.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = pk
	}
	vec, err := group.NewVector(out...)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(vec)
}

// Message is a plaintext vector, one group element per recipient.
type Message struct {
	elems *GqVector
}

func NewMessage(elems *GqVector) (*Message, error) {
	if elems.IsEmpty() {
		return nil, ErrEmptyKey
	}
	return &Message{elems: elems}, nil
}

func (m *Message) Size() int { return m.elems.Len() }

func (m *Message) At(i int) *group.GqElement { return m.elems.At(i) }

func (m *Message) Elements() *GqVector { return m.elems }

func (m *Message) Group() *group.GqGroup { return m.elems.At(0).Group() }

func (m *Message) SameGroupAs(other *Message) bool { return m.elems.SameGroupAs(other.elems) }

func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.elems.Equal(other.elems)
}
