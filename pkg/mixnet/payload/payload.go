package payload

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

var ErrIncompletePayload = errors.New("payload: missing required field")

type CiphertextVector = group.Vector[*elgamal.Ciphertext]

// Kind discriminates the three payload shapes exchanged with mixing nodes.
type Kind int

const (
	KindInitial Kind = iota + 1
	KindShuffle
	KindFinal
)

func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "initial"
	case KindShuffle:
		return "shuffle"
	case KindFinal:
		return "final"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Payload is implemented by InitialPayload, ShufflePayload and FinalPayload.
type Payload interface {
	Kind() Kind
	EncryptionGroup() *group.GqGroup
}

// Signature is the opaque signature attached to a payload once its canonical
// bytes are known.
type Signature struct {
	Contents         []byte
	CertificateChain [][]byte
}

func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !bytes.Equal(s.Contents, other.Contents) || len(s.CertificateChain) != len(other.CertificateChain) {
		return false
	}
	for i := range s.CertificateChain {
		if !bytes.Equal(s.CertificateChain[i], other.CertificateChain[i]) {
			return false
		}
	}
	return true
}

// Signed couples a payload with its optional signature. Signing never
// mutates the payload; it returns a new wrapper.
type Signed[P Payload] struct {
	payload   P
	signature *Signature
}

// Unsigned wraps p without a signature.
func Unsigned[P Payload](p P) *Signed[P] {
	return &Signed[P]{payload: p}
}

// WithSignature wraps p with sig, which may be nil.
func WithSignature[P Payload](p P, sig *Signature) *Signed[P] {
	return &Signed[P]{payload: p, signature: sig}
}

// Erase forgets the concrete payload type.
func Erase[P Payload](s *Signed[P]) *Signed[Payload] {
	return &Signed[Payload]{payload: s.payload, signature: s.signature}
}

func (s *Signed[P]) Payload() P { return s.payload }

func (s *Signed[P]) Signature() *Signature { return s.signature }

func (s *Signed[P]) IsSigned() bool { return s.signature != nil }

func (s *Signed[P]) Kind() Kind { return s.payload.Kind() }

// Sign returns a copy of s carrying sig.
func (s *Signed[P]) Sign(sig *Signature) *Signed[P] {
	return &Signed[P]{payload: s.payload, signature: sig}
}

// Equal compares payloads and signatures.
func (s *Signed[P]) Equal(other *Signed[P]) bool {
	if s == nil || other == nil {
		return s == other
	}
	return Equal(s.payload, other.payload) && s.signature.Equal(other.signature)
}

// Equal compares two payloads of any kind.
func Equal(a, b Payload) bool {
	switch x := a.(type) {
	case *InitialPayload:
		y, ok := b.(*InitialPayload)
		return ok && x.Equal(y)
	case *ShufflePayload:
		y, ok := b.(*ShufflePayload)
		return ok && x.Equal(y)
	case *FinalPayload:
		y, ok := b.(*FinalPayload)
		return ok && x.Equal(y)
	}
	return false
}

// As narrows an erased payload to P.
func As[P Payload](s *Signed[Payload]) (*Signed[P], bool) {
	p, ok := s.payload.(P)
	if !ok {
		return nil, false
	}
	return &Signed[P]{payload: p, signature: s.signature}, true
}

func checkKeyGroup(name string, gq *group.GqGroup, pk *elgamal.PublicKey) error {
	if pk == nil {
		return fmt.Errorf("%w: %s", ErrIncompletePayload, name)
	}
	if !pk.Group().Equal(gq) {
		return fmt.Errorf("%w: %s is not in the encryption group", group.ErrGroupMismatch, name)
	}
	return nil
}
