package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// ShuffleArgument is the Bayer-Groth argument that a vector of N = m⋅n
// ciphertexts is a re-encrypted permutation of another.
type ShuffleArgument struct {
	cA, cB   *GqVector
	product  *ProductArgument
	multiExp *MultiExponentiationArgument
}

func (s *ShuffleArgument) CA() *GqVector { return s.cA }

func (s *ShuffleArgument) CB() *GqVector { return s.cB }

func (s *ShuffleArgument) ProductArgument() *ProductArgument { return s.product }

func (s *ShuffleArgument) MultiExponentiationArgument() *MultiExponentiationArgument {
	return s.multiExp
}

func (s *ShuffleArgument) M() int { return s.cA.Len() }

func (s *ShuffleArgument) N() int { return s.multiExp.N() }

func (s *ShuffleArgument) L() int { return s.multiExp.L() }

func (s *ShuffleArgument) Group() *group.GqGroup { return s.cA.At(0).Group() }

func (s *ShuffleArgument) Equal(other *ShuffleArgument) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.cA.Equal(other.cA) && s.cB.Equal(other.cB) &&
		s.product.Equal(other.product) && s.multiExp.Equal(other.multiExp)
}

type ShuffleArgumentBuilder struct {
	fields fieldSet
	arg    ShuffleArgument
}

func NewShuffleArgumentBuilder() *ShuffleArgumentBuilder {
	return &ShuffleArgumentBuilder{}
}

func (b *ShuffleArgumentBuilder) SetCA(v *GqVector) *ShuffleArgumentBuilder {
	b.fields.mark("c_A", v != nil)
	b.arg.cA = v
	return b
}

func (b *ShuffleArgumentBuilder) SetCB(v *GqVector) *ShuffleArgumentBuilder {
	b.fields.mark("c_B", v != nil)
	b.arg.cB = v
	return b
}

func (b *ShuffleArgumentBuilder) SetProductArgument(v *ProductArgument) *ShuffleArgumentBuilder {
	b.fields.mark("productArgument", v != nil)
	b.arg.product = v
	return b
}

func (b *ShuffleArgumentBuilder) SetMultiExponentiationArgument(v *MultiExponentiationArgument) *ShuffleArgumentBuilder {
	b.fields.mark("multiExponentiationArgument", v != nil)
	b.arg.multiExp = v
	return b
}

func (b *ShuffleArgumentBuilder) Build() (*ShuffleArgument, error) {
	if err := b.fields.require("c_A", "c_B", "productArgument", "multiExponentiationArgument"); err != nil {
		return nil, err
	}
	s := b.arg
	if err := nonEmpty("c_A", s.cA.Len()); err != nil {
		return nil, err
	}
	m := s.cA.Len()
	if err := lengthIs("c_B", s.cB.Len(), m); err != nil {
		return nil, err
	}
	if s.product.M() != m || s.multiExp.M() != m {
		return nil, fmt.Errorf("%w: sub-arguments have m = %d and %d, expected %d",
			group.ErrInconsistentVectorLength, s.product.M(), s.multiExp.M(), m)
	}
	if s.product.N() != s.multiExp.N() {
		return nil, fmt.Errorf("%w: sub-arguments have n = %d and %d",
			group.ErrInconsistentVectorLength, s.product.N(), s.multiExp.N())
	}
	gq := s.cA.At(0).Group()
	if err := sameGroup(gq, s.cB.At(0), s.product.SingleValueProductArgument().Cd(), s.multiExp.CA0()); err != nil {
		return nil, err
	}
	return &s, nil
}
