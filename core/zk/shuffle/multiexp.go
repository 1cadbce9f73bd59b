package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// MultiExponentiationArgument proves that a ciphertext is the product of the
// committed exponentiations of the m rows of input ciphertexts. c_B and E both
// hold 2m entries and a holds n exponents.
type MultiExponentiationArgument struct {
	cA0        *group.GqElement
	cB         *GqVector
	e          *CiphertextVector
	a          *ZqVector
	r, b, s, t *group.ZqElement
}

func (x *MultiExponentiationArgument) CA0() *group.GqElement { return x.cA0 }

func (x *MultiExponentiationArgument) CB() *GqVector { return x.cB }

func (x *MultiExponentiationArgument) E() *CiphertextVector { return x.e }

func (x *MultiExponentiationArgument) A() *ZqVector { return x.a }

func (x *MultiExponentiationArgument) R() *group.ZqElement { return x.r }

func (x *MultiExponentiationArgument) B() *group.ZqElement { return x.b }

func (x *MultiExponentiationArgument) S() *group.ZqElement { return x.s }

func (x *MultiExponentiationArgument) Tau() *group.ZqElement { return x.t }

func (x *MultiExponentiationArgument) M() int { return x.cB.Len() / 2 }

func (x *MultiExponentiationArgument) N() int { return x.a.Len() }

// L is the number of phis per ciphertext.
func (x *MultiExponentiationArgument) L() int { return x.e.ElementSize() }

func (x *MultiExponentiationArgument) Group() *group.GqGroup { return x.cA0.Group() }

func (x *MultiExponentiationArgument) Equal(other *MultiExponentiationArgument) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.cA0.Equal(other.cA0) && x.cB.Equal(other.cB) && x.e.Equal(other.e) && x.a.Equal(other.a) &&
		x.r.Equal(other.r) && x.b.Equal(other.b) && x.s.Equal(other.s) && x.t.Equal(other.t)
}

type MultiExponentiationArgumentBuilder struct {
	fields fieldSet
	arg    MultiExponentiationArgument
}

func NewMultiExponentiationArgumentBuilder() *MultiExponentiationArgumentBuilder {
	return &MultiExponentiationArgumentBuilder{}
}

func (b *MultiExponentiationArgumentBuilder) SetCA0(v *group.GqElement) *MultiExponentiationArgumentBuilder {
	b.fields.mark("c_A_0", v != nil)
	b.arg.cA0 = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetCB(v *GqVector) *MultiExponentiationArgumentBuilder {
	b.fields.mark("c_B", v != nil)
	b.arg.cB = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetE(v *CiphertextVector) *MultiExponentiationArgumentBuilder {
	b.fields.mark("E", v != nil)
	b.arg.e = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetA(v *ZqVector) *MultiExponentiationArgumentBuilder {
	b.fields.mark("a", v != nil)
	b.arg.a = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetR(v *group.ZqElement) *MultiExponentiationArgumentBuilder {
	b.fields.mark("r", v != nil)
	b.arg.r = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetB(v *group.ZqElement) *MultiExponentiationArgumentBuilder {
	b.fields.mark("b", v != nil)
	b.arg.b = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetS(v *group.ZqElement) *MultiExponentiationArgumentBuilder {
	b.fields.mark("s", v != nil)
	b.arg.s = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) SetTau(v *group.ZqElement) *MultiExponentiationArgumentBuilder {
	b.fields.mark("tau", v != nil)
	b.arg.t = v
	return b
}

func (b *MultiExponentiationArgumentBuilder) Build() (*MultiExponentiationArgument, error) {
	if err := b.fields.require("c_A_0", "c_B", "E", "a", "r", "b", "s", "tau"); err != nil {
		return nil, err
	}
	x := b.arg
	if x.cB.Len() < 2 || x.cB.Len()%2 != 0 {
		return nil, fmt.Errorf("%w: c_B has length %d, expected 2m with m ≥ 1", group.ErrInconsistentVectorLength, x.cB.Len())
	}
	if err := lengthIs("E", x.e.Len(), x.cB.Len()); err != nil {
		return nil, err
	}
	if err := nonEmpty("a", x.a.Len()); err != nil {
		return nil, err
	}
	gq := x.cA0.Group()
	if err := sameGroup(gq, x.cB.At(0), x.e.At(0).Gamma()); err != nil {
		return nil, err
	}
	if err := sameOrder(gq, x.a.At(0), x.r, x.b, x.s, x.t); err != nil {
		return nil, err
	}
	return &x, nil
}
