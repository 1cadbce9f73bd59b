package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// ZeroArgument proves that the bilinear map of two committed matrices sums
// to zero. It carries 2m+1 commitments c_d and openings of size n.
type ZeroArgument struct {
	cA0, cBm       *group.GqElement
	cd             *GqVector
	aPrime, bPrime *ZqVector
	rPrime         *group.ZqElement
	sPrime         *group.ZqElement
	tPrime         *group.ZqElement
}

func (z *ZeroArgument) CA0() *group.GqElement { return z.cA0 }
func (z *ZeroArgument) CBm() *group.GqElement { return z.cBm }
func (z *ZeroArgument) Cd() *GqVector { return z.cd }
func (z *ZeroArgument) APrime() *ZqVector { return z.aPrime }
func (z *ZeroArgument) BPrime() *ZqVector { return z.bPrime }
func (z *ZeroArgument) RPrime() *group.ZqElement { return z.rPrime }
func (z *ZeroArgument) SPrime() *group.ZqElement { return z.sPrime }
func (z *ZeroArgument) TPrime() *group.ZqElement { return z.tPrime }
func (z *ZeroArgument) Group() *group.GqGroup { return z.cA0.Group() }

// M is the number of matrix columns, derived from |c_d| = 2m+1.
func (z *ZeroArgument) M() int { return (z.cd.Len() - 1) / 2 }

// N is the number of matrix rows.
func (z *ZeroArgument) N() int { return z.aPrime.Len() }

func (z *ZeroArgument) Equal(other *ZeroArgument) bool {
	if z == nil || other == nil {
		return z == other
	}
	return z.cA0.Equal(other.cA0) && z.cBm.Equal(other.cBm) && z.cd.Equal(other.cd) &&
		z.aPrime.Equal(other.aPrime) && z.bPrime.Equal(other.bPrime) &&
		z.rPrime.Equal(other.rPrime) && z.sPrime.Equal(other.sPrime) && z.tPrime.Equal(other.tPrime)
}

type ZeroArgumentBuilder struct {
	fields fieldSet
	arg    ZeroArgument
}

func NewZeroArgumentBuilder() *ZeroArgumentBuilder {
	return &ZeroArgumentBuilder{}
}

func (b *ZeroArgumentBuilder) SetCA0(v *group.GqElement) *ZeroArgumentBuilder {
	b.fields.mark("c_A_0", v != nil)
	b.arg.cA0 = v
	return b
}

func (b *ZeroArgumentBuilder) SetCBm(v *group.GqElement) *ZeroArgumentBuilder {
	b.fields.mark("c_B_m", v != nil)
	b.arg.cBm = v
	return b
}

func (b *ZeroArgumentBuilder) SetCd(v *GqVector) *ZeroArgumentBuilder {
	b.fields.mark("c_d", v != nil)
	b.arg.cd = v
	return b
}

func (b *ZeroArgumentBuilder) SetAPrime(v *ZqVector) *ZeroArgumentBuilder {
	b.fields.mark("a_prime", v != nil)
	b.arg.aPrime = v
	return b
}

func (b *ZeroArgumentBuilder) SetBPrime(v *ZqVector) *ZeroArgumentBuilder {
	b.fields.mark("b_prime", v != nil)
	b.arg.bPrime = v
	return b
}

func (b *ZeroArgumentBuilder) SetRPrime(v *group.ZqElement) *ZeroArgumentBuilder {
	b.fields.mark("r_prime", v != nil)
	b.arg.rPrime = v
	return b
}

func (b *ZeroArgumentBuilder) SetSPrime(v *group.ZqElement) *ZeroArgumentBuilder {
	b.fields.mark("s_prime", v != nil)
	b.arg.sPrime = v
	return b
}

func (b *ZeroArgumentBuilder) SetTPrime(v *group.ZqElement) *ZeroArgumentBuilder {
	b.fields.mark("t_prime", v != nil)
	b.arg.tPrime = v
	return b
}

func (b *ZeroArgumentBuilder) Build() (*ZeroArgument, error) {
	if err := b.fields.require("c_A_0", "c_B_m", "c_d", "a_prime", "b_prime", "r_prime", "s_prime", "t_prime"); err != nil {
		return nil, err
	}
	z := b.arg
	if z.cd.Len() < 3 || z.cd.Len()%2 == 0 {
		return nil, fmt.Errorf("%w: c_d has length %d, expected 2m+1 with m ≥ 1", group.ErrInconsistentVectorLength, z.cd.Len())
	}
	if err := nonEmpty("a_prime", z.aPrime.Len()); err != nil {
		return nil, err
	}
	if err := lengthIs("b_prime", z.bPrime.Len(), z.aPrime.Len()); err != nil {
		return nil, err
	}
	gq := z.cA0.Group()
	if err := sameGroup(gq, z.cBm, z.cd.At(0)); err != nil {
		return nil, err
	}
	if err := sameOrder(gq, z.aPrime.At(0), z.bPrime.At(0), z.rPrime, z.sPrime, z.tPrime); err != nil {
		return nil, err
	}
	return &z, nil
}
