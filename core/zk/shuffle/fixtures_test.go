package zkshuffle

import (
	"math/big"
	"testing"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t  *testing.T
	gq *group.GqGroup
	zq *group.ZqGroup
}

func newFixture(t *testing.T) *fixture {
	gq, err := group.NewGqGroup(big.NewInt(11), big.NewInt(5), big.NewInt(3))
	require.NoError(t, err)
	return &fixture{t: t, gq: gq, zq: group.ZqGroupSameOrderAs(gq)}
}

func (f *fixture) g(v int64) *group.GqElement {
	e, err := group.NewGqElement(big.NewInt(v), f.gq)
	require.NoError(f.t, err)
	return e
}

func (f *fixture) z(v int64) *group.ZqElement {
	e, err := group.NewZqElement(big.NewInt(v), f.zq)
	require.NoError(f.t, err)
	return e
}

func (f *fixture) gs(values ...int64) *GqVector {
	elems := make([]*group.GqElement, len(values))
	for i, v := range values {
		elems[i] = f.g(v)
	}
	vec, err := group.NewVector(elems...)
	require.NoError(f.t, err)
	return vec
}

func (f *fixture) zs(values ...int64) *ZqVector {
	elems := make([]*group.ZqElement, len(values))
	for i, v := range values {
		elems[i] = f.z(v)
	}
	vec, err := group.NewVector(elems...)
	require.NoError(f.t, err)
	return vec
}

func (f *fixture) ciphertext(gamma int64, phis ...int64) *elgamal.Ciphertext {
	c, err := elgamal.NewCiphertext(f.g(gamma), f.gs(phis...))
	require.NoError(f.t, err)
	return c
}

func (f *fixture) ciphertexts(cs ...*elgamal.Ciphertext) *CiphertextVector {
	vec, err := group.NewVector(cs...)
	require.NoError(f.t, err)
	return vec
}

func (f *fixture) zeroBuilder() *ZeroArgumentBuilder {
	return NewZeroArgumentBuilder().
		SetCA0(f.g(9)).
		SetCBm(f.g(5)).
		SetCd(f.gs(5, 9, 4, 1, 4)).
		SetAPrime(f.zs(3, 2)).
		SetBPrime(f.zs(4, 3)).
		SetRPrime(f.z(1)).
		SetSPrime(f.z(3)).
		SetTPrime(f.z(1))
}

func (f *fixture) zero() *ZeroArgument {
	z, err := f.zeroBuilder().Build()
	require.NoError(f.t, err)
	return z
}

func (f *fixture) hadamard() *HadamardArgument {
	h, err := NewHadamardArgumentBuilder().SetCb(f.gs(9, 5)).SetZeroArgument(f.zero()).Build()
	require.NoError(f.t, err)
	return h
}

func (f *fixture) svp(aTilde, bTilde []int64, cd, cdelta, cDelta, r, s int64) *SingleValueProductArgument {
	svp, err := NewSingleValueProductArgumentBuilder().
		SetCd(f.g(cd)).
		SetCLowerDelta(f.g(cdelta)).
		SetCUpperDelta(f.g(cDelta)).
		SetATilde(f.zs(aTilde...)).
		SetBTilde(f.zs(bTilde...)).
		SetRTilde(f.z(r)).
		SetSTilde(f.z(s)).
		Build()
	require.NoError(f.t, err)
	return svp
}

// product with m = 2
func (f *fixture) product() *ProductArgument {
	p, err := NewProductArgumentBuilder().
		SetCb(f.g(4)).
		SetHadamardArgument(f.hadamard()).
		SetSingleValueProductArgument(f.svp([]int64{2, 1}, []int64{2, 3}, 4, 4, 5, 1, 0)).
		Build()
	require.NoError(f.t, err)
	return p
}

// multi exponentiation argument with m = 2, n = 2, l = 2
func (f *fixture) multiExpBuilder() *MultiExponentiationArgumentBuilder {
	return NewMultiExponentiationArgumentBuilder().
		SetCA0(f.g(3)).
		SetCB(f.gs(1, 9, 1, 1)).
		SetE(f.ciphertexts(
			f.ciphertext(5, 5, 1),
			f.ciphertext(4, 1, 5),
			f.ciphertext(5, 5, 5),
			f.ciphertext(5, 3, 9),
		)).
		SetA(f.zs(4, 4)).
		SetR(f.z(0)).
		SetB(f.z(4)).
		SetS(f.z(4)).
		SetTau(f.z(0))
}

func (f *fixture) shuffle() *ShuffleArgument {
	me, err := f.multiExpBuilder().Build()
	require.NoError(f.t, err)
	s, err := NewShuffleArgumentBuilder().
		SetCA(f.gs(9, 5)).
		SetCB(f.gs(9, 5)).
		SetProductArgument(f.product()).
		SetMultiExponentiationArgument(me).
		Build()
	require.NoError(f.t, err)
	return s
}
