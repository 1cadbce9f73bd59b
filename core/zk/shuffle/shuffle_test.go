package zkshuffle

import (
	"testing"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroArgumentBuilder(t *testing.T) {
	f := newFixture(t)

	z := f.zero()
	assert.Equal(t, 2, z.M())
	assert.Equal(t, 2, z.N())
	assert.True(t, z.Equal(f.zero()))

	_, err := NewZeroArgumentBuilder().SetCA0(f.g(9)).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)
	assert.Contains(t, err.Error(), "t_prime")

	_, err = f.zeroBuilder().SetRPrime(f.z(2)).Build()
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = f.zeroBuilder().SetCA0(nil).Build()
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = NewZeroArgumentBuilder().
		SetTPrime(f.z(1)).SetSPrime(f.z(3)).SetRPrime(f.z(1)).
		SetBPrime(f.zs(4, 3)).SetAPrime(f.zs(3, 2)).
		SetCd(f.gs(5, 9, 4, 1)).SetCBm(f.g(5)).SetCA0(f.g(9)).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewZeroArgumentBuilder().
		SetCA0(f.g(9)).SetCBm(f.g(5)).SetCd(f.gs(5, 9, 4)).
		SetAPrime(f.zs(3, 2)).SetBPrime(f.zs(4)).
		SetRPrime(f.z(1)).SetSPrime(f.z(3)).SetTPrime(f.z(1)).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)
}

func TestHadamardArgumentBuilder(t *testing.T) {
	f := newFixture(t)

	h := f.hadamard()
	assert.Equal(t, 2, h.M())
	assert.Equal(t, 2, h.N())

	_, err := NewHadamardArgumentBuilder().SetCb(f.gs(9, 5, 4)).SetZeroArgument(f.zero()).Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewHadamardArgumentBuilder().SetCb(f.gs(9, 5)).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)
}

func TestProductArgumentVariants(t *testing.T) {
	f := newFixture(t)
	svp := f.svp([]int64{1, 2}, []int64{0, 2}, 4, 4, 5, 0, 0)

	single, err := NewProductArgumentBuilder().SetSingleValueProductArgument(svp).Build()
	require.NoError(t, err)
	assert.False(t, single.HasHadamard())
	assert.Nil(t, single.Cb())
	assert.Equal(t, 1, single.M())
	assert.Equal(t, 2, single.N())

	full := f.product()
	assert.True(t, full.HasHadamard())
	assert.Equal(t, 2, full.M())

	_, err = NewProductArgumentBuilder().SetCb(f.g(4)).SetSingleValueProductArgument(svp).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)

	_, err = NewProductArgumentBuilder().SetHadamardArgument(f.hadamard()).SetSingleValueProductArgument(svp).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)

	_, err = NewProductArgumentBuilder().SetCb(f.g(4)).SetHadamardArgument(f.hadamard()).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)

	svp3 := f.svp([]int64{1, 2, 3}, []int64{0, 2, 1}, 4, 4, 5, 0, 0)
	_, err = NewProductArgumentBuilder().
		SetCb(f.g(4)).SetHadamardArgument(f.hadamard()).SetSingleValueProductArgument(svp3).Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)
}

func TestMultiExponentiationArgumentBuilder(t *testing.T) {
	f := newFixture(t)

	me, err := f.multiExpBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, 2, me.M())
	assert.Equal(t, 2, me.N())
	assert.Equal(t, 2, me.L())

	_, err = NewMultiExponentiationArgumentBuilder().
		SetCA0(f.g(3)).SetCB(f.gs(1, 9, 1)).
		SetE(f.ciphertexts(f.ciphertext(5, 5, 1), f.ciphertext(4, 1, 5), f.ciphertext(5, 5, 5))).
		SetA(f.zs(4, 4)).SetR(f.z(0)).SetB(f.z(4)).SetS(f.z(4)).SetTau(f.z(0)).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewMultiExponentiationArgumentBuilder().
		SetCA0(f.g(3)).SetCB(f.gs(1, 9)).
		SetE(f.ciphertexts(f.ciphertext(5, 5, 1), f.ciphertext(4, 1, 5), f.ciphertext(5, 5, 5), f.ciphertext(5, 3, 9))).
		SetA(f.zs(4, 4)).SetR(f.z(0)).SetB(f.z(4)).SetS(f.z(4)).SetTau(f.z(0)).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = f.multiExpBuilder().SetTau(f.z(1)).Build()
	assert.ErrorIs(t, err, ErrDuplicateField)
}

func TestShuffleArgumentBuilder(t *testing.T) {
	f := newFixture(t)

	s := f.shuffle()
	assert.Equal(t, 2, s.M())
	assert.Equal(t, 2, s.N())
	assert.Equal(t, 2, s.L())
	assert.True(t, s.Equal(f.shuffle()))

	me, err := f.multiExpBuilder().Build()
	require.NoError(t, err)

	_, err = NewShuffleArgumentBuilder().
		SetCA(f.gs(9, 5, 4)).SetCB(f.gs(9, 5, 4)).
		SetProductArgument(f.product()).SetMultiExponentiationArgument(me).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewShuffleArgumentBuilder().
		SetCA(f.gs(9, 5)).SetCB(f.gs(9)).
		SetProductArgument(f.product()).SetMultiExponentiationArgument(me).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	single, err := NewProductArgumentBuilder().
		SetSingleValueProductArgument(f.svp([]int64{1, 2}, []int64{0, 2}, 4, 4, 5, 0, 0)).Build()
	require.NoError(t, err)
	_, err = NewShuffleArgumentBuilder().
		SetCA(f.gs(9, 5)).SetCB(f.gs(9, 5)).
		SetProductArgument(single).SetMultiExponentiationArgument(me).
		Build()
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewShuffleArgumentBuilder().SetCA(f.gs(9, 5)).Build()
	assert.ErrorIs(t, err, ErrIncompleteArgument)
}

func TestVerifiableShuffle(t *testing.T) {
	f := newFixture(t)
	c := f.ciphertext(4, 5, 9)

	one, err := NewVerifiableShuffle(f.ciphertexts(c), nil)
	require.NoError(t, err)
	assert.Nil(t, one.ShuffleArgument())
	assert.Equal(t, 1, one.ShuffledCiphertexts().Len())

	_, err = NewVerifiableShuffle(f.ciphertexts(c), f.shuffle())
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	_, err = NewVerifiableShuffle(f.ciphertexts(c, c), nil)
	assert.ErrorIs(t, err, ErrIncompleteArgument)

	_, err = NewVerifiableShuffle(f.ciphertexts(), nil)
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	four, err := NewVerifiableShuffle(f.ciphertexts(c, c, c, c), f.shuffle())
	require.NoError(t, err)
	assert.NotNil(t, four.ShuffleArgument())
	assert.True(t, four.Equal(four))
	assert.False(t, four.Equal(one))

	_, err = NewVerifiableShuffle(f.ciphertexts(c, c, c), f.shuffle())
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	narrow := f.ciphertext(4, 5)
	_, err = NewVerifiableShuffle(f.ciphertexts(narrow, narrow, narrow, narrow), f.shuffle())
	assert.ErrorIs(t, err, group.ErrInconsistentRecipientCount)
}
