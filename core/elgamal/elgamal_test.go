package elgamal

import (
	"math/big"
	"testing"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroup(t *testing.T) *group.GqGroup {
	gr, err := group.NewGqGroup(big.NewInt(11), big.NewInt(5), big.NewInt(3))
	require.NoError(t, err)
	return gr
}

func gqVector(t *testing.T, gr *group.GqGroup, values ...int64) *GqVector {
	elems := make([]*group.GqElement, len(values))
	for i, v := range values {
		e, err := group.NewGqElement(big.NewInt(v), gr)
		require.NoError(t, err)
		elems[i] = e
	}
	vec, err := group.NewVector(elems...)
	require.NoError(t, err)
	return vec
}

func zqVector(t *testing.T, gr *group.ZqGroup, values ...int64) *ZqVector {
	elems := make([]*group.ZqElement, len(values))
	for i, v := range values {
		e, err := group.NewZqElement(big.NewInt(v), gr)
		require.NoError(t, err)
		elems[i] = e
	}
	vec, err := group.NewVector(elems...)
	require.NoError(t, err)
	return vec
}

func TestEmptyKeys(t *testing.T) {
	gr := testGroup(t)
	_, err := NewPublicKey(gqVector(t, gr))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = NewPrivateKey(zqVector(t, group.ZqGroupSameOrderAs(gr)))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = NewMessage(gqVector(t, gr))
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = NewPublicKey(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestNewCiphertext(t *testing.T) {
	gr := testGroup(t)
	gamma, err := group.NewGqElement(big.NewInt(4), gr)
	require.NoError(t, err)

	c, err := NewCiphertext(gamma, gqVector(t, gr, 5, 9))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, int64(9), c.Phi(1).Value().Int64())

	_, err = NewCiphertext(gamma, gqVector(t, gr))
	assert.ErrorIs(t, err, ErrEmptyPhis)

	other, err := group.NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(2))
	require.NoError(t, err)
	_, err = NewCiphertext(gamma, gqVector(t, other, 4))
	assert.ErrorIs(t, err, group.ErrGroupMismatch)

	short, err := NewCiphertext(gamma, gqVector(t, gr, 5))
	require.NoError(t, err)
	_, err = group.NewVector(c, short)
	assert.ErrorIs(t, err, group.ErrInconsistentRecipientCount)

	same, err := NewCiphertext(gamma, gqVector(t, gr, 5, 9))
	require.NoError(t, err)
	vec, err := group.NewVector(c, same, c)
	require.NoError(t, err)
	assert.Equal(t, 3, vec.Len())
	assert.Equal(t, 2, vec.ElementSize())
}

func TestKeyDerivationAndDecryption(t *testing.T) {
	gr := testGroup(t)
	zq := group.ZqGroupSameOrderAs(gr)

	sk, err := NewPrivateKey(zqVector(t, zq, 2, 3))
	require.NoError(t, err)
	pk, err := sk.PublicKey(gr)
	require.NoError(t, err)
	assert.True(t, pk.Elements().Equal(gqVector(t, gr, 9, 5)))

	m, err := NewMessage(gqVector(t, gr, 4, 5))
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(1), zq)
	require.NoError(t, err)

	c, err := Encrypt(m, r, pk)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Gamma().Value().Int64())
	assert.True(t, c.Phis().Equal(gqVector(t, gr, 3, 3)))

	decrypted, err := Decrypt(c, sk)
	require.NoError(t, err)
	assert.True(t, decrypted.Equal(m))
}

func TestCompressedKeys(t *testing.T) {
	gr := testGroup(t)
	zq := group.ZqGroupSameOrderAs(gr)

	sk, err := NewPrivateKey(zqVector(t, zq, 2, 3))
	require.NoError(t, err)
	pk, err := sk.PublicKey(gr)
	require.NoError(t, err)

	cpk, err := pk.Compress(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cpk.At(0).Value().Int64())
	csk, err := sk.Compress(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), csk.At(0).Value().Int64())

	_, err = pk.Compress(3)
	assert.ErrorIs(t, err, group.ErrInconsistentVectorLength)

	m, err := NewMessage(gqVector(t, gr, 4))
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(2), zq)
	require.NoError(t, err)
	c, err := Encrypt(m, r, pk)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())

	decrypted, err := Decrypt(c, sk)
	require.NoError(t, err)
	assert.True(t, decrypted.Equal(m))
}

func TestPartialDecryptionChain(t *testing.T) {
	gr := testGroup(t)
	zq := group.ZqGroupSameOrderAs(gr)

	sk1, err := NewPrivateKey(zqVector(t, zq, 1, 4))
	require.NoError(t, err)
	sk2, err := NewPrivateKey(zqVector(t, zq, 3, 2))
	require.NoError(t, err)
	joint, err := NewPrivateKey(zqVector(t, zq, 4, 1))
	require.NoError(t, err)

	pk, err := joint.PublicKey(gr)
	require.NoError(t, err)
	pk1, err := sk1.PublicKey(gr)
	require.NoError(t, err)

	remaining, err := pk.Divide(pk1)
	require.NoError(t, err)
	pk2, err := sk2.PublicKey(gr)
	require.NoError(t, err)
	assert.True(t, remaining.Equal(pk2))

	m, err := NewMessage(gqVector(t, gr, 9, 5))
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(3), zq)
	require.NoError(t, err)
	c, err := Encrypt(m, r, pk)
	require.NoError(t, err)

	partial, err := PartialDecrypt(c, sk1)
	require.NoError(t, err)
	assert.True(t, partial.Gamma().Equal(c.Gamma()))
	decrypted, err := Decrypt(partial, sk2)
	require.NoError(t, err)
	assert.True(t, decrypted.Equal(m))
}
