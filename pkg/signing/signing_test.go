package signing

import (
	"testing"

	"github.com/mr-shifu/mixnet-lib/lib/test"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningKeyBytes(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	assert.True(t, key.Private())
	assert.Len(t, key.SKI(), 32)

	encoded, err := key.Bytes()
	require.NoError(t, err)
	decoded, err := KeyFromBytes(encoded)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(key))
	assert.Equal(t, key.KeyID(), decoded.KeyID())

	pub := key.PublicKey()
	assert.False(t, pub.Private())
	encoded, err = pub.Bytes()
	require.NoError(t, err)
	decoded, err = KeyFromBytes(encoded)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(pub))

	_, err = pub.Sign([]byte("msg"))
	assert.ErrorIs(t, err, ErrNotPrivate)
	_, err = KeyFromBytes([]byte{0xff})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestSignAndVerify(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	sig, err := key.Sign([]byte("canonical"))
	require.NoError(t, err)
	require.NoError(t, key.PublicKey().Verify([]byte("canonical"), sig))
	assert.ErrorIs(t, key.Verify([]byte("tampered"), sig), ErrInvalidSignature)
	assert.ErrorIs(t, key.Verify([]byte("canonical"), []byte{1, 2}), ErrInvalidSignature)
}

func TestKeyManager(t *testing.T) {
	mgr := NewKeyManager(vault.NewInMemoryVault())
	a, err := mgr.GenerateKey()
	require.NoError(t, err)
	b, err := mgr.GenerateKey()
	require.NoError(t, err)

	got, err := mgr.GetKey(a.KeyID())
	require.NoError(t, err)
	assert.True(t, got.Equal(a))

	keys, err := mgr.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, 2)
	ids := []string{keys[0].KeyID(), keys[1].KeyID()}
	assert.ElementsMatch(t, []string{a.KeyID(), b.KeyID()}, ids)

	_, err = mgr.GetKey("missing")
	assert.ErrorIs(t, err, vault.ErrKeyNotFound)
}

func TestPayloadSignatures(t *testing.T) {
	f := test.Small(t)
	key, err := GenerateKey()
	require.NoError(t, err)
	signer, err := NewKeySigner(key)
	require.NoError(t, err)

	p := f.ShufflePayload(true)
	sig, err := signer.Sign(p)
	require.NoError(t, err)
	require.Len(t, sig.CertificateChain, 1)
	assert.Equal(t, key.PublicKeyBytes(), sig.CertificateChain[0])

	signed := payload.WithSignature[payload.Payload](p, sig)
	trust := NewTrustStore(key)
	require.NoError(t, trust.Verify(signed))

	other := payload.WithSignature[payload.Payload](f.ShufflePayload(false), sig)
	assert.ErrorIs(t, trust.Verify(other), ErrInvalidSignature)

	assert.ErrorIs(t, trust.Verify(payload.Erase(payload.Unsigned(p))), ErrInvalidSignature)

	trust.Remove(key.KeyID())
	assert.ErrorIs(t, trust.Verify(signed), ErrUnknownSigner)

	_, err = NewKeySigner(key.PublicKey())
	assert.ErrorIs(t, err, ErrNotPrivate)
}
