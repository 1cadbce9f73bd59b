package hash

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_WriteAny(t *testing.T) {
	h := New("test")
	assert.NoError(t, h.WriteAny([]byte{1, 4, 6}, "abc", big.NewInt(35)))
	assert.Error(t, h.WriteAny([]byte(nil)))
	assert.Error(t, h.WriteAny((*big.Int)(nil)))
	assert.Error(t, h.WriteAny(3))
	assert.Len(t, h.Sum(), DigestLengthBytes)
}

func TestHash_WriteAny_Collision(t *testing.T) {
	sum := func(vs ...interface{}) []byte {
		h := New("test")
		require.NoError(t, h.WriteAny(vs...))
		return h.Sum()
	}
	assert.NotEqual(t, sum([]byte("ab"), []byte("c")), sum([]byte("a"), []byte("bc")))
	assert.NotEqual(t, sum([]byte("3")), sum("3"))
	assert.Equal(t, sum([]byte("a"), "b"), sum([]byte("a"), "b"))
}

func TestHash_Domains(t *testing.T) {
	data := []byte(`{"p":"0xB"}`)
	assert.NotEqual(t, Fingerprint(DomainPayload, data), Fingerprint(DomainState, data))
	assert.Equal(t, Fingerprint(DomainPayload, data), Fingerprint(DomainPayload, data))
	assert.Len(t, Fingerprint(DomainPayload, data), 2*DigestLengthBytes)
}

func TestHash_Fork(t *testing.T) {
	h := New("test")
	require.NoError(t, h.WriteAny("a"))
	forked := h.Fork("b")
	assert.NotEqual(t, h.Sum(), forked.Sum())
	assert.Equal(t, h.Sum(), h.Clone().Sum())
}
