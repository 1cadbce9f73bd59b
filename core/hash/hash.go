package hash

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
)

const DigestLengthBytes = 32

// Domains used across the mixnet.
const (
	DomainPayload = "mixnet-payload"
	DomainState   = "mixnet-state"
)

// Hash is a domain separated blake3 hasher used to fingerprint canonical
// payload and state bytes.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash bound to domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString("MIXNET-BLAKE3")
	hash.write("domain", []byte(domain))
	return hash
}

// Digest returns a reader for the current output of the function.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns DigestLengthBytes bytes of the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny writes each value with its own type tag.
//
// Supported types: []byte, string, *big.Int.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			if t == nil {
				return errors.New("hash.WriteAny: nil []byte")
			}
			hash.write("[]byte", t)
		case string:
			hash.write("string", []byte(t))
		case *big.Int:
			if t == nil {
				return errors.New("hash.WriteAny: nil *big.Int")
			}
			hash.write("big.Int", t.Bytes())
		default:
			return fmt.Errorf("hash.WriteAny: unsupported type %T", d)
		}
	}
	return nil
}

// write emits (<tag_size><tag><data_size><data>) so that consecutive writes
// cannot be confused with one another.
func (hash *Hash) write(tag string, data []byte) {
	var sizeBuf [8]byte

	_, _ = hash.h.WriteString("(")
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(tag)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.WriteString(tag)
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(data)))
	_, _ = hash.h.Write(sizeBuf[:])
	_, _ = hash.h.Write(data)
	_, _ = hash.h.WriteString(")")
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// Fork clones this hash, and then writes some data.
func (hash *Hash) Fork(data ...interface{}) *Hash {
	newHash := hash.Clone()
	_ = newHash.WriteAny(data...)
	return newHash
}

// Fingerprint hashes canonical bytes under domain and returns the lowercase
// hex digest.
func Fingerprint(domain string, canonical []byte) string {
	h := New(domain)
	h.write("[]byte", canonical)
	return hex.EncodeToString(h.Sum())
}
