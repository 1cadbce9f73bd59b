package signing

import (
	"sync"

	"github.com/mr-shifu/mixnet-lib/pkg/codec"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/pkg/errors"
)

// Signer signs the canonical unsigned encoding of a payload.
type Signer interface {
	Sign(p payload.Payload) (*payload.Signature, error)
}

// Verifier checks a signed payload against its canonical unsigned encoding.
type Verifier interface {
	Verify(s *payload.Signed[payload.Payload]) error
}

// KeySigner signs with a single key. The certificate chain holds the
// signer's compressed public key.
type KeySigner struct {
	key *SigningKey
}

func NewKeySigner(key *SigningKey) (*KeySigner, error) {
	if !key.Private() {
		return nil, ErrNotPrivate
	}
	return &KeySigner{key: key}, nil
}

func (s *KeySigner) Key() *SigningKey { return s.key }

func (s *KeySigner) Sign(p payload.Payload) (*payload.Signature, error) {
	msg, err := codec.EncodeUnsignedPayload(p)
	if err != nil {
		return nil, err
	}
	contents, err := s.key.Sign(msg)
	if err != nil {
		return nil, err
	}
	return &payload.Signature{
		Contents:         contents,
		CertificateChain: [][]byte{s.key.PublicKeyBytes()},
	}, nil
}

// TrustStore verifies signatures made by a known set of node keys.
type TrustStore struct {
	lock sync.RWMutex
	keys map[string]*SigningKey
}

func NewTrustStore(keys ...*SigningKey) *TrustStore {
	ts := &TrustStore{keys: make(map[string]*SigningKey)}
	for _, k := range keys {
		ts.Add(k)
	}
	return ts
}

// Add trusts the public part of key.
func (ts *TrustStore) Add(key *SigningKey) {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	ts.keys[key.KeyID()] = key.PublicKey()
}

func (ts *TrustStore) Remove(keyID string) {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	delete(ts.keys, keyID)
}

func (ts *TrustStore) Lookup(keyID string) (*SigningKey, bool) {
	ts.lock.RLock()
	defer ts.lock.RUnlock()

	key, ok := ts.keys[keyID]
	return key, ok
}

func (ts *TrustStore) Verify(s *payload.Signed[payload.Payload]) error {
	sig := s.Signature()
	if sig == nil {
		return errors.WithMessage(ErrInvalidSignature, "payload is not signed")
	}
	if len(sig.CertificateChain) == 0 {
		return errors.WithMessage(ErrUnknownSigner, "empty certificate chain")
	}
	presented, err := PublicKeyFromBytes(sig.CertificateChain[0])
	if err != nil {
		return errors.WithMessage(ErrUnknownSigner, err.Error())
	}
	trusted, ok := ts.Lookup(presented.KeyID())
	if !ok {
		return errors.WithMessagef(ErrUnknownSigner, "key %s", presented.KeyID())
	}
	msg, err := codec.EncodeUnsignedPayload(s.Payload())
	if err != nil {
		return err
	}
	return trusted.Verify(msg, sig.Contents)
}
