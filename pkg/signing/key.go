package signing

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

var (
	ErrInvalidKey       = errors.New("signing: invalid key")
	ErrNotPrivate       = errors.New("signing: key has no private part")
	ErrInvalidSignature = errors.New("signing: invalid signature")
	ErrUnknownSigner    = errors.New("signing: unknown signer")
)

// SigningKey is a node's secp256k1 key pair. The private part is absent for
// keys obtained from a trust store or a certificate chain.
type SigningKey struct {
	priv *secp256k1.PrivateKey
	pub  *secp256k1.PublicKey
}

type rawSigningKey struct {
	Priv []byte
	Pub  []byte
}

func GenerateKey() (*SigningKey, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &SigningKey{priv: priv, pub: priv.PubKey()}, nil
}

// PublicKeyFromBytes parses a compressed or uncompressed public key.
func PublicKeyFromBytes(b []byte) (*SigningKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.WithMessage(ErrInvalidKey, err.Error())
	}
	return &SigningKey{pub: pub}, nil
}

// KeyFromBytes decodes the output of Bytes.
func KeyFromBytes(b []byte) (*SigningKey, error) {
	var raw rawSigningKey
	if err := cbor.Unmarshal(b, &raw); err != nil {
		return nil, errors.WithMessage(ErrInvalidKey, err.Error())
	}
	key, err := PublicKeyFromBytes(raw.Pub)
	if err != nil {
		return nil, err
	}
	if len(raw.Priv) == 0 {
		return key, nil
	}
	priv := secp256k1.PrivKeyFromBytes(raw.Priv)
	if !priv.PubKey().IsEqual(key.pub) {
		return nil, errors.WithMessage(ErrInvalidKey, "private and public parts do not match")
	}
	key.priv = priv
	return key, nil
}

func (k *SigningKey) Bytes() ([]byte, error) {
	raw := rawSigningKey{Pub: k.pub.SerializeCompressed()}
	if k.priv != nil {
		raw.Priv = k.priv.Serialize()
	}
	return cbor.Marshal(raw)
}

// PublicKeyBytes is the compressed public key carried in certificate chains.
func (k *SigningKey) PublicKeyBytes() []byte { return k.pub.SerializeCompressed() }

// SKI is the SHA3-256 digest of the compressed public key.
func (k *SigningKey) SKI() []byte {
	ski := sha3.Sum256(k.pub.SerializeCompressed())
	return ski[:]
}

// KeyID is the hex encoded SKI.
func (k *SigningKey) KeyID() string { return hex.EncodeToString(k.SKI()) }

func (k *SigningKey) Private() bool { return k.priv != nil }

func (k *SigningKey) PublicKey() *SigningKey { return &SigningKey{pub: k.pub} }

func (k *SigningKey) Equal(other *SigningKey) bool {
	return k.pub.IsEqual(other.pub) && k.Private() == other.Private()
}

// Sign returns the DER encoded signature of the SHA3-256 digest of msg.
func (k *SigningKey) Sign(msg []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrNotPrivate
	}
	digest := sha3.Sum256(msg)
	return ecdsa.Sign(k.priv, digest[:]).Serialize(), nil
}

func (k *SigningKey) Verify(msg, sig []byte) error {
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return errors.WithMessage(ErrInvalidSignature, err.Error())
	}
	digest := sha3.Sum256(msg)
	if !parsed.Verify(digest[:], k.pub) {
		return ErrInvalidSignature
	}
	return nil
}
