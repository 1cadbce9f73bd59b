package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/pkg/errors"
)

// statisticalSecurity is the number of extra random bits drawn before
// reducing modulo q.
const statisticalSecurity = 128

// ZqElement draws a uniform element of zq. A nil rand uses crypto/rand.
func ZqElement(rand io.Reader, zq *group.ZqGroup) (*group.ZqElement, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	q := zq.Q()
	buf := make([]byte, (q.BitLen()+statisticalSecurity+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read random bytes")
	}
	v := new(big.Int).SetBytes(buf)
	return group.NewZqElement(v.Mod(v, q), zq)
}

func ZqVector(rand io.Reader, zq *group.ZqGroup, n int) (*elgamal.ZqVector, error) {
	elems := make([]*group.ZqElement, n)
	for i := range elems {
		e, err := ZqElement(rand, zq)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return group.NewVector(elems...)
}

// PrivateKey draws an l-component ElGamal private key.
func PrivateKey(rand io.Reader, zq *group.ZqGroup, l int) (*elgamal.PrivateKey, error) {
	elems, err := ZqVector(rand, zq, l)
	if err != nil {
		return nil, err
	}
	return elgamal.NewPrivateKey(elems)
}
