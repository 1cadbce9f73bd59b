// Package test holds the shared fixtures of the mixnet test suites: a small
// encryption group and the worked proof arguments built over it.
package test

import (
	"math/big"
	"testing"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/stretchr/testify/require"
)

const (
	BallotBoxID     = "0d31a1148f95488fae6827391425dc08"
	ElectionEventID = "f8ba3dd3844a4815af39c63570c12006"
)

// Fixture builds group values, failing the test on any construction error.
type Fixture struct {
	tb testing.TB
	Gq *group.GqGroup
	Zq *group.ZqGroup
}

func NewFixture(tb testing.TB, p, q, g int64) *Fixture {
	gq, err := group.NewGqGroup(big.NewInt(p), big.NewInt(q), big.NewInt(g))
	require.NoError(tb, err)
	return &Fixture{tb: tb, Gq: gq, Zq: group.ZqGroupSameOrderAs(gq)}
}

// Small is the group p = 11, q = 5, g = 3, whose members are 1, 3, 4, 5, 9.
func Small(tb testing.TB) *Fixture {
	return NewFixture(tb, 11, 5, 3)
}

func (f *Fixture) G(v int64) *group.GqElement {
	e, err := group.NewGqElement(big.NewInt(v), f.Gq)
	require.NoError(f.tb, err)
	return e
}

func (f *Fixture) Z(v int64) *group.ZqElement {
	e, err := group.NewZqElement(big.NewInt(v), f.Zq)
	require.NoError(f.tb, err)
	return e
}

func (f *Fixture) Gs(values ...int64) *group.Vector[*group.GqElement] {
	elems := make([]*group.GqElement, len(values))
	for i, v := range values {
		elems[i] = f.G(v)
	}
	return vector(f.tb, elems...)
}

func (f *Fixture) Zs(values ...int64) *group.Vector[*group.ZqElement] {
	elems := make([]*group.ZqElement, len(values))
	for i, v := range values {
		elems[i] = f.Z(v)
	}
	return vector(f.tb, elems...)
}

func (f *Fixture) PublicKey(values ...int64) *elgamal.PublicKey {
	pk, err := elgamal.NewPublicKey(f.Gs(values...))
	require.NoError(f.tb, err)
	return pk
}

func (f *Fixture) PrivateKey(values ...int64) *elgamal.PrivateKey {
	sk, err := elgamal.NewPrivateKey(f.Zs(values...))
	require.NoError(f.tb, err)
	return sk
}

func (f *Fixture) Message(values ...int64) *elgamal.Message {
	m, err := elgamal.NewMessage(f.Gs(values...))
	require.NoError(f.tb, err)
	return m
}

func (f *Fixture) Ciphertext(gamma int64, phis ...int64) *elgamal.Ciphertext {
	c, err := elgamal.NewCiphertext(f.G(gamma), f.Gs(phis...))
	require.NoError(f.tb, err)
	return c
}

func (f *Fixture) Ciphertexts(cs ...*elgamal.Ciphertext) *group.Vector[*elgamal.Ciphertext] {
	return vector(f.tb, cs...)
}

// RepeatedCiphertexts returns n copies of the ciphertext (4, [5, 9]).
func (f *Fixture) RepeatedCiphertexts(n int) *group.Vector[*elgamal.Ciphertext] {
	cs := make([]*elgamal.Ciphertext, n)
	for i := range cs {
		cs[i] = f.Ciphertext(4, 5, 9)
	}
	return f.Ciphertexts(cs...)
}

func (f *Fixture) Proof(e int64, z ...int64) *zkdec.DecryptionProof {
	p, err := zkdec.NewDecryptionProof(f.Z(e), f.Zs(z...))
	require.NoError(f.tb, err)
	return p
}

// RepeatedProofs returns n copies of the proof (2, [1, 3]).
func (f *Fixture) RepeatedProofs(n int) *group.Vector[*zkdec.DecryptionProof] {
	ps := make([]*zkdec.DecryptionProof, n)
	for i := range ps {
		ps[i] = f.Proof(2, 1, 3)
	}
	return vector(f.tb, ps...)
}

func (f *Fixture) VerifiableDecryptions(n int) *zkdec.VerifiableDecryptions {
	vd, err := zkdec.NewVerifiableDecryptions(f.RepeatedCiphertexts(n), f.RepeatedProofs(n))
	require.NoError(f.tb, err)
	return vd
}

func (f *Fixture) VerifiablePlaintextDecryption(n int) *zkdec.VerifiablePlaintextDecryption {
	ms := make([]*elgamal.Message, n)
	for i := range ms {
		ms[i] = f.Message(4, 5)
	}
	vpd, err := zkdec.NewVerifiablePlaintextDecryption(vector(f.tb, ms...), f.RepeatedProofs(n))
	require.NoError(f.tb, err)
	return vpd
}

// ShuffleArgument is the worked m = 2, n = 2, l = 2 argument over Small,
// matching ShuffleArgumentJSON.
func (f *Fixture) ShuffleArgument() *zkshuffle.ShuffleArgument {
	zero, err := zkshuffle.NewZeroArgumentBuilder().
		SetCA0(f.G(9)).SetCBm(f.G(5)).SetCd(f.Gs(5, 9, 4, 1, 4)).
		SetAPrime(f.Zs(3, 2)).SetBPrime(f.Zs(4, 3)).
		SetRPrime(f.Z(1)).SetSPrime(f.Z(3)).SetTPrime(f.Z(1)).
		Build()
	require.NoError(f.tb, err)
	hadamard, err := zkshuffle.NewHadamardArgumentBuilder().SetCb(f.Gs(9, 5)).SetZeroArgument(zero).Build()
	require.NoError(f.tb, err)
	svp, err := zkshuffle.NewSingleValueProductArgumentBuilder().
		SetCd(f.G(4)).SetCLowerDelta(f.G(4)).SetCUpperDelta(f.G(5)).
		SetATilde(f.Zs(2, 1)).SetBTilde(f.Zs(2, 3)).
		SetRTilde(f.Z(1)).SetSTilde(f.Z(0)).
		Build()
	require.NoError(f.tb, err)
	product, err := zkshuffle.NewProductArgumentBuilder().
		SetCb(f.G(4)).SetHadamardArgument(hadamard).SetSingleValueProductArgument(svp).
		Build()
	require.NoError(f.tb, err)
	multiExp, err := zkshuffle.NewMultiExponentiationArgumentBuilder().
		SetCA0(f.G(3)).SetCB(f.Gs(1, 9, 1, 1)).
		SetE(f.Ciphertexts(f.Ciphertext(5, 5, 1), f.Ciphertext(4, 1, 5), f.Ciphertext(5, 5, 5), f.Ciphertext(5, 3, 9))).
		SetA(f.Zs(4, 4)).SetR(f.Z(0)).SetB(f.Z(4)).SetS(f.Z(4)).SetTau(f.Z(0)).
		Build()
	require.NoError(f.tb, err)
	shuffle, err := zkshuffle.NewShuffleArgumentBuilder().
		SetCA(f.Gs(9, 5)).SetCB(f.Gs(9, 5)).
		SetProductArgument(product).SetMultiExponentiationArgument(multiExp).
		Build()
	require.NoError(f.tb, err)
	return shuffle
}

// SimplestShuffleArgument is the worked m = 1, n = 2, l = 1 argument over
// Small, matching SimplestShuffleArgumentJSON.
func (f *Fixture) SimplestShuffleArgument() *zkshuffle.ShuffleArgument {
	svp, err := zkshuffle.NewSingleValueProductArgumentBuilder().
		SetCd(f.G(4)).SetCLowerDelta(f.G(4)).SetCUpperDelta(f.G(5)).
		SetATilde(f.Zs(1, 2)).SetBTilde(f.Zs(0, 2)).
		SetRTilde(f.Z(0)).SetSTilde(f.Z(0)).
		Build()
	require.NoError(f.tb, err)
	product, err := zkshuffle.NewProductArgumentBuilder().SetSingleValueProductArgument(svp).Build()
	require.NoError(f.tb, err)
	multiExp, err := zkshuffle.NewMultiExponentiationArgumentBuilder().
		SetCA0(f.G(4)).SetCB(f.Gs(5, 5)).
		SetE(f.Ciphertexts(f.Ciphertext(5, 3), f.Ciphertext(4, 9))).
		SetA(f.Zs(3, 4)).SetR(f.Z(2)).SetB(f.Z(4)).SetS(f.Z(4)).SetTau(f.Z(0)).
		Build()
	require.NoError(f.tb, err)
	shuffle, err := zkshuffle.NewShuffleArgumentBuilder().
		SetCA(f.Gs(3)).SetCB(f.Gs(4)).
		SetProductArgument(product).SetMultiExponentiationArgument(multiExp).
		Build()
	require.NoError(f.tb, err)
	return shuffle
}

// VerifiableShuffle shuffles four copies of (4, [5, 9]) under ShuffleArgument.
func (f *Fixture) VerifiableShuffle() *zkshuffle.VerifiableShuffle {
	vs, err := zkshuffle.NewVerifiableShuffle(f.RepeatedCiphertexts(4), f.ShuffleArgument())
	require.NoError(f.tb, err)
	return vs
}

func (f *Fixture) InitialPayload(n int) *payload.InitialPayload {
	p, err := payload.NewInitialPayload(f.Gq, f.RepeatedCiphertexts(n), f.PublicKey(4, 9))
	require.NoError(f.tb, err)
	return p
}

// ShufflePayload covers four ciphertexts, with or without the shuffle.
func (f *Fixture) ShufflePayload(withShuffle bool) *payload.ShufflePayload {
	var vs *zkshuffle.VerifiableShuffle
	if withShuffle {
		vs = f.VerifiableShuffle()
	}
	p, err := payload.NewShufflePayload(payload.ShufflePayloadParams{
		EncryptionGroup:                    f.Gq,
		VerifiableDecryptions:              f.VerifiableDecryptions(4),
		VerifiableShuffle:                  vs,
		RemainingElectionPublicKey:         f.PublicKey(4, 9),
		PreviousRemainingElectionPublicKey: f.PublicKey(4, 9),
		NodeElectionPublicKey:              f.PublicKey(4, 9),
		NodeID:                             0,
	})
	require.NoError(f.tb, err)
	return p
}

func (f *Fixture) FinalPayload(withShuffle bool) *payload.FinalPayload {
	var vs *zkshuffle.VerifiableShuffle
	if withShuffle {
		vs = f.VerifiableShuffle()
	}
	p, err := payload.NewFinalPayload(f.Gq, vs, f.VerifiablePlaintextDecryption(4), f.PublicKey(4, 9))
	require.NoError(f.tb, err)
	return p
}

// Signature returns a deterministic signature with a one-certificate chain.
func Signature() *payload.Signature {
	return &payload.Signature{
		Contents:         []byte{0xde, 0xad, 0xbe, 0xef},
		CertificateChain: [][]byte{[]byte("node-certificate")},
	}
}

func vector[E group.Element[E]](tb testing.TB, elems ...E) *group.Vector[E] {
	vec, err := group.NewVector(elems...)
	require.NoError(tb, err)
	return vec
}
