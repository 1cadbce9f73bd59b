package pipeline

import (
	"context"
	"math/big"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	zkdec "github.com/mr-shifu/mixnet-lib/core/zk/decryption"
	zkshuffle "github.com/mr-shifu/mixnet-lib/core/zk/shuffle"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
	"github.com/pkg/errors"
)

// DecryptionProver produces the proof that partial is c with the share sk
// removed.
type DecryptionProver interface {
	ProveDecryption(c, partial *elgamal.Ciphertext, sk *elgamal.PrivateKey) (*zkdec.DecryptionProof, error)
}

// ShapeProver emits all-zero proofs of the right dimensions. Pair it with a
// structural verifier only.
type ShapeProver struct{}

func (ShapeProver) ProveDecryption(c, _ *elgamal.Ciphertext, sk *elgamal.PrivateKey) (*zkdec.DecryptionProof, error) {
	zq := sk.Group()
	zero, err := group.NewZqElement(big.NewInt(0), zq)
	if err != nil {
		return nil, err
	}
	zs := make([]*group.ZqElement, c.Size())
	for i := range zs {
		zs[i] = zero
	}
	z, err := group.NewVector(zs...)
	if err != nil {
		return nil, err
	}
	return zkdec.NewDecryptionProof(zero, z)
}

// LocalNode is an in-process mixing node for ballot boxes holding a single
// ciphertext, which need no shuffle argument. It strips its key share from
// the ciphertext and, as the last node of the chain, reveals the plaintext.
type LocalNode struct {
	id       int
	last     bool
	key      *elgamal.PrivateKey
	signer   signing.Signer
	verifier signing.Verifier
	prover   DecryptionProver
}

type LocalNodeParams struct {
	ID       int
	Last     bool
	Key      *elgamal.PrivateKey
	Signer   signing.Signer
	Verifier signing.Verifier
	Prover   DecryptionProver
}

func NewLocalNode(params LocalNodeParams) *LocalNode {
	prover := params.Prover
	if prover == nil {
		prover = ShapeProver{}
	}
	return &LocalNode{
		id:       params.ID,
		last:     params.Last,
		key:      params.Key,
		signer:   params.Signer,
		verifier: params.Verifier,
		prover:   prover,
	}
}

func (n *LocalNode) ID() int { return n.id }

func (n *LocalNode) Mix(ctx context.Context, s *state.MixnetState) (*payload.Signed[payload.Payload], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateForNode(s, n.id, n.verifier); err != nil {
		return nil, err
	}
	in := s.Payload().Payload()
	gq := in.EncryptionGroup()
	ciphertexts, remaining, err := hopInput(in)
	if err != nil {
		return nil, err
	}
	if ciphertexts.Len() != 1 {
		return nil, errors.WithMessagef(ErrValidation, "local node %d mixes single ciphertext ballot boxes, got %d",
			n.id, ciphertexts.Len())
	}
	vs, err := zkshuffle.NewVerifiableShuffle(ciphertexts, nil)
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}

	c := ciphertexts.At(0)
	partial, err := elgamal.PartialDecrypt(c, n.key)
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}
	proof, err := n.prover.ProveDecryption(c, partial, n.key)
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}
	proofs, err := group.NewVector(proof)
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}

	var out payload.Payload
	if n.last {
		out, err = n.finalPayload(gq, vs, partial, proofs, remaining)
	} else {
		out, err = n.shufflePayload(gq, vs, partial, proofs, remaining)
	}
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}
	signed, err := SignPayload(n.signer, out)
	if err != nil {
		return nil, errors.WithMessage(ErrHopFailed, err.Error())
	}
	return signed, nil
}

func (n *LocalNode) shufflePayload(gq *group.GqGroup, vs *zkshuffle.VerifiableShuffle, partial *elgamal.Ciphertext,
	proofs *zkdec.ProofVector, previous *elgamal.PublicKey) (payload.Payload, error) {
	partials, err := group.NewVector(partial)
	if err != nil {
		return nil, err
	}
	vd, err := zkdec.NewVerifiableDecryptions(partials, proofs)
	if err != nil {
		return nil, err
	}
	nodeKey, err := n.publicKey(gq, previous.Size())
	if err != nil {
		return nil, err
	}
	remaining, err := previous.Divide(nodeKey)
	if err != nil {
		return nil, err
	}
	return payload.NewShufflePayload(payload.ShufflePayloadParams{
		EncryptionGroup:                    gq,
		VerifiableDecryptions:              vd,
		VerifiableShuffle:                  vs,
		RemainingElectionPublicKey:         remaining,
		PreviousRemainingElectionPublicKey: previous,
		NodeElectionPublicKey:              nodeKey,
		NodeID:                             n.id,
	})
}

func (n *LocalNode) finalPayload(gq *group.GqGroup, vs *zkshuffle.VerifiableShuffle, partial *elgamal.Ciphertext,
	proofs *zkdec.ProofVector, previous *elgamal.PublicKey) (payload.Payload, error) {
	m, err := elgamal.NewMessage(partial.Phis())
	if err != nil {
		return nil, err
	}
	votes, err := group.NewVector(m)
	if err != nil {
		return nil, err
	}
	vpd, err := zkdec.NewVerifiablePlaintextDecryption(votes, proofs)
	if err != nil {
		return nil, err
	}
	return payload.NewFinalPayload(gq, vs, vpd, previous)
}

// publicKey derives the node key compressed to the size of the election key.
func (n *LocalNode) publicKey(gq *group.GqGroup, size int) (*elgamal.PublicKey, error) {
	sk, err := n.key.Compress(size)
	if err != nil {
		return nil, err
	}
	return sk.PublicKey(gq)
}
