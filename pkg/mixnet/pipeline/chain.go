package pipeline

import (
	"io"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
	"github.com/mr-shifu/mixnet-lib/core/math/sample"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
	"github.com/pkg/errors"
)

// LocalChain is a complete in-process mixnet: nodeCount local nodes with
// fresh key shares, the election key they jointly hold, and a submitter
// that signs initial payloads. Every signing key lives in the key manager
// and is trusted by Trust.
type LocalChain struct {
	Group       *group.GqGroup
	Nodes       []Node
	Trust       *signing.TrustStore
	ElectionKey *elgamal.PublicKey

	submitter *signing.KeySigner
	rand      io.Reader
}

// NewLocalChain builds keys for single recipient ballots. A nil rand uses
// crypto/rand.
func NewLocalChain(gq *group.GqGroup, nodeCount int, keys *signing.KeyManager, rand io.Reader) (*LocalChain, error) {
	if nodeCount < 1 {
		return nil, errors.Errorf("pipeline: chain of %d nodes", nodeCount)
	}
	zq := group.ZqGroupSameOrderAs(gq)
	trust := signing.NewTrustStore()
	signerFor := func() (*signing.KeySigner, error) {
		key, err := keys.GenerateKey()
		if err != nil {
			return nil, err
		}
		trust.Add(key)
		return signing.NewKeySigner(key)
	}

	submitter, err := signerFor()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, nodeCount)
	electionSecret := make([]*group.ZqElement, 0, nodeCount)
	for i := range nodes {
		share, err := sample.PrivateKey(rand, zq, 1)
		if err != nil {
			return nil, err
		}
		signer, err := signerFor()
		if err != nil {
			return nil, err
		}
		nodes[i] = NewLocalNode(LocalNodeParams{
			ID:       i,
			Last:     i == nodeCount-1,
			Key:      share,
			Signer:   signer,
			Verifier: trust,
		})
		electionSecret = append(electionSecret, share.At(0))
	}

	secret := electionSecret[0]
	for _, s := range electionSecret[1:] {
		if secret, err = secret.Add(s); err != nil {
			return nil, err
		}
	}
	vec, err := group.NewVector(secret)
	if err != nil {
		return nil, err
	}
	sk, err := elgamal.NewPrivateKey(vec)
	if err != nil {
		return nil, err
	}
	pk, err := sk.PublicKey(gq)
	if err != nil {
		return nil, err
	}
	return &LocalChain{
		Group:       gq,
		Nodes:       nodes,
		Trust:       trust,
		ElectionKey: pk,
		submitter:   submitter,
		rand:        rand,
	}, nil
}

// Ballot encrypts vote under the election key and wraps it in a signed
// initial payload.
func (c *LocalChain) Ballot(vote *group.GqElement) (*payload.Signed[*payload.InitialPayload], error) {
	votes, err := group.NewVector(vote)
	if err != nil {
		return nil, err
	}
	m, err := elgamal.NewMessage(votes)
	if err != nil {
		return nil, err
	}
	r, err := sample.ZqElement(c.rand, group.ZqGroupSameOrderAs(c.Group))
	if err != nil {
		return nil, err
	}
	ct, err := elgamal.Encrypt(m, r, c.ElectionKey)
	if err != nil {
		return nil, err
	}
	cts, err := group.NewVector(ct)
	if err != nil {
		return nil, err
	}
	p, err := payload.NewInitialPayload(c.Group, cts, c.ElectionKey)
	if err != nil {
		return nil, err
	}
	return SignPayload(c.submitter, p)
}
