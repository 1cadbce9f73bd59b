package pipeline

import (
	"context"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/pkg/errors"
)

// Node is one mixing node of the chain. Mix receives a copy of the state and
// returns the signed payload it produced for it.
type Node interface {
	ID() int
	Mix(ctx context.Context, s *state.MixnetState) (*payload.Signed[payload.Payload], error)
}

// hopInput extracts what a node works on from the payload it received: the
// ciphertexts left by the previous node and the key they are still
// encrypted under.
func hopInput(p payload.Payload) (*payload.CiphertextVector, *elgamal.PublicKey, error) {
	switch x := p.(type) {
	case *payload.InitialPayload:
		return x.Ciphertexts(), x.RemainingElectionPublicKey(), nil
	case *payload.ShufflePayload:
		return x.VerifiableDecryptions().Ciphertexts(), x.RemainingElectionPublicKey(), nil
	}
	return nil, nil, errors.WithMessagef(ErrValidation, "no node accepts a %s payload", p.Kind())
}
