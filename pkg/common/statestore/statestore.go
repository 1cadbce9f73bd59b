package statestore

import (
	"context"

	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
)

// Store persists mixnet states keyed by ballot box id. Stores hand out
// copies: mutating a loaded state does not affect the stored one.
type Store interface {
	Save(ctx context.Context, s *state.MixnetState) error
	Load(ctx context.Context, ballotBoxID string) (*state.MixnetState, error)
	Delete(ctx context.Context, ballotBoxID string) error

	// List returns the stored ballot box ids in lexical order.
	List(ctx context.Context) ([]string, error)
}

// Manager applies single state transitions to stored states.
type Manager interface {
	NewState(ctx context.Context, details state.BallotBoxDetails, p *payload.Signed[payload.Payload]) (*state.MixnetState, error)
	Get(ctx context.Context, ballotBoxID string) (*state.MixnetState, error)
	SetPayload(ctx context.Context, ballotBoxID string, p *payload.Signed[payload.Payload]) error
	IncrementNodeToVisit(ctx context.Context, ballotBoxID string) error
	DecrementRetryCount(ctx context.Context, ballotBoxID string) error
	SetMixnetError(ctx context.Context, ballotBoxID, msg string) error
}
