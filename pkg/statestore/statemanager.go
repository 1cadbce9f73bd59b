package statestore

import (
	"context"

	com_statestore "github.com/mr-shifu/mixnet-lib/pkg/common/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/pkg/errors"
)

var _ com_statestore.Manager = (*MixnetStateManager)(nil)

// MixnetStateManager loads a state, applies one transition and saves it back.
// It does not serialize concurrent transitions on the same ballot box; the
// orchestrator owns a ballot box for the duration of a run.
type MixnetStateManager struct {
	store com_statestore.Store
}

func NewMixnetStateManager(store com_statestore.Store) *MixnetStateManager {
	return &MixnetStateManager{
		store: store,
	}
}

func (mgr *MixnetStateManager) NewState(ctx context.Context, details state.BallotBoxDetails, p *payload.Signed[payload.Payload]) (*state.MixnetState, error) {
	_, err := mgr.store.Load(ctx, details.BallotBoxID())
	if err == nil {
		return nil, errors.WithMessage(ErrStateExists, details.BallotBoxID())
	}
	if !errors.Is(err, ErrStateNotFound) {
		return nil, err
	}
	s, err := state.New(details, p)
	if err != nil {
		return nil, err
	}
	if err := mgr.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (mgr *MixnetStateManager) Get(ctx context.Context, ballotBoxID string) (*state.MixnetState, error) {
	return mgr.store.Load(ctx, ballotBoxID)
}

func (mgr *MixnetStateManager) SetPayload(ctx context.Context, ballotBoxID string, p *payload.Signed[payload.Payload]) error {
	return mgr.update(ctx, ballotBoxID, func(s *state.MixnetState) error {
		return s.SetPayload(p)
	})
}

func (mgr *MixnetStateManager) IncrementNodeToVisit(ctx context.Context, ballotBoxID string) error {
	return mgr.update(ctx, ballotBoxID, func(s *state.MixnetState) error {
		s.IncrementNodeToVisit()
		return nil
	})
}

func (mgr *MixnetStateManager) DecrementRetryCount(ctx context.Context, ballotBoxID string) error {
	return mgr.update(ctx, ballotBoxID, (*state.MixnetState).DecrementRetryCount)
}

func (mgr *MixnetStateManager) SetMixnetError(ctx context.Context, ballotBoxID, msg string) error {
	return mgr.update(ctx, ballotBoxID, func(s *state.MixnetState) error {
		s.SetMixnetError(msg)
		return nil
	})
}

func (mgr *MixnetStateManager) update(ctx context.Context, ballotBoxID string, apply func(*state.MixnetState) error) error {
	s, err := mgr.store.Load(ctx, ballotBoxID)
	if err != nil {
		return err
	}
	if err := apply(s); err != nil {
		return err
	}
	return mgr.store.Save(ctx, s)
}
