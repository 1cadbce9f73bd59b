package statestore

import (
	"context"
	"sort"
	"sync"

	com_statestore "github.com/mr-shifu/mixnet-lib/pkg/common/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/pkg/errors"
)

var _ com_statestore.Store = (*InMemoryStore)(nil)

type InMemoryStore struct {
	lock   sync.RWMutex
	states map[string]*state.MixnetState
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		states: make(map[string]*state.MixnetState),
	}
}

func (s *InMemoryStore) Save(_ context.Context, st *state.MixnetState) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.states[st.BallotBoxDetails().BallotBoxID()] = st.Clone()
	return nil
}

func (s *InMemoryStore) Load(_ context.Context, ballotBoxID string) (*state.MixnetState, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	st, ok := s.states[ballotBoxID]
	if !ok {
		return nil, errors.WithMessage(ErrStateNotFound, ballotBoxID)
	}
	return st.Clone(), nil
}

func (s *InMemoryStore) Delete(_ context.Context, ballotBoxID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.states[ballotBoxID]; !ok {
		return errors.WithMessage(ErrStateNotFound, ballotBoxID)
	}
	delete(s.states, ballotBoxID)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := make([]string, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
