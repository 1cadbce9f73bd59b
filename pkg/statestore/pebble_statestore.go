package statestore

import (
	"bytes"
	"context"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/mixnet-lib/core/hash"
	"github.com/mr-shifu/mixnet-lib/pkg/codec"
	com_statestore "github.com/mr-shifu/mixnet-lib/pkg/common/statestore"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/pkg/errors"
)

var _ com_statestore.Store = (*PebbleStore)(nil)

var statePrefix = []byte("mixnet/state/")

// record is the stored envelope. State holds the canonical state json, so a
// record stays readable by anything that speaks the wire format.
type record struct {
	State       []byte `cbor:"1,keyasint"`
	Fingerprint string `cbor:"2,keyasint"`
	UpdatedAt   int64  `cbor:"3,keyasint"`
}

type PebbleStore struct {
	db  *pebble.DB
	now func() time.Time
}

// OpenPebbleStore opens or creates a store at path. A nil opts uses pebble
// defaults.
func OpenPebbleStore(path string, opts *pebble.Options) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "open state store")
	}
	return &PebbleStore{db: db, now: time.Now}, nil
}

func stateKey(ballotBoxID string) []byte {
	return append(append([]byte(nil), statePrefix...), ballotBoxID...)
}

func (s *PebbleStore) Save(ctx context.Context, st *state.MixnetState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	canonical, err := codec.EncodeState(st)
	if err != nil {
		return errors.Wrap(err, "save state")
	}
	value, err := cbor.Marshal(record{
		State:       canonical,
		Fingerprint: hash.Fingerprint(hash.DomainState, canonical),
		UpdatedAt:   s.now().UnixNano(),
	})
	if err != nil {
		return errors.Wrap(err, "save state")
	}
	key := stateKey(st.BallotBoxDetails().BallotBoxID())
	return errors.Wrap(s.db.Set(key, value, &pebble.WriteOptions{Sync: true}), "save state")
}

func (s *PebbleStore) Load(ctx context.Context, ballotBoxID string) (*state.MixnetState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, err := s.record(ballotBoxID)
	if err != nil {
		return nil, err
	}
	if hash.Fingerprint(hash.DomainState, rec.State) != rec.Fingerprint {
		return nil, errors.WithMessagef(ErrCorruptRecord, "%s: fingerprint mismatch", ballotBoxID)
	}
	st, err := codec.DecodeState(rec.State)
	if err != nil {
		return nil, errors.WithMessage(ErrCorruptRecord, err.Error())
	}
	return st, nil
}

// UpdatedAt reports when the state of ballotBoxID was last saved.
func (s *PebbleStore) UpdatedAt(ballotBoxID string) (time.Time, error) {
	rec, err := s.record(ballotBoxID)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, rec.UpdatedAt), nil
}

func (s *PebbleStore) record(ballotBoxID string) (*record, error) {
	value, closer, err := s.db.Get(stateKey(ballotBoxID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithMessage(ErrStateNotFound, ballotBoxID)
		}
		return nil, errors.Wrap(err, "load state")
	}
	defer closer.Close()

	var rec record
	if err := cbor.Unmarshal(value, &rec); err != nil {
		return nil, errors.WithMessage(ErrCorruptRecord, err.Error())
	}
	return &rec, nil
}

func (s *PebbleStore) Delete(ctx context.Context, ballotBoxID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := stateKey(ballotBoxID)
	_, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.WithMessage(ErrStateNotFound, ballotBoxID)
		}
		return errors.Wrap(err, "delete state")
	}
	closer.Close()
	return errors.Wrap(s.db.Delete(key, &pebble.WriteOptions{Sync: true}), "delete state")
}

func (s *PebbleStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	upper := append(append([]byte(nil), statePrefix[:len(statePrefix)-1]...), statePrefix[len(statePrefix)-1]+1)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: statePrefix,
		UpperBound: upper,
	})
	if err != nil {
		return nil, errors.Wrap(err, "list states")
	}
	defer iter.Close()

	ids := []string{}
	for iter.First(); iter.Valid(); iter.Next() {
		ids = append(ids, string(bytes.TrimPrefix(iter.Key(), statePrefix)))
	}
	return ids, nil
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}
