package state

import (
	"testing"

	"github.com/mr-shifu/mixnet-lib/lib/test"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details(t *testing.T) BallotBoxDetails {
	d, err := NewBallotBoxDetails(test.BallotBoxID, test.ElectionEventID)
	require.NoError(t, err)
	return d
}

func newState(t *testing.T) *MixnetState {
	f := test.Small(t)
	s, err := New(details(t), payload.Erase(payload.Unsigned(f.InitialPayload(3))))
	require.NoError(t, err)
	return s
}

func TestBallotBoxDetails(t *testing.T) {
	d := details(t)
	assert.Equal(t, test.BallotBoxID, d.BallotBoxID())
	assert.Equal(t, test.ElectionEventID, d.ElectionEventID())

	dashed, err := NewBallotBoxDetails("0d31a114-8f95-488f-ae68-27391425dc08", test.ElectionEventID)
	require.NoError(t, err)
	assert.Equal(t, d, dashed)

	_, err = NewBallotBoxDetails("not-a-uuid", test.ElectionEventID)
	assert.ErrorIs(t, err, ErrInvalidBallotBox)
	_, err = NewBallotBoxDetails(test.BallotBoxID, "")
	assert.ErrorIs(t, err, ErrInvalidBallotBox)
}

func TestNewState(t *testing.T) {
	s := newState(t)
	assert.Equal(t, 0, s.NodeToVisit())
	assert.Equal(t, InitialRetryCount, s.RetryCount())
	_, failed := s.MixnetError()
	assert.False(t, failed)
	assert.Equal(t, StatusPending, s.Status())
	assert.Equal(t, MixDecProcessing, s.MixDecStatus())

	_, err := New(BallotBoxDetails{}, s.Payload())
	assert.ErrorIs(t, err, ErrInvalidBallotBox)
	_, err = New(details(t), nil)
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestDecrementRetryCount(t *testing.T) {
	s := newState(t)
	for i := 0; i < InitialRetryCount; i++ {
		require.NoError(t, s.DecrementRetryCount())
	}
	assert.Equal(t, 0, s.RetryCount())
	assert.ErrorIs(t, s.DecrementRetryCount(), ErrIllegalState)
	assert.Equal(t, 0, s.RetryCount())
}

func TestIncrementNodeToVisit(t *testing.T) {
	s := newState(t)
	for i := 0; i < 7; i++ {
		s.IncrementNodeToVisit()
	}
	assert.Equal(t, 7, s.NodeToVisit())
}

func TestMixnetError(t *testing.T) {
	s := newState(t)
	s.SetMixnetError("node 2 unreachable")
	s.SetMixnetError("node 2 unreachable")
	msg, failed := s.MixnetError()
	assert.True(t, failed)
	assert.Equal(t, "node 2 unreachable", msg)
	assert.Equal(t, StatusFailed, s.Status())
	assert.Equal(t, MixDecError, s.MixDecStatus())
	// the error is independent of the retry budget
	assert.Equal(t, InitialRetryCount, s.RetryCount())
}

func TestStatusComplete(t *testing.T) {
	f := test.Small(t)
	s := newState(t)
	require.NoError(t, s.SetPayload(payload.Erase(payload.Unsigned(f.FinalPayload(false)))))
	assert.Equal(t, StatusComplete, s.Status())
	assert.Equal(t, MixDecMixed, s.MixDecStatus())
	assert.ErrorIs(t, s.SetPayload(nil), ErrIllegalState)
}

func TestRestore(t *testing.T) {
	s := newState(t)
	msg := "boom"
	r, err := Restore(s.BallotBoxDetails(), s.Payload(), 2, 3, &msg)
	require.NoError(t, err)
	assert.Equal(t, 2, r.NodeToVisit())
	assert.Equal(t, 3, r.RetryCount())
	msg = "changed"
	got, _ := r.MixnetError()
	assert.Equal(t, "boom", got)

	_, err = Restore(s.BallotBoxDetails(), s.Payload(), -1, 3, nil)
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = Restore(s.BallotBoxDetails(), s.Payload(), 0, InitialRetryCount+1, nil)
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = Restore(s.BallotBoxDetails(), s.Payload(), 0, -1, nil)
	assert.ErrorIs(t, err, ErrIllegalState)
}

func TestCloneAndEqual(t *testing.T) {
	s := newState(t)
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.IncrementNodeToVisit()
	assert.False(t, s.Equal(c))
	assert.Equal(t, 0, s.NodeToVisit())

	d := s.Clone()
	d.SetMixnetError("x")
	assert.False(t, s.Equal(d))
}
