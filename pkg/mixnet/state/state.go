package state

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/pkg/errors"
)

// InitialRetryCount is the number of failed hops a ballot box may absorb.
const InitialRetryCount = 5

var ErrIllegalState = errors.New("state: illegal state transition")

type Status int

const (
	StatusPending Status = iota
	StatusComplete
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MixDecStatus is the externally reported mixing status of a ballot box.
type MixDecStatus string

const (
	MixDecNotFound   MixDecStatus = "NOT_FOUND"
	MixDecProcessing MixDecStatus = "PROCESSING"
	MixDecMixed      MixDecStatus = "MIXED"
	MixDecError      MixDecStatus = "ERROR"
	MixDecNotClosed  MixDecStatus = "NOT_CLOSED"
)

// MixnetState tracks one ballot box through the chain of mixing nodes. It is
// not safe for concurrent mutation; each ballot box owns its own state.
type MixnetState struct {
	details     BallotBoxDetails
	payload     *payload.Signed[payload.Payload]
	nodeToVisit int
	retryCount  int
	mixnetError *string
}

// New starts a ballot box at node 0 with a full retry budget.
func New(details BallotBoxDetails, p *payload.Signed[payload.Payload]) (*MixnetState, error) {
	return Restore(details, p, 0, InitialRetryCount, nil)
}

// Restore rebuilds a state from persisted fields.
func Restore(details BallotBoxDetails, p *payload.Signed[payload.Payload], nodeToVisit, retryCount int, mixnetError *string) (*MixnetState, error) {
	if details.IsZero() {
		return nil, errors.WithMessage(ErrInvalidBallotBox, "missing ballot box details")
	}
	if p == nil {
		return nil, errors.WithMessage(ErrIllegalState, "missing payload")
	}
	if nodeToVisit < 0 {
		return nil, errors.WithMessagef(ErrIllegalState, "negative nodeToVisit %d", nodeToVisit)
	}
	if retryCount < 0 || retryCount > InitialRetryCount {
		return nil, errors.WithMessagef(ErrIllegalState, "retryCount %d outside [0, %d]", retryCount, InitialRetryCount)
	}
	var errCopy *string
	if mixnetError != nil {
		msg := *mixnetError
		errCopy = &msg
	}
	return &MixnetState{
		details:     details,
		payload:     p,
		nodeToVisit: nodeToVisit,
		retryCount:  retryCount,
		mixnetError: errCopy,
	}, nil
}

func (s *MixnetState) BallotBoxDetails() BallotBoxDetails { return s.details }

func (s *MixnetState) Payload() *payload.Signed[payload.Payload] { return s.payload }

func (s *MixnetState) NodeToVisit() int { return s.nodeToVisit }

func (s *MixnetState) RetryCount() int { return s.retryCount }

// MixnetError returns the terminal error, if any.
func (s *MixnetState) MixnetError() (string, bool) {
	if s.mixnetError == nil {
		return "", false
	}
	return *s.mixnetError, true
}

// SetPayload replaces the payload after a successful hop.
func (s *MixnetState) SetPayload(p *payload.Signed[payload.Payload]) error {
	if p == nil {
		return errors.WithMessage(ErrIllegalState, "missing payload")
	}
	s.payload = p
	return nil
}

// IncrementNodeToVisit moves on to the next node. The number of nodes is
// known to the caller only.
func (s *MixnetState) IncrementNodeToVisit() {
	s.nodeToVisit++
}

// DecrementRetryCount consumes one retry. Calling it with no retries left is
// a caller bug reported as ErrIllegalState.
func (s *MixnetState) DecrementRetryCount() error {
	if s.retryCount < 1 {
		return errors.WithMessage(ErrIllegalState, "no retries left")
	}
	s.retryCount--
	return nil
}

// SetMixnetError marks mixing of this ballot box as failed.
func (s *MixnetState) SetMixnetError(msg string) {
	s.mixnetError = &msg
}

// Status derives the pipeline position: a recorded error wins over a final
// payload.
func (s *MixnetState) Status() Status {
	switch {
	case s.mixnetError != nil:
		return StatusFailed
	case s.payload.Kind() == payload.KindFinal:
		return StatusComplete
	default:
		return StatusPending
	}
}

func (s *MixnetState) MixDecStatus() MixDecStatus {
	switch s.Status() {
	case StatusFailed:
		return MixDecError
	case StatusComplete:
		return MixDecMixed
	default:
		return MixDecProcessing
	}
}

// Clone returns a copy sharing the immutable payload.
func (s *MixnetState) Clone() *MixnetState {
	cpy := *s
	if s.mixnetError != nil {
		msg := *s.mixnetError
		cpy.mixnetError = &msg
	}
	return &cpy
}

func (s *MixnetState) Equal(other *MixnetState) bool {
	if s == nil || other == nil {
		return s == other
	}
	e1, ok1 := s.MixnetError()
	e2, ok2 := other.MixnetError()
	return s.details == other.details &&
		s.payload.Equal(other.payload) &&
		s.nodeToVisit == other.nodeToVisit &&
		s.retryCount == other.retryCount &&
		ok1 == ok2 && e1 == e2
}
