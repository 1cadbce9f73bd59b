package state

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrInvalidBallotBox = errors.New("state: invalid ballot box details")

// BallotBoxDetails identifies the ballot box being mixed. Both ids are UUIDs
// kept in their 32 character form without dashes.
type BallotBoxDetails struct {
	ballotBoxID     string
	electionEventID string
}

func NewBallotBoxDetails(ballotBoxID, electionEventID string) (BallotBoxDetails, error) {
	bb, err := canonicalUUID(ballotBoxID)
	if err != nil {
		return BallotBoxDetails{}, errors.WithMessage(err, "ballotBoxId")
	}
	ee, err := canonicalUUID(electionEventID)
	if err != nil {
		return BallotBoxDetails{}, errors.WithMessage(err, "electionEventId")
	}
	return BallotBoxDetails{ballotBoxID: bb, electionEventID: ee}, nil
}

func canonicalUUID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidBallotBox, "%q is not a UUID", id)
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}

func (d BallotBoxDetails) BallotBoxID() string { return d.ballotBoxID }

func (d BallotBoxDetails) ElectionEventID() string { return d.electionEventID }

func (d BallotBoxDetails) IsZero() bool { return d.ballotBoxID == "" }

func (d BallotBoxDetails) String() string {
	return d.electionEventID + "/" + d.ballotBoxID
}
