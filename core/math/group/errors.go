package group

import "errors"

var (
	ErrInvalidGroup               = errors.New("group: invalid group parameters")
	ErrInvalidGroupMember         = errors.New("group: value is not a member of the group")
	ErrGroupMismatch              = errors.New("group: elements belong to different groups")
	ErrInconsistentRecipientCount = errors.New("group: elements have different sizes")
	ErrInconsistentVectorLength   = errors.New("group: vector lengths do not match")
)
