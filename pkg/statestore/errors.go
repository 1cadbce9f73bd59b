package statestore

import "github.com/pkg/errors"

var (
	ErrStateNotFound = errors.New("statestore: state not found")
	ErrStateExists   = errors.New("statestore: state already exists")
	ErrCorruptRecord = errors.New("statestore: corrupt record")
)
