package pipeline

import "github.com/pkg/errors"

var (
	// ErrValidation marks input a node refuses to process. It is never retried.
	ErrValidation = errors.New("pipeline: validation failed")

	// ErrHopFailed marks a node failure that consumes one retry.
	ErrHopFailed = errors.New("pipeline: hop failed")
)
