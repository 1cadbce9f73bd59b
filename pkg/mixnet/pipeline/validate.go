package pipeline

import (
	"fmt"
	"strings"

	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/payload"
	"github.com/mr-shifu/mixnet-lib/pkg/mixnet/state"
	"github.com/mr-shifu/mixnet-lib/pkg/signing"
)

// ValidationError lists the state fields a node rejected.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("The following fields present validation errors: [%s]", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ValidateForNode checks that s is addressed to node nodeID, still pending,
// and carries a payload signed by a trusted node.
func ValidateForNode(s *state.MixnetState, nodeID int, verifier signing.Verifier) error {
	var fields []string
	if s.BallotBoxDetails().IsZero() {
		fields = append(fields, "ballotBoxDetails")
	}
	if s.NodeToVisit() != nodeID {
		fields = append(fields, "nodeToVisit")
	}
	if _, failed := s.MixnetError(); failed {
		fields = append(fields, "mixnetError")
	}
	switch p := s.Payload(); {
	case p == nil:
		fields = append(fields, "payload")
	case p.Kind() == payload.KindFinal:
		fields = append(fields, "payload")
	case !p.IsSigned():
		fields = append(fields, "payload.signature")
	case VerifyPayload(verifier, p) != nil:
		fields = append(fields, "payload.signature")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
