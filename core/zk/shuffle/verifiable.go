package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// VerifiableShuffle is a shuffled ciphertext vector and the argument proving
// it. A single ciphertext cannot be shuffled, so its argument is nil.
type VerifiableShuffle struct {
	shuffled *CiphertextVector
	argument *ShuffleArgument
}

// NewVerifiableShuffle requires an argument exactly when there are at least
// two ciphertexts, and checks that its dimensions cover them.
func NewVerifiableShuffle(shuffled *CiphertextVector, argument *ShuffleArgument) (*VerifiableShuffle, error) {
	size := shuffled.Len()
	switch {
	case size == 0:
		return nil, fmt.Errorf("%w: no shuffled ciphertexts", group.ErrInconsistentVectorLength)
	case size == 1 && argument != nil:
		return nil, fmt.Errorf("%w: a single ciphertext carries no shuffle argument", group.ErrInconsistentVectorLength)
	case size == 1:
		return &VerifiableShuffle{shuffled: shuffled}, nil
	case argument == nil:
		return nil, fmt.Errorf("%w: shuffleArgument is required for %d ciphertexts", ErrIncompleteArgument, size)
	}
	if argument.M()*argument.N() != size {
		return nil, fmt.Errorf("%w: argument covers %d×%d ciphertexts, got %d",
			group.ErrInconsistentVectorLength, argument.M(), argument.N(), size)
	}
	if argument.L() != shuffled.ElementSize() {
		return nil, fmt.Errorf("%w: argument has l = %d, ciphertexts have %d phis",
			group.ErrInconsistentRecipientCount, argument.L(), shuffled.ElementSize())
	}
	if !argument.Group().Equal(shuffled.At(0).Group()) {
		return nil, group.ErrGroupMismatch
	}
	return &VerifiableShuffle{shuffled: shuffled, argument: argument}, nil
}

func (v *VerifiableShuffle) ShuffledCiphertexts() *CiphertextVector { return v.shuffled }

// ShuffleArgument is nil for a single ciphertext.
func (v *VerifiableShuffle) ShuffleArgument() *ShuffleArgument { return v.argument }

func (v *VerifiableShuffle) Group() *group.GqGroup { return v.shuffled.At(0).Group() }

func (v *VerifiableShuffle) Equal(other *VerifiableShuffle) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.shuffled.Equal(other.shuffled) && v.argument.Equal(other.argument)
}
