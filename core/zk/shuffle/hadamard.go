package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// HadamardArgument proves that a committed vector is the entry-wise product
// of the m committed columns, reducing the claim to a ZeroArgument.
type HadamardArgument struct {
	cb   *GqVector
	zero *ZeroArgument
}

func (h *HadamardArgument) Cb() *GqVector { return h.cb }

func (h *HadamardArgument) ZeroArgument() *ZeroArgument { return h.zero }

func (h *HadamardArgument) M() int { return h.cb.Len() }

func (h *HadamardArgument) N() int { return h.zero.N() }

func (h *HadamardArgument) Group() *group.GqGroup { return h.cb.At(0).Group() }

func (h *HadamardArgument) Equal(other *HadamardArgument) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.cb.Equal(other.cb) && h.zero.Equal(other.zero)
}

type HadamardArgumentBuilder struct {
	fields fieldSet
	arg    HadamardArgument
}

func NewHadamardArgumentBuilder() *HadamardArgumentBuilder {
	return &HadamardArgumentBuilder{}
}

func (b *HadamardArgumentBuilder) SetCb(v *GqVector) *HadamardArgumentBuilder {
	b.fields.mark("c_b", v != nil)
	b.arg.cb = v
	return b
}

func (b *HadamardArgumentBuilder) SetZeroArgument(v *ZeroArgument) *HadamardArgumentBuilder {
	b.fields.mark("zeroArgument", v != nil)
	b.arg.zero = v
	return b
}

func (b *HadamardArgumentBuilder) Build() (*HadamardArgument, error) {
	if err := b.fields.require("c_b", "zeroArgument"); err != nil {
		return nil, err
	}
	h := b.arg
	if h.cb.Len() < 2 {
		return nil, fmt.Errorf("%w: c_b has length %d, a Hadamard argument needs m ≥ 2", group.ErrInconsistentVectorLength, h.cb.Len())
	}
	if err := lengthIs("c_b", h.cb.Len(), h.zero.M()); err != nil {
		return nil, err
	}
	if err := sameGroup(h.zero.Group(), h.cb.At(0)); err != nil {
		return nil, err
	}
	return &h, nil
}
