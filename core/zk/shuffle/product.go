package zkshuffle

import (
	"fmt"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// ProductArgument comes in two shapes. With a single column (m = 1) it is a
// bare SingleValueProductArgument; otherwise it also carries the commitment
// c_b and a HadamardArgument over the m columns.
type ProductArgument struct {
	cb       *group.GqElement
	hadamard *HadamardArgument
	svp      *SingleValueProductArgument
}

// Cb is nil for the single-column shape.
func (p *ProductArgument) Cb() *group.GqElement { return p.cb }

// HadamardArgument is nil for the single-column shape.
func (p *ProductArgument) HadamardArgument() *HadamardArgument { return p.hadamard }

func (p *ProductArgument) SingleValueProductArgument() *SingleValueProductArgument { return p.svp }

// HasHadamard selects between the two shapes.
func (p *ProductArgument) HasHadamard() bool { return p.hadamard != nil }

func (p *ProductArgument) M() int {
	if p.hadamard == nil {
		return 1
	}
	return p.hadamard.M()
}

func (p *ProductArgument) N() int { return p.svp.N() }

func (p *ProductArgument) Group() *group.GqGroup { return p.svp.Group() }

func (p *ProductArgument) Equal(other *ProductArgument) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.cb.Equal(other.cb) && p.hadamard.Equal(other.hadamard) && p.svp.Equal(other.svp)
}

type ProductArgumentBuilder struct {
	fields fieldSet
	arg    ProductArgument
}

func NewProductArgumentBuilder() *ProductArgumentBuilder {
	return &ProductArgumentBuilder{}
}

func (b *ProductArgumentBuilder) SetCb(v *group.GqElement) *ProductArgumentBuilder {
	b.fields.mark("c_b", v != nil)
	b.arg.cb = v
	return b
}

func (b *ProductArgumentBuilder) SetHadamardArgument(v *HadamardArgument) *ProductArgumentBuilder {
	b.fields.mark("hadamardArgument", v != nil)
	b.arg.hadamard = v
	return b
}

func (b *ProductArgumentBuilder) SetSingleValueProductArgument(v *SingleValueProductArgument) *ProductArgumentBuilder {
	b.fields.mark("singleValueProductArgument", v != nil)
	b.arg.svp = v
	return b
}

func (b *ProductArgumentBuilder) Build() (*ProductArgument, error) {
	required := []string{"singleValueProductArgument"}
	if b.fields.has("hadamardArgument") || b.fields.has("c_b") {
		required = append(required, "c_b", "hadamardArgument")
	}
	if err := b.fields.require(required...); err != nil {
		return nil, err
	}
	p := b.arg
	if p.hadamard == nil {
		return &p, nil
	}
	if p.hadamard.N() != p.svp.N() {
		return nil, fmt.Errorf("%w: hadamard argument has n = %d, single value product argument has n = %d",
			group.ErrInconsistentVectorLength, p.hadamard.N(), p.svp.N())
	}
	if err := sameGroup(p.svp.Group(), p.cb, p.hadamard.Cb().At(0)); err != nil {
		return nil, err
	}
	return &p, nil
}
