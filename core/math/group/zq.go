package group

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/mixnet-lib/core/math/arith"
)

// ZqGroup is the additive group of integers modulo q, used for exponents.
type ZqGroup struct {
	q *arith.Modulus
}

// ZqGroupSameOrderAs derives the exponent group of gq.
func ZqGroupSameOrderAs(gq *GqGroup) *ZqGroup {
	return &ZqGroup{q: gq.q}
}

func (gr *ZqGroup) Q() *big.Int { return gr.q.Big() }

func (gr *ZqGroup) Order() *big.Int { return gr.q.Big() }

func (gr *ZqGroup) Equal(other *ZqGroup) bool {
	if gr == nil || other == nil {
		return gr == other
	}
	return gr.q.Equal(other.q)
}

func (gr *ZqGroup) HasSameOrderAs(other interface{ Order() *big.Int }) bool {
	return gr.Order().Cmp(other.Order()) == 0
}

func (gr *ZqGroup) String() string {
	return fmt.Sprintf("ZqGroup(q=%s)", gr.Q())
}

// ZqElement is an integer in [0, q).
type ZqElement struct {
	value *saferith.Nat
	group *ZqGroup
}

// NewZqElement fails with ErrInvalidGroupMember unless 0 ≤ v < q.
func NewZqElement(v *big.Int, group *ZqGroup) (*ZqElement, error) {
	if v == nil || group == nil {
		return nil, ErrInvalidGroupMember
	}
	if !group.q.Contains(v) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrInvalidGroupMember, v, group)
	}
	return &ZqElement{value: group.q.NatFromBig(v), group: group}, nil
}

func (e *ZqElement) Value() *big.Int { return e.value.Big() }

func (e *ZqElement) Group() *ZqGroup { return e.group }

func (e *ZqElement) Size() int { return 1 }

// SameGroupAs compares the order only; Zq groups are fully described by it.
func (e *ZqElement) SameGroupAs(other *ZqElement) bool {
	return e.group.Equal(other.group)
}

func (e *ZqElement) Equal(other *ZqElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.SameGroupAs(other) && e.Value().Cmp(other.Value()) == 0
}

func (e *ZqElement) IsZero() bool {
	return e.value.EqZero() == 1
}

func (e *ZqElement) Add(other *ZqElement) (*ZqElement, error) {
	if !e.SameGroupAs(other) {
		return nil, ErrGroupMismatch
	}
	return &ZqElement{value: e.group.q.Add(e.value, other.value), group: e.group}, nil
}

func (e *ZqElement) Subtract(other *ZqElement) (*ZqElement, error) {
	if !e.SameGroupAs(other) {
		return nil, ErrGroupMismatch
	}
	return &ZqElement{value: e.group.q.Sub(e.value, other.value), group: e.group}, nil
}

func (e *ZqElement) Multiply(other *ZqElement) (*ZqElement, error) {
	if !e.SameGroupAs(other) {
		return nil, ErrGroupMismatch
	}
	return &ZqElement{value: e.group.q.Mul(e.value, other.value), group: e.group}, nil
}

func (e *ZqElement) Negate() *ZqElement {
	return &ZqElement{value: e.group.q.Neg(e.value), group: e.group}
}

// Invert returns e⁻¹ as e^(q-2), q being prime. Zero has no inverse.
func (e *ZqElement) Invert() (*ZqElement, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("%w: zero has no inverse", ErrInvalidGroupMember)
	}
	return &ZqElement{value: e.group.q.Exp(e.value, e.group.q.Minus(2)), group: e.group}, nil
}

func (e *ZqElement) String() string {
	return e.Value().String()
}
