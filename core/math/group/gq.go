package group

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/mixnet-lib/core/math/arith"
)

// primality rounds for group parameter validation
const primeRounds = 32

// GqGroup is the order-q subgroup of quadratic residues of (Z/pZ)*, with p a
// safe prime and q = (p-1)/2.
type GqGroup struct {
	p, q *arith.Modulus
	g    *saferith.Nat
}

// NewGqGroup validates (p, q, g) and returns the group they describe.
func NewGqGroup(p, q, g *big.Int) (*GqGroup, error) {
	if p == nil || q == nil || g == nil {
		return nil, ErrInvalidGroup
	}
	if p.Cmp(big.NewInt(5)) < 0 || !p.ProbablyPrime(primeRounds) {
		return nil, fmt.Errorf("%w: p is not prime", ErrInvalidGroup)
	}
	if new(big.Int).Rsh(p, 1).Cmp(q) != 0 {
		return nil, fmt.Errorf("%w: q != (p-1)/2", ErrInvalidGroup)
	}
	if !q.ProbablyPrime(primeRounds) {
		return nil, fmt.Errorf("%w: p is not a safe prime", ErrInvalidGroup)
	}
	pMod, err := arith.ModulusFromBig(p)
	if err != nil {
		return nil, ErrInvalidGroup
	}
	qMod, err := arith.ModulusFromBig(q)
	if err != nil {
		return nil, ErrInvalidGroup
	}
	group := &GqGroup{p: pMod, q: qMod}
	if g.Cmp(big.NewInt(1)) <= 0 || !group.isMember(g) {
		return nil, fmt.Errorf("%w: g does not generate the order q subgroup", ErrInvalidGroup)
	}
	group.g = pMod.NatFromBig(g)
	return group, nil
}

// isMember checks 1 ≤ x < p and xᵠ = 1 (mod p).
func (gr *GqGroup) isMember(x *big.Int) bool {
	if x.Sign() <= 0 || !gr.p.Contains(x) {
		return false
	}
	res := gr.p.Exp(gr.p.NatFromBig(x), gr.q.Nat())
	return res.Big().Cmp(big.NewInt(1)) == 0
}

func (gr *GqGroup) P() *big.Int { return gr.p.Big() }

func (gr *GqGroup) Q() *big.Int { return gr.q.Big() }

func (gr *GqGroup) G() *big.Int { return gr.g.Big() }

// Order returns q.
func (gr *GqGroup) Order() *big.Int { return gr.q.Big() }

// Generator returns g as a group element.
func (gr *GqGroup) Generator() *GqElement {
	return &GqElement{value: gr.g, group: gr}
}

// Identity returns the neutral element 1.
func (gr *GqGroup) Identity() *GqElement {
	return &GqElement{value: gr.p.NatFromBig(big.NewInt(1)), group: gr}
}

// Equal reports whether both groups share (p, q, g).
func (gr *GqGroup) Equal(other *GqGroup) bool {
	if gr == nil || other == nil {
		return gr == other
	}
	if gr == other {
		return true
	}
	return gr.p.Equal(other.p) && gr.q.Equal(other.q) && gr.G().Cmp(other.G()) == 0
}

// HasSameOrderAs compares the group order only.
func (gr *GqGroup) HasSameOrderAs(other interface{ Order() *big.Int }) bool {
	return gr.Order().Cmp(other.Order()) == 0
}

func (gr *GqGroup) String() string {
	return fmt.Sprintf("GqGroup(p=%s, q=%s, g=%s)", gr.P(), gr.Q(), gr.G())
}

// GqElement is a member of a GqGroup.
type GqElement struct {
	value *saferith.Nat
	group *GqGroup
}

// NewGqElement returns v as a member of group, failing with
// ErrInvalidGroupMember when v is outside 1 ≤ v < p or not a quadratic residue.
func NewGqElement(v *big.Int, group *GqGroup) (*GqElement, error) {
	if v == nil || group == nil {
		return nil, ErrInvalidGroupMember
	}
	if !group.isMember(v) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrInvalidGroupMember, v, group)
	}
	return &GqElement{value: group.p.NatFromBig(v), group: group}, nil
}

func (e *GqElement) Value() *big.Int { return e.value.Big() }

func (e *GqElement) Group() *GqGroup { return e.group }

// Size is always one for a single element.
func (e *GqElement) Size() int { return 1 }

func (e *GqElement) SameGroupAs(other *GqElement) bool {
	return e.group.Equal(other.group)
}

func (e *GqElement) Equal(other *GqElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.SameGroupAs(other) && e.Value().Cmp(other.Value()) == 0
}

// Multiply returns e⋅other.
func (e *GqElement) Multiply(other *GqElement) (*GqElement, error) {
	if !e.SameGroupAs(other) {
		return nil, ErrGroupMismatch
	}
	return &GqElement{value: e.group.p.Mul(e.value, other.value), group: e.group}, nil
}

// Invert returns e⁻¹, computed as eᵠ⁻¹ since every member has order dividing q.
func (e *GqElement) Invert() *GqElement {
	return &GqElement{value: e.group.p.Exp(e.value, e.group.q.Minus(1)), group: e.group}
}

// Divide returns e⋅other⁻¹.
func (e *GqElement) Divide(other *GqElement) (*GqElement, error) {
	if !e.SameGroupAs(other) {
		return nil, ErrGroupMismatch
	}
	return e.Multiply(other.Invert())
}

// Exponentiate returns eˣ. The exponent group must have the same order.
func (e *GqElement) Exponentiate(x *ZqElement) (*GqElement, error) {
	if !e.group.HasSameOrderAs(x.group) {
		return nil, ErrGroupMismatch
	}
	return &GqElement{value: e.group.p.Exp(e.value, x.value), group: e.group}, nil
}

func (e *GqElement) String() string {
	return e.Value().String()
}
