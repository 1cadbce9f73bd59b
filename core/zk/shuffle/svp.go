package zkshuffle

import (
	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// SingleValueProductArgument proves that the entries of a committed vector of
// size n multiply to a public value.
type SingleValueProductArgument struct {
	cd, cdelta, cDelta *group.GqElement
	aTilde, bTilde     *ZqVector
	rTilde, sTilde     *group.ZqElement
}

func (s *SingleValueProductArgument) Cd() *group.GqElement { return s.cd }

func (s *SingleValueProductArgument) CLowerDelta() *group.GqElement { return s.cdelta }

func (s *SingleValueProductArgument) CUpperDelta() *group.GqElement { return s.cDelta }

func (s *SingleValueProductArgument) ATilde() *ZqVector { return s.aTilde }

func (s *SingleValueProductArgument) BTilde() *ZqVector { return s.bTilde }

func (s *SingleValueProductArgument) RTilde() *group.ZqElement { return s.rTilde }

func (s *SingleValueProductArgument) STilde() *group.ZqElement { return s.sTilde }

func (s *SingleValueProductArgument) N() int { return s.aTilde.Len() }

func (s *SingleValueProductArgument) Group() *group.GqGroup { return s.cd.Group() }

func (s *SingleValueProductArgument) Equal(other *SingleValueProductArgument) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.cd.Equal(other.cd) && s.cdelta.Equal(other.cdelta) && s.cDelta.Equal(other.cDelta) &&
		s.aTilde.Equal(other.aTilde) && s.bTilde.Equal(other.bTilde) &&
		s.rTilde.Equal(other.rTilde) && s.sTilde.Equal(other.sTilde)
}

type SingleValueProductArgumentBuilder struct {
	fields fieldSet
	arg    SingleValueProductArgument
}

func NewSingleValueProductArgumentBuilder() *SingleValueProductArgumentBuilder {
	return &SingleValueProductArgumentBuilder{}
}

func (b *SingleValueProductArgumentBuilder) SetCd(v *group.GqElement) *SingleValueProductArgumentBuilder {
	b.fields.mark("c_d", v != nil)
	b.arg.cd = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetCLowerDelta(v *group.GqElement) *SingleValueProductArgumentBuilder {
	b.fields.mark("c_delta", v != nil)
	b.arg.cdelta = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetCUpperDelta(v *group.GqElement) *SingleValueProductArgumentBuilder {
	b.fields.mark("c_Delta", v != nil)
	b.arg.cDelta = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetATilde(v *ZqVector) *SingleValueProductArgumentBuilder {
	b.fields.mark("a_tilde", v != nil)
	b.arg.aTilde = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetBTilde(v *ZqVector) *SingleValueProductArgumentBuilder {
	b.fields.mark("b_tilde", v != nil)
	b.arg.bTilde = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetRTilde(v *group.ZqElement) *SingleValueProductArgumentBuilder {
	b.fields.mark("r_tilde", v != nil)
	b.arg.rTilde = v
	return b
}

func (b *SingleValueProductArgumentBuilder) SetSTilde(v *group.ZqElement) *SingleValueProductArgumentBuilder {
	b.fields.mark("s_tilde", v != nil)
	b.arg.sTilde = v
	return b
}

func (b *SingleValueProductArgumentBuilder) Build() (*SingleValueProductArgument, error) {
	if err := b.fields.require("c_d", "c_delta", "c_Delta", "a_tilde", "b_tilde", "r_tilde", "s_tilde"); err != nil {
		return nil, err
	}
	s := b.arg
	if err := nonEmpty("a_tilde", s.aTilde.Len()); err != nil {
		return nil, err
	}
	if err := lengthIs("b_tilde", s.bTilde.Len(), s.aTilde.Len()); err != nil {
		return nil, err
	}
	gq := s.cd.Group()
	if err := sameGroup(gq, s.cdelta, s.cDelta); err != nil {
		return nil, err
	}
	if err := sameOrder(gq, s.aTilde.At(0), s.bTilde.At(0), s.rTilde, s.sTilde); err != nil {
		return nil, err
	}
	return &s, nil
}
