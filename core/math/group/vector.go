package group

import "fmt"

// Element is anything a Vector can hold: it knows its group and how many
// group members it spans.
type Element[E any] interface {
	Equal(E) bool
	SameGroupAs(E) bool
	Size() int
}

// Vector is an ordered, immutable sequence of elements sharing one group and
// one size. The zero value and nil are empty vectors.
type Vector[E Element[E]] struct {
	elems []E
}

// NewVector checks that all elements share a group and a size.
func NewVector[E Element[E]](elems ...E) (*Vector[E], error) {
	for i := 1; i < len(elems); i++ {
		if !elems[0].SameGroupAs(elems[i]) {
			return nil, fmt.Errorf("%w: element %d", ErrGroupMismatch, i)
		}
		if elems[0].Size() != elems[i].Size() {
			return nil, fmt.Errorf("%w: element %d has size %d, expected %d",
				ErrInconsistentRecipientCount, i, elems[i].Size(), elems[0].Size())
		}
	}
	cpy := make([]E, len(elems))
	copy(cpy, elems)
	return &Vector[E]{elems: cpy}, nil
}

// Len returns the number of elements.
func (v *Vector[E]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

func (v *Vector[E]) IsEmpty() bool { return v.Len() == 0 }

func (v *Vector[E]) At(i int) E { return v.elems[i] }

// Elements returns a copy of the backing slice.
func (v *Vector[E]) Elements() []E {
	if v == nil {
		return nil
	}
	cpy := make([]E, len(v.elems))
	copy(cpy, v.elems)
	return cpy
}

// ElementSize is the common size of the elements, zero when empty.
func (v *Vector[E]) ElementSize() int {
	if v.IsEmpty() {
		return 0
	}
	return v.elems[0].Size()
}

// SameGroupAs compares the groups of the first elements. Empty vectors have
// no group and never match.
func (v *Vector[E]) SameGroupAs(other *Vector[E]) bool {
	if v.IsEmpty() || other.IsEmpty() {
		return false
	}
	return v.elems[0].SameGroupAs(other.elems[0])
}

func (v *Vector[E]) Equal(other *Vector[E]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !v.elems[i].Equal(other.elems[i]) {
			return false
		}
	}
	return true
}

// Append returns a new vector with e at the end.
func (v *Vector[E]) Append(e E) (*Vector[E], error) {
	return NewVector(append(v.Elements(), e)...)
}
