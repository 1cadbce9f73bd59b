package zkshuffle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-shifu/mixnet-lib/core/elgamal"
	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

var (
	ErrIncompleteArgument = errors.New("zkshuffle: argument is missing required fields")
	ErrDuplicateField     = errors.New("zkshuffle: field set more than once")
)

type (
	GqVector         = group.Vector[*group.GqElement]
	ZqVector         = group.Vector[*group.ZqElement]
	CiphertextVector = group.Vector[*elgamal.Ciphertext]
)

// fieldSet records which builder fields have been supplied.
type fieldSet struct {
	set  map[string]bool
	dups []string
}

// mark records name as supplied. A repeated call is a duplicate even when
// the value is nil; a first nil value leaves the field missing.
func (f *fieldSet) mark(name string, present bool) {
	if f.set == nil {
		f.set = make(map[string]bool)
	}
	if f.set[name] {
		f.dups = append(f.dups, name)
		return
	}
	f.set[name] = present
}

func (f *fieldSet) has(name string) bool {
	return f.set[name]
}

// require fails on any repeated field, then on any of names not yet set.
func (f *fieldSet) require(names ...string) error {
	if len(f.dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateField, strings.Join(f.dups, ", "))
	}
	var missing []string
	for _, n := range names {
		if !f.set[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteArgument, strings.Join(missing, ", "))
	}
	return nil
}

// sameGroup checks that every Gq element belongs to gq.
func sameGroup(gq *group.GqGroup, elems ...*group.GqElement) error {
	for _, e := range elems {
		if !e.Group().Equal(gq) {
			return fmt.Errorf("%w: expected %s", group.ErrGroupMismatch, gq)
		}
	}
	return nil
}

// sameOrder checks that every exponent has the order of gq.
func sameOrder(gq *group.GqGroup, elems ...*group.ZqElement) error {
	for _, e := range elems {
		if !e.Group().HasSameOrderAs(gq) {
			return fmt.Errorf("%w: exponent order differs from %s", group.ErrGroupMismatch, gq)
		}
	}
	return nil
}

func nonEmpty(name string, length int) error {
	if length == 0 {
		return fmt.Errorf("%w: %s must not be empty", group.ErrInconsistentVectorLength, name)
	}
	return nil
}

func lengthIs(name string, length, expected int) error {
	if length != expected {
		return fmt.Errorf("%w: %s has length %d, expected %d", group.ErrInconsistentVectorLength, name, length, expected)
	}
	return nil
}
