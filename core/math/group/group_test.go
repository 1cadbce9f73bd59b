package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroup(t *testing.T, p, q, g int64) *GqGroup {
	gr, err := NewGqGroup(big.NewInt(p), big.NewInt(q), big.NewInt(g))
	require.NoError(t, err)
	return gr
}

func gq(t *testing.T, v int64, gr *GqGroup) *GqElement {
	e, err := NewGqElement(big.NewInt(v), gr)
	require.NoError(t, err)
	return e
}

func zq(t *testing.T, v int64, gr *ZqGroup) *ZqElement {
	e, err := NewZqElement(big.NewInt(v), gr)
	require.NoError(t, err)
	return e
}

func TestNewGqGroup(t *testing.T) {
	gr := newGroup(t, 23, 11, 2)
	assert.Equal(t, int64(23), gr.P().Int64())
	assert.Equal(t, int64(11), gr.Q().Int64())
	assert.Equal(t, int64(2), gr.G().Int64())

	cases := []struct {
		name    string
		p, q, g int64
	}{
		{"p not prime", 21, 10, 4},
		{"q mismatch", 23, 10, 2},
		{"not a safe prime", 13, 6, 3},
		{"generator is one", 23, 11, 1},
		{"generator not a residue", 23, 11, 5},
		{"generator out of range", 23, 11, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGqGroup(big.NewInt(tc.p), big.NewInt(tc.q), big.NewInt(tc.g))
			assert.ErrorIs(t, err, ErrInvalidGroup)
		})
	}
}

func TestGroupEquality(t *testing.T) {
	a := newGroup(t, 11, 5, 3)
	b := newGroup(t, 11, 5, 3)
	c := newGroup(t, 11, 5, 4)
	d := newGroup(t, 23, 11, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.HasSameOrderAs(c))
	assert.False(t, a.HasSameOrderAs(d))

	zqA := ZqGroupSameOrderAs(a)
	assert.True(t, zqA.Equal(ZqGroupSameOrderAs(c)))
	assert.True(t, zqA.HasSameOrderAs(a))
	assert.False(t, zqA.Equal(ZqGroupSameOrderAs(d)))
}

func TestGqElementMembership(t *testing.T) {
	gr := newGroup(t, 11, 5, 3)
	residues := map[int64]bool{1: true, 3: true, 4: true, 5: true, 9: true}
	for v := int64(-1); v <= 12; v++ {
		_, err := NewGqElement(big.NewInt(v), gr)
		if residues[v] {
			assert.NoError(t, err, "value %d", v)
		} else {
			assert.ErrorIs(t, err, ErrInvalidGroupMember, "value %d", v)
		}
	}

	gr23 := newGroup(t, 23, 11, 2)
	four := gq(t, 4, gr23)
	assert.Equal(t, int64(4), four.Value().Int64())
	assert.True(t, four.Group().Equal(gr23))
}

func TestGqElementOperations(t *testing.T) {
	gr := newGroup(t, 11, 5, 3)
	zqGroup := ZqGroupSameOrderAs(gr)

	three, nine := gq(t, 3, gr), gq(t, 9, gr)

	prod, err := three.Multiply(nine)
	require.NoError(t, err)
	assert.Equal(t, int64(5), prod.Value().Int64())

	inv := three.Invert()
	assert.Equal(t, int64(4), inv.Value().Int64())

	quot, err := prod.Divide(nine)
	require.NoError(t, err)
	assert.True(t, quot.Equal(three))

	sq, err := three.Exponentiate(zq(t, 2, zqGroup))
	require.NoError(t, err)
	assert.True(t, sq.Equal(nine))

	assert.True(t, gr.Generator().Equal(three))
	assert.Equal(t, int64(1), gr.Identity().Value().Int64())

	other := newGroup(t, 11, 5, 4)
	_, err = three.Multiply(gq(t, 3, other))
	assert.ErrorIs(t, err, ErrGroupMismatch)
	_, err = three.Divide(gq(t, 3, other))
	assert.ErrorIs(t, err, ErrGroupMismatch)

	// exponent groups only need the same order
	_, err = three.Exponentiate(zq(t, 1, ZqGroupSameOrderAs(other)))
	assert.NoError(t, err)
	_, err = three.Exponentiate(zq(t, 1, ZqGroupSameOrderAs(newGroup(t, 23, 11, 2))))
	assert.ErrorIs(t, err, ErrGroupMismatch)
}

func TestZqElement(t *testing.T) {
	gr := ZqGroupSameOrderAs(newGroup(t, 11, 5, 3))

	_, err := NewZqElement(big.NewInt(5), gr)
	assert.ErrorIs(t, err, ErrInvalidGroupMember)
	_, err = NewZqElement(big.NewInt(-1), gr)
	assert.ErrorIs(t, err, ErrInvalidGroupMember)

	two, four := zq(t, 2, gr), zq(t, 4, gr)

	sum, err := two.Add(four)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Value().Int64())

	diff, err := two.Subtract(four)
	require.NoError(t, err)
	assert.Equal(t, int64(3), diff.Value().Int64())

	prod, err := two.Multiply(four)
	require.NoError(t, err)
	assert.Equal(t, int64(3), prod.Value().Int64())

	assert.Equal(t, int64(3), two.Negate().Value().Int64())

	inv, err := two.Invert()
	require.NoError(t, err)
	assert.Equal(t, int64(3), inv.Value().Int64())

	_, err = zq(t, 0, gr).Invert()
	assert.ErrorIs(t, err, ErrInvalidGroupMember)

	_, err = two.Add(zq(t, 2, ZqGroupSameOrderAs(newGroup(t, 23, 11, 2))))
	assert.ErrorIs(t, err, ErrGroupMismatch)
}

func TestVector(t *testing.T) {
	gr := newGroup(t, 11, 5, 3)
	v, err := NewVector(gq(t, 4, gr), gq(t, 5, gr), gq(t, 9, gr))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.ElementSize())
	assert.Equal(t, int64(5), v.At(1).Value().Int64())

	w, err := NewVector(gq(t, 4, gr), gq(t, 5, gr), gq(t, 9, gr))
	require.NoError(t, err)
	assert.True(t, v.Equal(w))
	assert.True(t, v.SameGroupAs(w))

	// order is significant
	u, err := NewVector(gq(t, 5, gr), gq(t, 4, gr), gq(t, 9, gr))
	require.NoError(t, err)
	assert.False(t, v.Equal(u))

	_, err = NewVector(gq(t, 4, gr), gq(t, 4, newGroup(t, 23, 11, 2)))
	assert.ErrorIs(t, err, ErrGroupMismatch)

	empty, err := NewVector[*GqElement]()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.ElementSize())
	assert.False(t, empty.SameGroupAs(v))

	var nilVec *Vector[*GqElement]
	assert.Equal(t, 0, nilVec.Len())
	assert.True(t, nilVec.Equal(empty))

	longer, err := v.Append(gq(t, 1, gr))
	require.NoError(t, err)
	assert.Equal(t, 4, longer.Len())
	assert.Equal(t, 3, v.Len())

	elems := v.Elements()
	elems[0] = gq(t, 1, gr)
	assert.Equal(t, int64(4), v.At(0).Value().Int64())
}
