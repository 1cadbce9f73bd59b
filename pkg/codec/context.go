package codec

import (
	"strconv"

	"github.com/mr-shifu/mixnet-lib/core/math/group"
)

// GroupContext is the encryption group of the document being decoded. Every
// element in a payload is serialized bare, so decoders of group dependent
// values take the context as an explicit argument.
type GroupContext struct {
	gq *group.GqGroup
	zq *group.ZqGroup
}

// NewGroupContext panics on a nil group.
func NewGroupContext(gq *group.GqGroup) *GroupContext {
	if gq == nil {
		panic("codec: nil encryption group")
	}
	return &GroupContext{gq: gq, zq: group.ZqGroupSameOrderAs(gq)}
}

func (c *GroupContext) Gq() *group.GqGroup { return c.gq }

func (c *GroupContext) Zq() *group.ZqGroup { return c.zq }

// established guards every group dependent decoder. Decoding before the
// encryption group is known is a programming error.
func (c *GroupContext) established() {
	if c == nil || c.gq == nil {
		panic("codec: group dependent value decoded before the encryption group")
	}
}

func (c *GroupContext) gqElement(path, s string) (*group.GqElement, error) {
	c.established()
	v, err := DecodeHex(s)
	if err != nil {
		return nil, at(path, err)
	}
	e, err := group.NewGqElement(v, c.gq)
	if err != nil {
		return nil, at(path, err)
	}
	return e, nil
}

func (c *GroupContext) zqElement(path, s string) (*group.ZqElement, error) {
	c.established()
	v, err := DecodeHex(s)
	if err != nil {
		return nil, at(path, err)
	}
	e, err := group.NewZqElement(v, c.zq)
	if err != nil {
		return nil, at(path, err)
	}
	return e, nil
}

func (c *GroupContext) gqVector(path string, ss []string) (*group.Vector[*group.GqElement], error) {
	elems := make([]*group.GqElement, len(ss))
	for i, s := range ss {
		e, err := c.gqElement(index(path, i), s)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	vec, err := group.NewVector(elems...)
	if err != nil {
		return nil, at(path, err)
	}
	return vec, nil
}

func (c *GroupContext) zqVector(path string, ss []string) (*group.Vector[*group.ZqElement], error) {
	elems := make([]*group.ZqElement, len(ss))
	for i, s := range ss {
		e, err := c.zqElement(index(path, i), s)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	vec, err := group.NewVector(elems...)
	if err != nil {
		return nil, at(path, err)
	}
	return vec, nil
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func field(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
