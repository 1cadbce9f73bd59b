package codec

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

var jsonNull = []byte("null")

// object is the staging form of a json object: its members are kept raw
// until the caller decides how to parse each one.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func decodeObject(path string, data []byte) (*object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, malformed(path, "expected an object: %v", err)
	}
	if fields == nil {
		return nil, malformed(path, "expected an object, got null")
	}
	return &object{path: path, fields: fields}, nil
}

func (o *object) has(key string) bool {
	raw, ok := o.fields[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func (o *object) at(key string) string {
	return field(o.path, key)
}

// only rejects members outside keys.
func (o *object) only(keys ...string) error {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	var unknown []string
	for k := range o.fields {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return malformed(o.path, "unknown fields %s", strings.Join(unknown, ", "))
	}
	return nil
}

func (o *object) raw(key string) (json.RawMessage, error) {
	if !o.has(key) {
		return nil, malformed(o.at(key), "missing required field")
	}
	return o.fields[key], nil
}

// optional returns nil for an absent or null member.
func (o *object) optional(key string) json.RawMessage {
	if !o.has(key) {
		return nil
	}
	return o.fields[key]
}

func (o *object) obj(key string) (*object, error) {
	raw, err := o.raw(key)
	if err != nil {
		return nil, err
	}
	return decodeObject(o.at(key), raw)
}

func (o *object) str(key string) (string, error) {
	raw, err := o.raw(key)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", malformed(o.at(key), "expected a string")
	}
	return s, nil
}

func (o *object) strs(key string) ([]string, error) {
	raw, err := o.raw(key)
	if err != nil {
		return nil, err
	}
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, malformed(o.at(key), "expected an array of strings")
	}
	return ss, nil
}

func (o *object) integer(key string) (int, error) {
	raw, err := o.raw(key)
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, malformed(o.at(key), "expected an integer")
	}
	return n, nil
}

func (o *object) array(key string) ([]json.RawMessage, error) {
	raw, err := o.raw(key)
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(o.at(key), "expected an array")
	}
	return items, nil
}

// marshal produces canonical json: struct fields in declaration order, no
// insignificant whitespace, no html escaping.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// present reports whether key appears at all, null included.
func (o *object) present(key string) bool {
	_, ok := o.fields[key]
	return ok
}
