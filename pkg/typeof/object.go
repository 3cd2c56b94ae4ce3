package typeof

import (
	"sort"
	"strings"
)

// Object is an ordinary record: ordered slots plus a prototype link.
//
// The other composite kinds embed an *Object for their named slots.
type Object struct {
	proto Composite
	slots map[Key]*slot
	order []Key
}

type slot struct {
	value  Value
	hidden bool
}

// Slots is a convenience for constructing records. Keys are set in sorted
// order.
type Slots map[string]Value

var _ Composite = (*Object)(nil)

// NewObject returns an empty record inheriting from ObjectPrototype.
func NewObject() *Object {
	return newObject(ObjectPrototype)
}

// NewRecord returns a record with the given slots.
func NewRecord(slots Slots) *Object {
	obj := NewObject()
	obj.assign(slots)
	return obj
}

// NewBareObject returns a record with no prototype at all.
func NewBareObject(slots Slots) *Object {
	obj := newObject(nil)
	obj.assign(slots)
	return obj
}

// NewObjectWithProto returns an empty record inheriting from proto.
func NewObjectWithProto(proto Composite) *Object {
	return newObject(proto)
}

func newObject(proto Composite) *Object {
	return &Object{
		proto: proto,
		slots: map[Key]*slot{},
	}
}

func (value *Object) assign(slots Slots) {
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		value.Set(String(name), slots[name])
	}
}

// Set assigns an enumerable own slot.
func (value *Object) Set(key Key, val Value) {
	value.set(key, val, false)
}

// SetHidden assigns a non-enumerable own slot.
func (value *Object) SetHidden(key Key, val Value) {
	value.set(key, val, true)
}

func (value *Object) set(key Key, val Value, hidden bool) {
	s, found := value.slots[key]
	if !found {
		value.slots[key] = &slot{value: val, hidden: hidden}
		value.order = append(value.order, key)
		return
	}

	s.value = val
}

// Delete removes an own slot.
func (value *Object) Delete(key Key) bool {
	if _, found := value.slots[key]; !found {
		return false
	}

	delete(value.slots, key)

	for i, k := range value.order {
		if k == key {
			value.order = append(value.order[:i:i], value.order[i+1:]...)
			break
		}
	}

	return true
}

// SetProto replaces the prototype link. A proto whose chain reaches the
// receiver is refused with a TypeError and the link is left unchanged.
func (value *Object) SetProto(proto Composite) error {
	for p := proto; p != nil; p = p.Proto() {
		if reaches(p, value) {
			return TypeError{Message: "Cyclic __proto__ value"}
		}
	}

	value.proto = proto
	return nil
}

func (value *Object) object() *Object {
	return value
}

// reaches returns true if comp is obj, a kind embedding obj, or a Wrapper
// around either.
func reaches(comp Composite, obj *Object) bool {
	for {
		w, ok := comp.(*Wrapper)
		if !ok {
			break
		}

		comp = w.target
	}

	o, ok := comp.(interface{ object() *Object })
	return ok && o.object() == obj
}

func (value *Object) GetOwn(key Key) (Value, bool) {
	s, found := value.slots[key]
	if !found {
		return nil, false
	}

	return s.value, true
}

func (value *Object) OwnKeys() []Key {
	keys := []Key{}
	for _, k := range value.order {
		if !value.slots[k].hidden {
			keys = append(keys, k)
		}
	}

	return keys
}

func (value *Object) Proto() Composite {
	return value.proto
}

func (*Object) Class() string {
	return "Object"
}

func (value *Object) String() string {
	return value.repr(map[Composite]bool{})
}

func (value *Object) repr(seen map[Composite]bool) string {
	if seen[value] {
		return "{...}"
	}

	seen[value] = true
	defer delete(seen, value)

	return formatSlots(value, seen)
}

func (value *Object) Equal(other Value) bool {
	var o *Object
	return decodes(other, &o) && o == value
}

func (value *Object) Decode(dest any) error {
	switch x := dest.(type) {
	case **Object:
		*x = value
		return nil
	case *Composite:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}

// reprIn formats a nested value, guarding against cycles through the
// containers which may hold themselves.
func reprIn(val Value, seen map[Composite]bool) string {
	switch x := val.(type) {
	case *Object:
		return x.repr(seen)
	case *Array:
		return x.repr(seen)
	case *Arguments:
		return x.repr(seen)
	case *Map:
		return x.repr(seen)
	case *Set:
		return x.repr(seen)
	default:
		return val.String()
	}
}

func formatSlots(obj *Object, seen map[Composite]bool) string {
	keys := obj.OwnKeys()
	if len(keys) == 0 {
		return "{}"
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		val, _ := obj.GetOwn(k)
		parts[i] = formatKey(k) + ": " + reprIn(val, seen)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func formatKey(k Key) string {
	if str, ok := k.(String); ok && isIdentifier(string(str)) {
		return string(str)
	}

	if tok, ok := k.(*Token); ok {
		return "[" + tok.String() + "]"
	}

	return k.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
