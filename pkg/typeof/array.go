package typeof

import "strings"

const lengthKey = String("length")

// Array is an ordered sequence.
type Array struct {
	*Object

	Elements []Value
}

var _ Composite = (*Array)(nil)

func NewArray(vals ...Value) *Array {
	return &Array{
		Object:   newObject(ArrayPrototype),
		Elements: vals,
	}
}

func (value *Array) Len() int {
	return len(value.Elements)
}

func (*Array) Class() string {
	return "Array"
}

func (value *Array) GetOwn(key Key) (Value, bool) {
	if val, found := elementSlot(value.Elements, key); found {
		return val, true
	}

	return value.Object.GetOwn(key)
}

func (value *Array) OwnKeys() []Key {
	return append(indexKeys(len(value.Elements)), value.Object.OwnKeys()...)
}

func (value *Array) String() string {
	return value.repr(map[Composite]bool{})
}

func (value *Array) repr(seen map[Composite]bool) string {
	if seen[value] {
		return "[...]"
	}

	seen[value] = true
	defer delete(seen, value)

	return "[" + joinElements(value.Elements, seen) + "]"
}

func (value *Array) Equal(other Value) bool {
	var o *Array
	return decodes(other, &o) && o == value
}

func (value *Array) Decode(dest any) error {
	switch x := dest.(type) {
	case **Array:
		*x = value
		return nil
	case *[]Value:
		*x = value.Elements
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

// Arguments captures the positional arguments of a call. It owns length and
// index slots like an Array but inherits from ObjectPrototype, so it is not
// an ordered sequence.
type Arguments struct {
	*Object

	Args []Value
}

var _ Composite = (*Arguments)(nil)

func NewArguments(args ...Value) *Arguments {
	obj := newObject(ObjectPrototype)
	obj.SetHidden(IteratorKey, arrayValues)

	return &Arguments{
		Object: obj,
		Args:   args,
	}
}

func (value *Arguments) Len() int {
	return len(value.Args)
}

func (*Arguments) Class() string {
	return "Arguments"
}

func (value *Arguments) GetOwn(key Key) (Value, bool) {
	if val, found := elementSlot(value.Args, key); found {
		return val, true
	}

	return value.Object.GetOwn(key)
}

func (value *Arguments) OwnKeys() []Key {
	return append(indexKeys(len(value.Args)), value.Object.OwnKeys()...)
}

func (value *Arguments) String() string {
	return value.repr(map[Composite]bool{})
}

func (value *Arguments) repr(seen map[Composite]bool) string {
	if seen[value] {
		return "(args ...)"
	}

	seen[value] = true
	defer delete(seen, value)

	if len(value.Args) == 0 {
		return "(args)"
	}

	return "(args " + joinElements(value.Args, seen) + ")"
}

func (value *Arguments) Equal(other Value) bool {
	var o *Arguments
	return decodes(other, &o) && o == value
}

func (value *Arguments) Decode(dest any) error {
	switch x := dest.(type) {
	case **Arguments:
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

func elementSlot(elems []Value, key Key) (Value, bool) {
	name, ok := key.(String)
	if !ok {
		return nil, false
	}

	if name == lengthKey {
		return Number(len(elems)), true
	}

	idx, ok := arrayIndex(name)
	if !ok || idx >= len(elems) {
		return nil, false
	}

	return elems[idx], true
}

func joinElements(elems []Value, seen map[Composite]bool) string {
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = reprIn(e, seen)
	}

	return strings.Join(strs, ", ")
}
