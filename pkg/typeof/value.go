package typeof

import (
	"fmt"
)

// Value is any runtime value: a primitive, a composite with slots, or an
// interception wrapper around one.
type Value interface {
	fmt.Stringer

	// Equal returns true if the other value is the same value. Composites
	// compare by identity.
	Equal(Value) bool

	// Decode coerces the value into the destination, which is typically a
	// pointer to one of the concrete value types. It is the one mechanism
	// used for kind tests.
	Decode(any) error
}

// Key names a slot. Only String and *Token implement it.
type Key interface {
	Value

	isKey()
}

// Composite is a Value which owns slots and delegates lookups to a
// prototype.
type Composite interface {
	Value

	// GetOwn returns the value of a slot owned directly by the composite.
	GetOwn(Key) (Value, bool)

	// OwnKeys returns the enumerable own keys in insertion order.
	OwnKeys() []Key

	// Proto returns the next composite in the lookup chain, or nil.
	Proto() Composite

	// Class returns the internal class name used by Tag.
	Class() string
}

// accessors is implemented by values which compute slots that are not
// owned, like a Map's size.
type accessors interface {
	accessor(Key) (Value, bool)
}

// Get reads a slot, consulting own slots, computed accessors, and then the
// prototype chain. Primitives read through their intrinsic prototype.
//
// Get never fails; a missing slot reads as Undefined.
func Get(val Value, key Key) Value {
	if val == nil || key == nil {
		return Undefined{}
	}

	if w, ok := val.(*Wrapper); ok {
		return w.get(key)
	}

	res, found := lookup(val, key)
	if !found {
		return Undefined{}
	}

	return res
}

func lookup(val Value, key Key) (Value, bool) {
	if res, found := getOwn(val, key); found {
		return res, true
	}

	if acc, ok := val.(accessors); ok {
		if res, found := acc.accessor(key); found {
			return res, true
		}
	}

	for proto := protoOf(val); proto != nil; proto = proto.Proto() {
		if w, ok := proto.(*Wrapper); ok {
			res := w.get(key)
			return res, IsPresent(res)
		}

		if res, found := proto.GetOwn(key); found {
			return res, true
		}
	}

	return nil, false
}

func getOwn(val Value, key Key) (Value, bool) {
	switch x := val.(type) {
	case Composite:
		return x.GetOwn(key)
	case String:
		return x.getOwn(key)
	default:
		return nil, false
	}
}

func protoOf(val Value) Composite {
	switch x := val.(type) {
	case Composite:
		return x.Proto()
	case String:
		return StringPrototype
	case Number:
		return NumberPrototype
	case Bool:
		return BooleanPrototype
	case *Token:
		return TokenPrototype
	default:
		return nil
	}
}

// OwnKeys returns the enumerable own keys of a composite, including tokens.
// Primitives and absent values have none.
func OwnKeys(val Value) []Key {
	var comp Composite
	if !decodes(val, &comp) {
		return nil
	}

	return comp.OwnKeys()
}

// Keys returns the enumerable own String keys, skipping tokens.
func Keys(val Value) []String {
	var keys []String
	for _, k := range OwnKeys(val) {
		if str, ok := k.(String); ok {
			keys = append(keys, str)
		}
	}

	return keys
}

// Tag returns the descriptive tag of a value, e.g. "[object Array]".
//
// A composite may override its tag with a String slot under ToStringTagKey,
// so the tag is only a hint; the predicates do not rely on it.
func Tag(val Value) string {
	if val == nil {
		return "[object Undefined]"
	}

	if IsComposite(val) {
		var tag String
		if decodes(Get(val, ToStringTagKey), &tag) {
			return "[object " + string(tag) + "]"
		}
	}

	return "[object " + classOf(val) + "]"
}

type classed interface {
	Class() string
}

func classOf(val Value) string {
	if c, ok := val.(classed); ok {
		return c.Class()
	}

	return "Object"
}

// decodes is a nil-safe Decode check.
func decodes(val Value, dest any) bool {
	return val != nil && val.Decode(dest) == nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}

	return n
}
