package typeof

import "fmt"

// Boxed is a composite wrapper around a String, Number, or Bool primitive.
//
// It decodes into its primitive's types, so kind predicates see through it,
// but truthiness does not: every Boxed is truthy.
type Boxed struct {
	*Object

	Primitive Value
}

var _ Composite = (*Boxed)(nil)

// Box wraps a primitive.
func Box(prim Value) (*Boxed, error) {
	var proto Composite
	switch prim.(type) {
	case String:
		proto = StringPrototype
	case Number:
		proto = NumberPrototype
	case Bool:
		proto = BooleanPrototype
	default:
		return nil, ConvertError{
			Source: prim,
			Reason: "only strings, numbers and booleans can be boxed",
		}
	}

	return &Boxed{
		Object:    newObject(proto),
		Primitive: prim,
	}, nil
}

func (value *Boxed) Class() string {
	return classOf(value.Primitive)
}

func (value *Boxed) GetOwn(key Key) (Value, bool) {
	if str, ok := value.Primitive.(String); ok {
		if val, found := str.getOwn(key); found {
			return val, true
		}
	}

	return value.Object.GetOwn(key)
}

func (value *Boxed) OwnKeys() []Key {
	if str, ok := value.Primitive.(String); ok {
		return append(indexKeys(str.Len()), value.Object.OwnKeys()...)
	}

	return value.Object.OwnKeys()
}

func (value *Boxed) String() string {
	return fmt.Sprintf("(box %s)", value.Primitive)
}

func (value *Boxed) Equal(other Value) bool {
	var o *Boxed
	return decodes(other, &o) && o == value
}

func (value *Boxed) Decode(dest any) error {
	switch x := dest.(type) {
	case **Boxed:
		*x = value
		return nil
	case *Composite:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return value.Primitive.Decode(dest)
	}
}
