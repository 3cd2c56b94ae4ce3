package typeof

import (
	"fmt"
	"strings"
)

// FuncKind distinguishes the invokable kinds.
type FuncKind int

const (
	PlainFunc FuncKind = iota
	AsyncFunc
	GeneratorFunc
	AsyncGeneratorFunc
)

func (kind FuncKind) String() string {
	switch kind {
	case AsyncFunc:
		return "AsyncFunction"
	case GeneratorFunc:
		return "GeneratorFunction"
	case AsyncGeneratorFunc:
		return "AsyncGeneratorFunction"
	default:
		return "Function"
	}
}

// Routine implements a Function's behavior.
type Routine func(this Value, args ...Value) (Value, error)

// Function is an invokable composite.
//
// Its length slot is its parameter arity, not a content size.
type Function struct {
	*Object

	Name  string
	Kind  FuncKind
	Arity int

	// Source is the function's own textual form.
	Source string

	// Routine is called by Call. A nil Routine returns Undefined.
	Routine Routine
}

var _ Composite = (*Function)(nil)

const prototypeKey = String("prototype")
const constructorKey = String("constructor")

// NewFunction returns a user-authored function of the given kind whose
// source text is synthesized from its name and parameters.
func NewFunction(kind FuncKind, name string, params ...string) *Function {
	var prefix string
	switch kind {
	case AsyncFunc:
		prefix = "async function "
	case GeneratorFunc:
		prefix = "function* "
	case AsyncGeneratorFunc:
		prefix = "async function* "
	default:
		prefix = "function "
	}

	fn := newFunction(kind, name, len(params))
	fn.Source = fmt.Sprintf("%s%s(%s) {}", prefix, name, strings.Join(params, ", "))

	if kind == PlainFunc || kind == GeneratorFunc {
		proto := NewObject()
		if kind == PlainFunc {
			proto.SetHidden(constructorKey, fn)
		}

		fn.SetHidden(prototypeKey, proto)
	}

	return fn
}

// Native returns a host-supplied routine. Its source text carries the
// native code marker.
func Native(name string, arity int, routine Routine) *Function {
	fn := newFunction(PlainFunc, name, arity)
	fn.Source = nativeSource(name)
	fn.Routine = routine
	return fn
}

// nativeConstructor returns a host-supplied constructor linked to its
// prototype.
func nativeConstructor(name string, arity int, proto *Object, routine Routine) *Function {
	fn := Native(name, arity, routine)
	fn.SetHidden(prototypeKey, proto)
	proto.SetHidden(constructorKey, fn)
	return fn
}

func nativeSource(name string) string {
	return "function " + name + "() { [native code] }"
}

// NewClass returns a constructor-style type descriptor. Its prototype
// inherits from the parent's prototype, or from ObjectPrototype.
func NewClass(name string, parent *Function) *Function {
	fn := newFunction(PlainFunc, name, 0)

	var protoParent Composite = ObjectPrototype
	if parent != nil {
		fn.Source = fmt.Sprintf("class %s extends %s {}", name, parent.Name)
		fn.proto = parent

		var pp Composite
		if decodes(Get(parent, prototypeKey), &pp) {
			protoParent = pp
		}
	} else {
		fn.Source = fmt.Sprintf("class %s {}", name)
	}

	proto := newObject(protoParent)
	proto.SetHidden(constructorKey, fn)
	fn.SetHidden(prototypeKey, proto)

	return fn
}

func newFunction(kind FuncKind, name string, arity int) *Function {
	return &Function{
		Object: newObject(FunctionPrototype),
		Name:   name,
		Kind:   kind,
		Arity:  arity,
	}
}

// IsConstructor returns true if the function can build instances, i.e. it
// owns a prototype slot and is not a generator.
func (value *Function) IsConstructor() bool {
	if value.Kind != PlainFunc {
		return false
	}

	_, found := value.Object.GetOwn(prototypeKey)
	return found
}

// Call invokes the function's routine.
func (value *Function) Call(this Value, args ...Value) (Value, error) {
	if value.Routine == nil {
		return Undefined{}, nil
	}

	return value.Routine(this, args...)
}

// Construct builds an instance of a constructor, calling its routine with
// the new instance as this.
func Construct(fn *Function, args ...Value) (*Object, error) {
	if !fn.IsConstructor() {
		return nil, TypeError{Message: fmt.Sprintf("%s is not a constructor", fn.Name)}
	}

	var proto Composite = ObjectPrototype
	var p Composite
	if decodes(Get(fn, prototypeKey), &p) {
		proto = p
	}

	obj := newObject(proto)

	if _, err := fn.Call(obj, args...); err != nil {
		return nil, err
	}

	return obj, nil
}

func (value *Function) Class() string {
	return value.Kind.String()
}

func (value *Function) GetOwn(key Key) (Value, bool) {
	switch key {
	case lengthKey:
		return Number(value.Arity), true
	case String("name"):
		return String(value.Name), true
	}

	return value.Object.GetOwn(key)
}

func (value *Function) String() string {
	return value.Source
}

func (value *Function) Equal(other Value) bool {
	var o *Function
	return decodes(other, &o) && o == value
}

func (value *Function) Decode(dest any) error {
	switch x := dest.(type) {
	case **Function:
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
