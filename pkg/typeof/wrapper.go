package typeof

// wrapped is the private marker read through a Wrapper to find its target.
// It is a token, so no String slot can collide with it, and it is never
// stored, so enumeration can never expose it.
var wrapped = NewToken("__Proxied__")

// Handler intercepts operations on a Wrapper's target. Nil fields forward
// to the target.
type Handler struct {
	// Get intercepts slot reads. Receiver is the Wrapper.
	Get func(target Composite, key Key, receiver Value) Value

	// GetOwn intercepts own slot reads.
	GetOwn func(target Composite, key Key) (Value, bool)

	// OwnKeys intercepts enumeration.
	OwnKeys func(target Composite) []Key

	// Apply intercepts calls.
	Apply func(target Composite, this Value, args []Value) (Value, error)
}

// Wrapper is an interception wrapper: it forwards every operation to its
// target through a Handler. Kind tests see the target.
type Wrapper struct {
	target  Composite
	handler Handler
}

var _ Composite = (*Wrapper)(nil)

// CreateWrapper returns a Wrapper which forwards to target through handler.
//
// Reads of the private marker short-circuit to the target, whether or not
// handler intercepts reads. The target is not modified.
func CreateWrapper(target Composite, handler Handler) *Wrapper {
	if get := handler.Get; get != nil {
		handler.Get = func(target Composite, key Key, receiver Value) Value {
			if key == wrapped {
				return target
			}

			return get(target, key, receiver)
		}
	} else {
		handler.Get = func(target Composite, key Key, receiver Value) Value {
			if key == wrapped {
				return target
			}

			return Get(target, key)
		}
	}

	return &Wrapper{
		target:  target,
		handler: handler,
	}
}

// IsInterceptionWrapper returns true if the value was built by
// CreateWrapper.
func IsInterceptionWrapper(val Value) bool {
	return IsPresent(val) && IsPresent(Get(val, wrapped))
}

// Unwrap returns the target of a Wrapper.
func Unwrap(val Value) (Composite, bool) {
	if !IsInterceptionWrapper(val) {
		return nil, false
	}

	var target Composite
	if !decodes(Get(val, wrapped), &target) {
		return nil, false
	}

	return target, true
}

func (value *Wrapper) get(key Key) Value {
	res := value.handler.Get(value.target, key, value)
	if res == nil {
		return Undefined{}
	}

	return res
}

func (value *Wrapper) GetOwn(key Key) (Value, bool) {
	if value.handler.GetOwn != nil {
		return value.handler.GetOwn(value.target, key)
	}

	return value.target.GetOwn(key)
}

func (value *Wrapper) OwnKeys() []Key {
	if value.handler.OwnKeys != nil {
		return value.handler.OwnKeys(value.target)
	}

	return value.target.OwnKeys()
}

func (value *Wrapper) Proto() Composite {
	return value.target.Proto()
}

func (value *Wrapper) Class() string {
	return value.target.Class()
}

// Call invokes the target through the handler.
func (value *Wrapper) Call(this Value, args ...Value) (Value, error) {
	if value.handler.Apply != nil {
		return value.handler.Apply(value.target, this, args)
	}

	var fn *Function
	if !decodes(value.target, &fn) {
		return nil, TypeError{Message: value.target.String() + " is not a function"}
	}

	return fn.Call(this, args...)
}

func (value *Wrapper) String() string {
	return value.target.String()
}

func (value *Wrapper) Equal(other Value) bool {
	var o *Wrapper
	return decodes(other, &o) && o == value
}

// Decode decodes into *Wrapper itself, and otherwise forwards to the
// target.
func (value *Wrapper) Decode(dest any) error {
	switch x := dest.(type) {
	case **Wrapper:
		*x = value
		return nil
	case *Composite:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return value.target.Decode(dest)
	}
}
