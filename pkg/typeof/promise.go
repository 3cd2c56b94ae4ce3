package typeof

// PromiseState is the settlement state of a Promise.
type PromiseState int

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

func (state PromiseState) String() string {
	switch state {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Promise is a deferred-computation handle.
//
// Reactions registered with Then run synchronously on settlement, or
// immediately if already settled.
type Promise struct {
	*Object

	State  PromiseState
	Result Value

	reactions []func()
}

var _ Composite = (*Promise)(nil)

func NewPromise() *Promise {
	return &Promise{
		Object: newObject(PromisePrototype),
		Result: Undefined{},
	}
}

// Resolve fulfills a pending promise. Resolving with another deferred
// handle adopts its eventual state.
func (value *Promise) Resolve(val Value) {
	if value.State != Pending {
		return
	}

	var other *Promise
	if decodes(val, &other) && other != value {
		other.Then(func(res Value) (Value, error) {
			value.Resolve(res)
			return res, nil
		}, func(res Value) (Value, error) {
			value.Reject(res)
			return res, nil
		})
		return
	}

	value.settle(Fulfilled, val)
}

// Reject rejects a pending promise.
func (value *Promise) Reject(reason Value) {
	if value.State != Pending {
		return
	}

	value.settle(Rejected, reason)
}

func (value *Promise) settle(state PromiseState, res Value) {
	value.State = state
	value.Result = res

	reactions := value.reactions
	value.reactions = nil

	for _, react := range reactions {
		react()
	}
}

// Then registers reactions and returns a promise for their result. A nil
// reaction passes the settlement through.
func (value *Promise) Then(onFulfilled, onRejected func(Value) (Value, error)) *Promise {
	next := NewPromise()

	react := func() {
		handler := onFulfilled
		if value.State == Rejected {
			handler = onRejected
		}

		if handler == nil {
			if value.State == Rejected {
				next.Reject(value.Result)
			} else {
				next.Resolve(value.Result)
			}

			return
		}

		res, err := handler(value.Result)
		if err != nil {
			next.Reject(errorValue(err))
			return
		}

		next.Resolve(res)
	}

	if value.State == Pending {
		value.reactions = append(value.reactions, react)
	} else {
		react()
	}

	return next
}

func (*Promise) Class() string {
	return "Promise"
}

func (value *Promise) String() string {
	if value.State == Pending {
		return "(promise)"
	}

	return "(promise " + value.State.String() + " " + value.Result.String() + ")"
}

func (value *Promise) Equal(other Value) bool {
	var o *Promise
	return decodes(other, &o) && o == value
}

func (value *Promise) Decode(dest any) error {
	switch x := dest.(type) {
	case **Promise:
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

// errorValue converts a Go error into an error object, keeping error objects
// as they are.
func errorValue(err error) Value {
	if e, ok := err.(*Error); ok {
		return e
	}

	if te, ok := err.(TypeError); ok {
		return NewError("TypeError", te.Message)
	}

	return NewError("Error", err.Error())
}
