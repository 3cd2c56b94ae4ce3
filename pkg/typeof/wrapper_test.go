package typeof_test

import (
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
)

func TestWrapperForwards(t *testing.T) {
	is := is.New(t)

	target := typeof.NewRecord(typeof.Slots{"goo": typeof.String("boo")})
	wrapper := typeof.CreateWrapper(target, typeof.Handler{})

	is.Equal(typeof.Get(wrapper, typeof.String("goo")), typeof.Value(typeof.String("boo")))
	is.Equal(typeof.Keys(wrapper), []typeof.String{"goo"})
	is.True(typeof.OwnsSlot(wrapper, typeof.String("goo")))
	is.True(typeof.CanInvoke(wrapper, typeof.String("hasOwnProperty")))

	unwrapped, ok := typeof.Unwrap(wrapper)
	is.True(ok)
	is.True(unwrapped == typeof.Composite(target))

	// the target is not marked
	is.True(!typeof.IsInterceptionWrapper(target))
	is.Equal(typeof.OwnKeys(target), []typeof.Key{typeof.String("goo")})
}

func TestWrapperMarkerSurvivesInterception(t *testing.T) {
	is := is.New(t)

	var seen []typeof.Key
	wrapper := typeof.CreateWrapper(typeof.NewObject(), typeof.Handler{
		Get: func(target typeof.Composite, key typeof.Key, _ typeof.Value) typeof.Value {
			seen = append(seen, key)
			return typeof.String("intercepted")
		},
	})

	is.True(typeof.IsInterceptionWrapper(wrapper))
	is.Equal(typeof.Get(wrapper, typeof.String("x")), typeof.Value(typeof.String("intercepted")))

	// the marker never reaches the handler
	is.Equal(len(seen), 1)
}

func TestWrapperHidesNothingFromEnumeration(t *testing.T) {
	is := is.New(t)

	wrapper := typeof.CreateWrapper(typeof.NewObject(), typeof.Handler{})
	is.Equal(len(typeof.OwnKeys(wrapper)), 0)
	is.True(typeof.IsEmpty(wrapper))
}

func TestWrapperKindTestsSeeTarget(t *testing.T) {
	is := is.New(t)

	arr := typeof.CreateWrapper(typeof.NewArray(typeof.Number(1)), typeof.Handler{})
	is.True(typeof.IsOrderedSequence(arr))
	is.True(typeof.IsIterable(arr))
	is.True(!typeof.IsEmpty(arr))
	is.Equal(typeof.Tag(arr), "[object Array]")

	fn := typeof.CreateWrapper(typeof.NewFunction(typeof.AsyncFunc, "f"), typeof.Handler{})
	is.True(typeof.IsAsyncFunction(fn))
	is.True(typeof.IsInterceptionWrapper(fn))
}

func TestWrapperApply(t *testing.T) {
	is := is.New(t)

	double := typeof.Native("double", 1, func(_ typeof.Value, args ...typeof.Value) (typeof.Value, error) {
		var n typeof.Number
		if err := args[0].Decode(&n); err != nil {
			return nil, err
		}

		return n * 2, nil
	})

	plain := typeof.CreateWrapper(double, typeof.Handler{})
	res, err := plain.Call(typeof.Undefined{}, typeof.Number(21))
	is.NoErr(err)
	is.Equal(res, typeof.Value(typeof.Number(42)))

	traced := typeof.CreateWrapper(double, typeof.Handler{
		Apply: func(target typeof.Composite, this typeof.Value, args []typeof.Value) (typeof.Value, error) {
			return typeof.String("traced"), nil
		},
	})
	res, err = traced.Call(typeof.Undefined{}, typeof.Number(21))
	is.NoErr(err)
	is.Equal(res, typeof.Value(typeof.String("traced")))

	notFn := typeof.CreateWrapper(typeof.NewObject(), typeof.Handler{})
	_, err = notFn.Call(typeof.Undefined{})
	is.True(err != nil)
}

func TestWrapperEqualIsIdentity(t *testing.T) {
	is := is.New(t)

	target := typeof.NewObject()
	a := typeof.CreateWrapper(target, typeof.Handler{})
	b := typeof.CreateWrapper(target, typeof.Handler{})

	is.True(a.Equal(a))
	is.True(!a.Equal(b))
	is.True(!a.Equal(target))
}
