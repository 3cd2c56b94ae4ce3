package typeof_test

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vito/typeof/pkg/typeof"
)

var fakeClock clockwork.FakeClock

func init() {
	fakeClock = clockwork.NewFakeClockAt(
		time.Date(1995, 8, 23, 10, 30, 0, 0, time.UTC),
	)

	typeof.Clock = fakeClock
}

type sample struct {
	Name  string
	Value typeof.Value
}

// samples returns a fresh value of every kind, keyed by a descriptive name.
func samples() []sample {
	point := typeof.NewClass("Point", nil)
	instance, err := typeof.Construct(point)
	if err != nil {
		panic(err)
	}

	m := typeof.NewMap()
	m.Store(typeof.String("foo"), typeof.String("bar"))

	view, err := typeof.NewDataView(typeof.NewArrayBuffer(2), 0, -1)
	if err != nil {
		panic(err)
	}

	emptyView, err := typeof.NewDataView(typeof.NewArrayBuffer(8), 8, -1)
	if err != nil {
		panic(err)
	}

	promise := typeof.NewPromise()
	promise.Resolve(typeof.Number(1))

	thenable := typeof.NewRecord(typeof.Slots{
		"then": typeof.Native("then", 2, nil),
	})

	return []sample{
		{"undefined", typeof.Undefined{}},
		{"null", typeof.Null{}},
		{"Array", typeof.NewArray(typeof.Number(1), typeof.Number(2), typeof.Number(3))},
		{"EmptyArray", typeof.NewArray()},
		{"Arguments", typeof.NewArguments(typeof.Number(1))},
		{"EmptyArguments", typeof.NewArguments()},
		{"Boolean", typeof.Bool(true)},
		{"False", typeof.Bool(false)},
		{"BoxedBoolean", box(typeof.Bool(true))},
		{"BoxedFalse", box(typeof.Bool(false))},
		{"Date", typeof.NewDate(time.Date(1995, 8, 23, 0, 0, 0, 0, time.UTC))},
		{"InvalidDate", typeof.ParseDate("fluffy")},
		{"Function", typeof.NewFunction(typeof.PlainFunc, "foo")},
		{"AsyncFunction", typeof.NewFunction(typeof.AsyncFunc, "foo")},
		{"GeneratorFunction", typeof.NewFunction(typeof.GeneratorFunc, "foo")},
		{"AsyncGeneratorFunction", typeof.NewFunction(typeof.AsyncGeneratorFunc, "foo")},
		{"Class", point},
		{"Instance", instance},
		{"Error", typeof.NewError("Error", "boom")},
		{"NaN", typeof.NaN},
		{"Number", typeof.Number(42)},
		{"ZeroNumber", typeof.Number(0)},
		{"Infinity", typeof.Number(math.Inf(1))},
		{"NegativeInfinity", typeof.Number(math.Inf(-1))},
		{"BoxedNumber", box(typeof.Number(42))},
		{"RegExp", mustRegExp("foo", "g")},
		{"Object", typeof.NewRecord(typeof.Slots{"foo": typeof.String("bar")})},
		{"EmptyObject", typeof.NewObject()},
		{"BareObject", typeof.NewBareObject(nil)},
		{"String", typeof.String("bar")},
		{"EmptyString", typeof.String("")},
		{"BoxedString", box(typeof.String("bar"))},
		{"NativeType", typeof.ArrayConstructor},
		{"NativeFunction", typeof.Get(typeof.ArrayPrototype, typeof.String("slice"))},
		{"Symbol", typeof.NewToken("foo")},
		{"Map", m},
		{"EmptyMap", typeof.NewMap()},
		{"Set", typeof.NewSet(typeof.Number(1), typeof.Number(2), typeof.Number(3))},
		{"EmptySet", typeof.NewSet()},
		{"WeakMap", typeof.NewWeakMap()},
		{"WeakSet", typeof.NewWeakSet()},
		{"ArrayBuffer", typeof.NewArrayBuffer(8)},
		{"EmptyArrayBuffer", typeof.NewArrayBuffer(0)},
		{"DataView", view},
		{"EmptyDataView", emptyView},
		{"Promise", promise},
		{"Thenable", thenable},
		{"Proxy", typeof.CreateWrapper(typeof.NewRecord(typeof.Slots{"goo": typeof.String("boo")}), typeof.Handler{})},
		{"Node", typeof.NewNode(typeof.ElementNode, "div")},
		{"Window", typeof.NewWindow("")},
		{"CustomType", typeof.DefineType("Point", typeof.Slots{"x": typeof.Number(1)})},
	}
}

func sampleNamed(name string) typeof.Value {
	for _, s := range samples() {
		if s.Name == name {
			return s.Value
		}
	}

	panic("no sample named " + name)
}

func box(prim typeof.Value) *typeof.Boxed {
	boxed, err := typeof.Box(prim)
	if err != nil {
		panic(err)
	}

	return boxed
}

func mustRegExp(src, flags string) *typeof.RegExp {
	re, err := typeof.NewRegExp(src, flags)
	if err != nil {
		panic(err)
	}

	return re
}

func set(names ...string) map[string]bool {
	s := map[string]bool{}
	for _, n := range names {
		s[n] = true
	}

	return s
}
