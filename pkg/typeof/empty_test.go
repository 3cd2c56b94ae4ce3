package typeof_test

import (
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
	. "github.com/vito/typeof/pkg/typeoftest"
)

func TestEmptySizes(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Value typeof.Value
		Empty bool
	}{
		{"astral string", typeof.String("\U0001F600"), false},
		{"record with zero length", typeof.NewRecord(typeof.Slots{"length": typeof.Number(0)}), true},
		{"record with length", typeof.NewRecord(typeof.Slots{"length": typeof.Number(2)}), false},
		{"record with NaN length", typeof.NewRecord(typeof.Slots{"length": typeof.NaN}), false},
		{"record with text length", typeof.NewRecord(typeof.Slots{"length": typeof.String("0")}), false},
		{"record with zero size", typeof.NewRecord(typeof.Slots{"size": typeof.Number(0)}), true},
		{"record with zero byteLength", typeof.NewRecord(typeof.Slots{"byteLength": typeof.Number(0)}), true},
		{"function without params", typeof.NewFunction(typeof.PlainFunc, "f"), false},
		{"boxed empty string", box(typeof.String("")), true},
		{"boxed zero", box(typeof.Number(0)), false},
		{"boxed NaN", box(typeof.NaN), true},
		{"boxed false", box(typeof.Bool(false)), false},
		{"record with only a token key", tokenKeyed(), true},
		{"wrapper around empty record", typeof.CreateWrapper(typeof.NewObject(), typeof.Handler{}), true},
		{"invalid date", typeof.InvalidDate(), false},
		{"pending promise", typeof.NewPromise(), false},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(typeof.IsEmpty(test.Value), test.Empty)
			is.Equal(typeof.NotEmpty(test.Value), !test.Empty)
		})
	}
}

func TestEmptyWeakContainersAlwaysEmpty(t *testing.T) {
	is := is.New(t)

	key := typeof.NewObject()

	wm := typeof.NewWeakMap()
	wm.Store(key, typeof.Number(1))
	_, found := wm.Load(key)
	is.True(found)
	is.True(typeof.IsEmpty(wm))

	ws := typeof.NewWeakSet()
	ws.Add(key)
	is.True(ws.Has(key))
	is.True(typeof.IsEmpty(ws))
}

func TestEmptyFollowsMutation(t *testing.T) {
	is := is.New(t)

	m := typeof.NewMap()
	is.True(typeof.IsEmpty(m))

	m.Store(typeof.Number(1), typeof.Null{})
	is.True(!typeof.IsEmpty(m))

	m.Remove(typeof.Number(1))
	is.True(typeof.IsEmpty(m))

	obj := typeof.NewObject()
	obj.SetHidden(typeof.String("secret"), typeof.Number(1))
	is.True(typeof.IsEmpty(obj))

	obj.Set(typeof.String("visible"), typeof.Number(1))
	is.True(!typeof.IsEmpty(obj))
}

func TestIfEmpty(t *testing.T) {
	is := is.New(t)

	fallback := typeof.String("default")

	Equal(t, typeof.IfEmpty(typeof.String(""), fallback), fallback)
	Equal(t, typeof.IfEmpty(typeof.Null{}, fallback), fallback)

	arr := typeof.NewArray(typeof.Number(1))
	res := typeof.IfEmpty(arr, fallback)
	is.True(res == typeof.Value(arr))

	empty := typeof.NewArray()
	is.True(typeof.IfEmpty(empty, fallback) == typeof.Value(fallback))
}

func tokenKeyed() *typeof.Object {
	obj := typeof.NewObject()
	obj.Set(typeof.NewToken("hidden"), typeof.Number(1))
	return obj
}
