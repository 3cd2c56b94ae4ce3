package typeof_test

import (
	"errors"
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
)

func TestSetProto(t *testing.T) {
	is := is.New(t)

	parent := typeof.NewRecord(typeof.Slots{"inherited": typeof.Number(1)})
	child := typeof.NewObject()

	is.NoErr(child.SetProto(parent))
	is.Equal(typeof.Get(child, typeof.String("inherited")), typeof.Number(1))

	is.NoErr(child.SetProto(nil))
	is.True(typeof.IsAbsent(typeof.Get(child, typeof.String("inherited"))))
	is.True(typeof.IsPlainRecord(child))
}

func TestSetProtoRefusesCycles(t *testing.T) {
	is := is.New(t)

	obj := typeof.NewObject()

	err := obj.SetProto(obj)
	var typeErr typeof.TypeError
	is.True(errors.As(err, &typeErr))
	is.Equal(typeErr.Message, "Cyclic __proto__ value")
	is.True(obj.Proto() == typeof.Composite(typeof.ObjectPrototype))

	// every predicate still returns
	for _, pred := range typeof.Predicates {
		pred.Check(obj)
	}

	a := typeof.NewObject()
	b := typeof.NewObjectWithProto(a)
	c := typeof.NewObjectWithProto(b)
	is.True(a.SetProto(c) != nil)
	is.True(a.Proto() == typeof.Composite(typeof.ObjectPrototype))

	// a kind embedding the record is the record
	fn := typeof.NewFunction(typeof.PlainFunc, "f")
	inherits := typeof.NewObjectWithProto(fn)
	is.True(fn.SetProto(inherits) != nil)

	// so is a wrapper around it
	wrapper := typeof.CreateWrapper(obj, typeof.Handler{})
	is.True(obj.SetProto(wrapper) != nil)
	is.True(obj.SetProto(typeof.NewObjectWithProto(wrapper)) != nil)

	is.True(typeof.IsPlainRecord(obj))
	is.True(typeof.IsAbsent(typeof.Get(obj, typeof.String("missing"))))
}
