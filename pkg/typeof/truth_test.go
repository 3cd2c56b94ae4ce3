package typeof_test

import (
	"math"
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
)

func TestTruthiness(t *testing.T) {
	for _, test := range []struct {
		Value  typeof.Value
		Truthy bool
	}{
		{typeof.Bool(true), true},
		{typeof.Bool(false), false},
		{typeof.Number(0), false},
		{typeof.Number(math.Copysign(0, -1)), false},
		{typeof.Number(-1), true},
		{typeof.NaN, false},
		{typeof.String(""), false},
		{typeof.String("0"), true},
		{typeof.String("false"), true},
		{typeof.Null{}, false},
		{typeof.Undefined{}, false},
		{typeof.NewArray(), true},
		{typeof.NewObject(), true},
		{box(typeof.Bool(false)), true},
		{box(typeof.Number(0)), true},
		{box(typeof.String("")), true},
		{box(typeof.NaN), true},
	} {
		test := test
		t.Run(test.Value.String(), func(t *testing.T) {
			is := is.New(t)
			is.Equal(typeof.IsTruthy(test.Value), test.Truthy)
			is.Equal(typeof.IsFalsey(test.Value), !test.Truthy)
		})
	}
}

func TestBooleanLiterals(t *testing.T) {
	is := is.New(t)

	is.True(typeof.IsTrue(typeof.Bool(true)))
	is.True(!typeof.IsTrue(typeof.String("true")))
	is.True(!typeof.IsTrue(typeof.Number(1)))
	is.True(typeof.NotTrue(typeof.Number(1)))

	is.True(typeof.IsFalse(typeof.Bool(false)))
	is.True(!typeof.IsFalse(typeof.Number(0)))
	is.True(!typeof.IsFalse(typeof.Null{}))
	is.True(typeof.NotFalse(typeof.Null{}))

	// boxed booleans answer for their primitive, but stay truthy
	boxedFalse := box(typeof.Bool(false))
	is.True(typeof.IsFalse(boxedFalse))
	is.True(typeof.IsTruthy(boxedFalse))
}
