package typeof_test

import (
	"errors"
	"testing"

	"github.com/vito/is"
	"github.com/vito/typeof/pkg/typeof"
	"github.com/vito/typeof/pkg/typeoftest"
)

var composites = set(
	"Array", "EmptyArray", "Arguments", "EmptyArguments",
	"BoxedBoolean", "BoxedFalse", "BoxedNumber", "BoxedString",
	"Date", "InvalidDate",
	"Function", "AsyncFunction", "GeneratorFunction", "AsyncGeneratorFunction",
	"Class", "Instance", "Error", "RegExp",
	"Object", "EmptyObject", "BareObject",
	"NativeType", "NativeFunction",
	"Map", "EmptyMap", "Set", "EmptySet", "WeakMap", "WeakSet",
	"ArrayBuffer", "EmptyArrayBuffer", "DataView", "EmptyDataView",
	"Promise", "Thenable", "Proxy", "Node", "Window", "CustomType",
)

// holds lists the samples each predicate is true for; it is false for the
// rest.
var holds = map[string]map[string]bool{
	"isAbsent":              set("undefined", "null"),
	"isNull":                set("null"),
	"isUndefined":           set("undefined"),
	"isInterceptionWrapper": set("Proxy"),
	"isCallable": set(
		"Function", "AsyncFunction", "GeneratorFunction", "AsyncGeneratorFunction",
		"Class", "NativeType", "NativeFunction",
	),
	"isFunction": set(
		"Function", "AsyncFunction", "GeneratorFunction", "AsyncGeneratorFunction",
		"NativeType", "NativeFunction",
	),
	"isAsyncFunction":          set("AsyncFunction"),
	"isGeneratorFunction":      set("GeneratorFunction"),
	"isAsyncGeneratorFunction": set("AsyncGeneratorFunction"),
	"isTypeDescriptor":         set("Class"),
	"isNativeRoutine":          set("NativeType", "NativeFunction"),
	"isTextual":                set("String", "EmptyString", "BoxedString"),
	"isBoolean":                set("Boolean", "False", "BoxedBoolean", "BoxedFalse"),
	"isNumberKind": set(
		"NaN", "Number", "ZeroNumber", "Infinity", "NegativeInfinity", "BoxedNumber",
	),
	"isNumeric": set(
		"Number", "ZeroNumber", "Infinity", "NegativeInfinity", "BoxedNumber",
	),
	"isNaN":                      set("NaN"),
	"isTimestampObject":          set("Date", "InvalidDate"),
	"isCalendarTimestamp":        set("Date"),
	"isInvalidCalendarTimestamp": set("InvalidDate"),
	"isPatternObject":            set("RegExp"),
	"isComposite":                composites,
	"isPlainRecord": set(
		"Instance", "Object", "EmptyObject", "BareObject", "Thenable", "Proxy",
	),
	"isCustomType":        set("CustomType"),
	"isNode":              set("Node"),
	"isWindow":            set("Window"),
	"isPositionalCapture": set("Arguments", "EmptyArguments"),
	"isOrderedSequence":   set("Array", "EmptyArray"),
	"isMapping":           set("Map", "EmptyMap"),
	"isSetContainer":      set("Set", "EmptySet"),
	"isWeakContainer":     set("WeakMap", "WeakSet"),
	"isBinaryBuffer":      set("ArrayBuffer", "EmptyArrayBuffer"),
	"isBinaryView":        set("DataView", "EmptyDataView"),
	"isBoxed":             set("BoxedBoolean", "BoxedFalse", "BoxedNumber", "BoxedString"),
	"isUniqueToken":       set("Symbol"),
	"isErrorObject":       set("Error"),
	"isDeferredHandle":    set("Promise", "Thenable"),
	"isPromise":           set("Promise"),
	"isIterable": set(
		"Array", "EmptyArray", "Arguments", "EmptyArguments",
		"Map", "EmptyMap", "Set", "EmptySet", "BoxedString",
	),
	"isTrue":  set("Boolean", "BoxedBoolean"),
	"isFalse": set("False", "BoxedFalse"),
	"isFalsey": set(
		"undefined", "null", "False", "NaN", "ZeroNumber", "EmptyString",
	),
	"isEmpty": set(
		"undefined", "null",
		"EmptyArray", "EmptyArguments", "EmptyString", "NaN",
		"EmptyObject", "BareObject", "Instance",
		"EmptyMap", "EmptySet", "WeakMap", "WeakSet",
		"EmptyArrayBuffer", "EmptyDataView",
		"Node", "Window",
	),
}

// complements are true exactly when their counterpart is false.
var complements = map[string]string{
	"isPresent": "isAbsent",
	"notNull":   "isNull",
	"notNaN":    "isNaN",
	"notTrue":   "isTrue",
	"notFalse":  "isFalse",
	"isTruthy":  "isFalsey",
	"notEmpty":  "isEmpty",
}

func TestPredicateVerdicts(t *testing.T) {
	for _, s := range samples() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			expected := map[string]bool{}
			for pred, names := range holds {
				expected[pred] = names[s.Name]
			}

			for pred, counterpart := range complements {
				expected[pred] = !holds[counterpart][s.Name]
			}

			typeoftest.Verdicts(t, s.Value, expected)
		})
	}
}

func TestPredicatesCovered(t *testing.T) {
	is := is.New(t)

	for _, pred := range typeof.Predicates {
		_, held := holds[pred.Name]
		_, complemented := complements[pred.Name]
		is.True(held || complemented)
	}

	is.Equal(len(holds)+len(complements), len(typeof.Predicates))
}

func TestNilIsUndefined(t *testing.T) {
	is := is.New(t)

	is.True(typeof.IsAbsent(nil))
	is.True(!typeof.IsPresent(nil))
	is.True(typeof.IsEmpty(nil))
	is.True(typeof.IsFalsey(nil))
	is.True(!typeof.IsComposite(nil))
	is.True(!typeof.IsCallable(nil))
	is.True(!typeof.IsPlainRecord(nil))
	is.True(!typeof.IsIterable(nil))
	is.True(!typeof.IsDeferredHandle(nil))
}

func TestClassExtendingClass(t *testing.T) {
	is := is.New(t)

	animal := typeof.NewClass("Animal", nil)
	dog := typeof.NewClass("Dog", animal)

	is.True(typeof.IsTypeDescriptor(dog))
	is.True(!typeof.IsFunction(dog))

	rex, err := typeof.Construct(dog)
	is.NoErr(err)
	is.True(typeof.IsPlainRecord(rex))

	// inherited through the parent's prototype
	is.True(typeof.CanInvoke(rex, typeof.String("hasOwnProperty")))
}

func TestGeneratorIsNotConstructor(t *testing.T) {
	is := is.New(t)

	gen := typeof.NewFunction(typeof.GeneratorFunc, "gen")
	_, err := typeof.Construct(gen)
	is.True(err != nil)

	var typeErr typeof.TypeError
	is.True(errors.As(err, &typeErr))
	is.Equal(typeErr.Message, "gen is not a constructor")
}

func TestClassSourceMustLead(t *testing.T) {
	is := is.New(t)

	fn := typeof.NewFunction(typeof.PlainFunc, "notAClass")
	fn.Source = "function notAClass() { return 'class Foo {}' }"
	is.True(!typeof.IsTypeDescriptor(fn))
	is.True(typeof.IsFunction(fn))

	fn.Source = "class Foo {}"
	is.True(typeof.IsTypeDescriptor(fn))
}

func TestNativeMarkerInSource(t *testing.T) {
	is := is.New(t)

	fn := typeof.NewFunction(typeof.PlainFunc, "fake")
	is.True(!typeof.IsNativeRoutine(fn))

	fn.Source = "function fake() { [native code] }"
	is.True(typeof.IsNativeRoutine(fn))
}

func TestNumericRejectsArrays(t *testing.T) {
	is := is.New(t)

	is.True(!typeof.IsNumeric(typeof.NewArray(typeof.Number(1))))
	is.True(!typeof.IsNumeric(typeof.String("42")))
	is.True(typeof.IsNumeric(typeof.Number(-0.5)))
	is.True(typeof.IsNumeric(typeof.Number(1e300)))
}

func TestDeferredHandleRegardlessOfKind(t *testing.T) {
	is := is.New(t)

	fn := typeof.NewFunction(typeof.PlainFunc, "lazy")
	fn.Set(typeof.String("then"), typeof.Native("then", 2, nil))
	is.True(typeof.IsDeferredHandle(fn))

	notCallable := typeof.NewRecord(typeof.Slots{"then": typeof.Number(1)})
	is.True(!typeof.IsDeferredHandle(notCallable))
}

func TestCustomTypeMarkerIsOwn(t *testing.T) {
	is := is.New(t)

	point := typeof.DefineType("Point", nil)
	is.True(typeof.IsCustomType(point))

	inherits := typeof.NewObjectWithProto(point)
	is.True(!typeof.IsCustomType(inherits))
}

func TestPlainRecordConstructorCheck(t *testing.T) {
	is := is.New(t)

	// a constructor whose prototype cannot reach isPrototypeOf
	ctor := typeof.NewFunction(typeof.PlainFunc, "Odd")
	ctor.SetHidden(typeof.String("prototype"), typeof.NewBareObject(nil))

	obj := typeof.NewObject()
	obj.SetHidden(typeof.String("constructor"), ctor)
	is.True(!typeof.IsPlainRecord(obj))

	obj.Delete(typeof.String("constructor"))
	is.True(typeof.IsPlainRecord(obj))
}

func TestTag(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Value typeof.Value
		Tag   string
	}{
		{"nil", nil, "[object Undefined]"},
		{"undefined", typeof.Undefined{}, "[object Undefined]"},
		{"null", typeof.Null{}, "[object Null]"},
		{"string", typeof.String("x"), "[object String]"},
		{"number", typeof.Number(1), "[object Number]"},
		{"boolean", typeof.Bool(true), "[object Boolean]"},
		{"symbol", typeof.NewToken("x"), "[object Symbol]"},
		{"array", typeof.NewArray(), "[object Array]"},
		{"arguments", typeof.NewArguments(), "[object Arguments]"},
		{"boxed", box(typeof.String("x")), "[object String]"},
		{"function", sampleNamed("Function"), "[object Function]"},
		{"async function", sampleNamed("AsyncFunction"), "[object AsyncFunction]"},
		{"class", sampleNamed("Class"), "[object Function]"},
		{"date", sampleNamed("Date"), "[object Date]"},
		{"map", typeof.NewMap(), "[object Map]"},
		{"data view", sampleNamed("DataView"), "[object DataView]"},
		{"proxy", sampleNamed("Proxy"), "[object Object]"},
		{"tagged", tagged("Custom"), "[object Custom]"},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(typeof.Tag(test.Value), test.Tag)
		})
	}
}

func TestTagDoesNotFoolPredicates(t *testing.T) {
	is := is.New(t)

	fake := tagged("Array")
	is.Equal(typeof.Tag(fake), "[object Array]")
	is.True(!typeof.IsOrderedSequence(fake))
	is.True(!typeof.IsIterable(fake))
}

func tagged(tag string) *typeof.Object {
	obj := typeof.NewObject()
	obj.SetHidden(typeof.ToStringTagKey, typeof.String(tag))
	return obj
}
