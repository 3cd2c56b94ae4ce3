package typeof

// Predicate is a named classification check.
type Predicate struct {
	Name  string
	Check func(Value) bool
	Docs  []string
}

// Predicates lists every named check in reporting order.
var Predicates = []Predicate{
	{"isPresent", IsPresent, []string{
		`returns true unless the value is null or undefined`,
		`=> 0`,
		`=> null`,
	}},
	{"isAbsent", IsAbsent, []string{
		`returns true if the value is null or undefined`,
		`=> undefined`,
		`=> false`,
	}},

	{"isNull", IsNull, []string{
		`returns true for null only`,
		`=> null`,
		`=> undefined`,
	}},
	{"notNull", NotNull, []string{
		`returns true unless the value is null`,
		`=> undefined`,
	}},
	{"isUndefined", IsUndefined, []string{
		`returns true for undefined only; null is defined`,
		`=> undefined`,
		`=> null`,
	}},

	{"isInterceptionWrapper", IsInterceptionWrapper, []string{
		`returns true if the value was made by createWrapper`,
		`=> (wrap {})`,
		`=> {}`,
	}},

	{"isCallable", IsCallable, []string{
		`returns true for any invokable value, including classes`,
		`=> (class "Point")`,
	}},
	{"isFunction", IsFunction, []string{
		`returns true for any invokable value except classes`,
		`=> (fn "f" "x")`,
		`=> (class "Point")`,
	}},
	{"isAsyncFunction", IsAsyncFunction, []string{
		`returns true for async functions`,
		`=> (async "fetch")`,
	}},
	{"isGeneratorFunction", IsGeneratorFunction, []string{
		`returns true for generator functions`,
		`=> (generator "counter")`,
	}},
	{"isAsyncGeneratorFunction", IsAsyncGeneratorFunction, []string{
		`returns true for async generator functions`,
		`=> (async-generator "ticks")`,
	}},
	{"isTypeDescriptor", IsTypeDescriptor, []string{
		`returns true if the value is a class`,
		`=> (class "Point")`,
		`=> (fn "Point")`,
	}},
	{"isNativeRoutine", IsNativeRoutine, []string{
		`returns true if the function's source is native code`,
		`=> (native "push")`,
	}},

	{"isTextual", IsTextual, []string{
		`returns true for text, boxed or not`,
		`=> "abc"`,
		`=> (box "abc")`,
	}},
	{"isBoolean", IsBoolean, []string{
		`returns true for booleans, boxed or not`,
		`=> false`,
		`=> (box true)`,
	}},
	{"isNumberKind", IsNumberKind, []string{
		`returns true for any number, NaN included`,
		`=> NaN`,
	}},
	{"isNumeric", IsNumeric, []string{
		`returns true for numbers other than NaN; the infinities count`,
		`=> Infinity`,
		`=> NaN`,
		`=> "1.5"`,
	}},
	{"isNaN", IsNaN, []string{
		`returns true for NaN and nothing else; text is not coerced`,
		`=> NaN`,
		`=> "abc"`,
	}},
	{"notNaN", NotNaN, []string{
		`returns true unless the value is NaN`,
		`=> (box NaN)`,
	}},
	{"isTimestampObject", IsTimestampObject, []string{
		`returns true for any date, valid or not`,
		`=> (date NaN)`,
	}},
	{"isCalendarTimestamp", IsCalendarTimestamp, []string{
		`returns true for a date with a valid time`,
		`=> (date "2020-01-02")`,
		`=> (date "nope")`,
	}},
	{"isInvalidCalendarTimestamp", IsInvalidCalendarTimestamp, []string{
		`returns true for a date built from unparseable input`,
		`=> (date "nope")`,
	}},
	{"isPatternObject", IsPatternObject, []string{
		`returns true for regular expressions`,
		`=> (regexp "a+" "i")`,
	}},

	{"isComposite", IsComposite, []string{
		`returns true for any value that owns slots`,
		`=> []`,
		`=> "abc"`,
	}},
	{"isPlainRecord", IsPlainRecord, []string{
		`returns true for ordinary records`,
		`=> {:a 1}`,
		`=> (bare {})`,
	}},
	{"isCustomType", IsCustomType, []string{
		`returns true for composites carrying a type name`,
		`=> (typed "Point" {:x 1})`,
	}},
	{"isNode", IsNode, []string{
		`returns true for document nodes`,
		`=> (node "div")`,
	}},
	{"isWindow", IsWindow, []string{
		`returns true for window objects`,
		`=> (window)`,
	}},
	{"isPositionalCapture", IsPositionalCapture, []string{
		`returns true for captured call arguments`,
		`=> (args 1 2)`,
		`=> [1 2]`,
	}},
	{"isOrderedSequence", IsOrderedSequence, []string{
		`returns true for arrays`,
		`=> [1 2]`,
		`=> (args 1 2)`,
	}},
	{"isMapping", IsMapping, []string{
		`returns true for maps`,
		`=> (map [1 2])`,
	}},
	{"isSetContainer", IsSetContainer, []string{
		`returns true for sets`,
		`=> (set 1 2)`,
	}},
	{"isWeakContainer", IsWeakContainer, []string{
		`returns true for weak maps and weak sets`,
		`=> (weakmap)`,
	}},
	{"isBinaryBuffer", IsBinaryBuffer, []string{
		`returns true for byte buffers`,
		`=> (buffer 8)`,
	}},
	{"isBinaryView", IsBinaryView, []string{
		`returns true for views over byte buffers`,
		`=> (dataview (buffer 8) 2)`,
	}},
	{"isBoxed", IsBoxed, []string{
		`returns true for primitives boxed as composites`,
		`=> (box 1)`,
	}},
	{"isUniqueToken", IsUniqueToken, []string{
		`returns true for tokens`,
		`=> (token "id")`,
	}},
	{"isErrorObject", IsErrorObject, []string{
		`returns true for errors`,
		`=> (error "boom")`,
	}},
	{"isDeferredHandle", IsDeferredHandle, []string{
		`returns true for anything with a callable then slot`,
		`=> (promise)`,
		`=> (thenable)`,
	}},
	{"isPromise", IsPromise, []string{
		`returns true for promises; other thenables do not count`,
		`=> (promise)`,
		`=> (thenable)`,
	}},
	{"isIterable", IsIterable, []string{
		`returns true for anything with a callable iterator slot`,
		`=> "abc"`,
		`=> (set)`,
		`=> {}`,
	}},

	{"isTrue", IsTrue, []string{
		`returns true for true, boxed or not`,
		`=> (box true)`,
	}},
	{"isFalse", IsFalse, []string{
		`returns true for false, boxed or not`,
		`=> (box false)`,
	}},
	{"notTrue", NotTrue, []string{
		`returns true unless the value is true`,
		`=> 1`,
	}},
	{"notFalse", NotFalse, []string{
		`returns true unless the value is false`,
		`=> 0`,
	}},
	{"isTruthy", IsTruthy, []string{
		`returns true unless the value is falsey`,
		`=> (box false)`,
	}},
	{"isFalsey", IsFalsey, []string{
		`returns true for false, "", 0, NaN, null, and undefined`,
		`=> ""`,
		`=> []`,
	}},

	{"isEmpty", IsEmpty, []string{
		`returns true if the value holds no content`,
		`=> ""`,
		`=> (map)`,
		`=> (weakmap)`,
		`=> (fn "f")`,
	}},
	{"notEmpty", NotEmpty, []string{
		`returns true if the value holds some content`,
		`=> [0]`,
	}},
}

// LookupPredicate finds a predicate by name.
func LookupPredicate(name string) (Predicate, error) {
	for _, pred := range Predicates {
		if pred.Name == name {
			return pred, nil
		}
	}

	return Predicate{}, UnknownPredicateError{Name: name}
}

// Satisfied returns the names of the given predicates which hold for the
// value, in order. With no predicates given, every predicate is checked.
func Satisfied(val Value, preds ...Predicate) []string {
	if len(preds) == 0 {
		preds = Predicates
	}

	var names []string
	for _, pred := range preds {
		if pred.Check(val) {
			names = append(names, pred.Name)
		}
	}

	return names
}
