package typeof

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// classSource matches the source text of a constructor-style type
	// descriptor.
	classSource = regexp.MustCompile(`^class\s`)

	// nativeCode matches the source text of host-supplied routines.
	nativeCode = regexp.MustCompile(`\{\s*\[native code\]\s*\}\s*$`)
)

// IsComposite returns true for any value which may own slots, including
// invokable values.
func IsComposite(val Value) bool {
	var comp Composite
	return decodes(val, &comp)
}

// IsCallable returns true for every invokable kind: plain, asynchronous and
// generator functions, and type descriptors.
func IsCallable(val Value) bool {
	var fn *Function
	return decodes(val, &fn)
}

// IsFunction returns true for any invokable value other than a type
// descriptor: plain, asynchronous, generator and native functions. A type
// descriptor is excluded even though its tag reads the same.
func IsFunction(val Value) bool {
	return IsCallable(val) && !IsTypeDescriptor(val)
}

// IsAsyncFunction returns true for asynchronous functions.
func IsAsyncFunction(val Value) bool {
	var fn *Function
	return decodes(val, &fn) && fn.Kind == AsyncFunc
}

// IsGeneratorFunction returns true for generator functions.
func IsGeneratorFunction(val Value) bool {
	var fn *Function
	return decodes(val, &fn) && fn.Kind == GeneratorFunc
}

// IsAsyncGeneratorFunction returns true for asynchronous generator
// functions.
func IsAsyncGeneratorFunction(val Value) bool {
	var fn *Function
	return decodes(val, &fn) && fn.Kind == AsyncGeneratorFunc
}

// IsTypeDescriptor returns true for constructor-style type descriptors: a
// constructor whose own source text begins with the class keyword.
func IsTypeDescriptor(val Value) bool {
	var fn *Function
	return decodes(val, &fn) &&
		fn.IsConstructor() &&
		classSource.MatchString(fn.Source)
}

// IsNativeRoutine returns true for host-supplied routines, identified by the
// native code marker in their source text.
func IsNativeRoutine(val Value) bool {
	var fn *Function
	return decodes(val, &fn) && nativeCode.MatchString(fn.Source)
}

// IsTextual returns true for strings, boxed or not.
func IsTextual(val Value) bool {
	var str String
	return decodes(val, &str)
}

// IsBoolean returns true for booleans, boxed or not.
func IsBoolean(val Value) bool {
	var b Bool
	return decodes(val, &b)
}

// IsNumberKind returns true for numbers, boxed or not, including NaN.
func IsNumberKind(val Value) bool {
	var num Number
	return decodes(val, &num)
}

// IsNumeric returns true if the value is safely usable as a number: a number
// other than NaN. The infinities count.
func IsNumeric(val Value) bool {
	if IsOrderedSequence(val) {
		return false
	}

	var num Number
	if !decodes(val, &num) {
		return false
	}

	f := float64(num)
	if math.IsInf(f, 0) {
		return true
	}

	parsed, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', -1, 64), 64)
	return err == nil && parsed == f
}

// IsNaN returns true only for the NaN primitive. Nothing is coerced, so
// text and boxed numbers are never NaN.
func IsNaN(val Value) bool {
	return isNaNPrimitive(val)
}

// NotNaN is the complement of IsNaN.
func NotNaN(val Value) bool {
	return !IsNaN(val)
}

// IsTimestampObject returns true for any Date, valid or not.
func IsTimestampObject(val Value) bool {
	var date *Date
	return decodes(val, &date)
}

// IsCalendarTimestamp returns true for a Date with a valid value.
func IsCalendarTimestamp(val Value) bool {
	var date *Date
	return decodes(val, &date) && date.Valid
}

// IsInvalidCalendarTimestamp returns true for a Date built from unparseable
// input.
func IsInvalidCalendarTimestamp(val Value) bool {
	var date *Date
	return decodes(val, &date) && !date.Valid
}

// IsPatternObject returns true for regular expressions.
func IsPatternObject(val Value) bool {
	var re *RegExp
	return decodes(val, &re)
}

// IsPlainRecord returns true for an ordinary non-invokable record which is
// not a custom type descriptor, a host node or window, or a positional
// capture, and whose declared constructor (if any) has a prototype exposing
// isPrototypeOf.
//
// Arrays, dates, boxed primitives and the other built-in kinds have their
// own class and are not plain records. A Wrapper around a plain record is
// one.
func IsPlainRecord(val Value) bool {
	if IsAbsent(val) || !IsComposite(val) || IsCallable(val) {
		return false
	}

	if classOf(val) != "Object" {
		return false
	}

	if IsCustomType(val) || IsNode(val) || IsWindow(val) || IsPositionalCapture(val) {
		return false
	}

	ctor := Get(val, constructorKey)
	if IsAbsent(ctor) {
		return true
	}

	return CanInvoke(Get(ctor, prototypeKey), String("isPrototypeOf"))
}

// IsCustomType returns true for composites marked by DefineType.
func IsCustomType(val Value) bool {
	if !IsComposite(val) {
		return false
	}

	var name String
	res, found := getOwn(val, TypeNameKey)
	return found && decodes(res, &name)
}

// IsNode returns true for host node handles.
func IsNode(val Value) bool {
	var node *Node
	return decodes(val, &node)
}

// IsWindow returns true for host window handles.
func IsWindow(val Value) bool {
	var win *Window
	return decodes(val, &win)
}

// IsPositionalCapture returns true for captured call arguments.
func IsPositionalCapture(val Value) bool {
	var args *Arguments
	return decodes(val, &args)
}

// IsOrderedSequence returns true for arrays. Positional captures are not
// arrays.
func IsOrderedSequence(val Value) bool {
	var arr *Array
	return decodes(val, &arr)
}

// IsMapping returns true for Maps.
func IsMapping(val Value) bool {
	var m *Map
	return decodes(val, &m)
}

// IsSetContainer returns true for Sets.
func IsSetContainer(val Value) bool {
	var s *Set
	return decodes(val, &s)
}

// IsWeakContainer returns true for WeakMaps and WeakSets.
func IsWeakContainer(val Value) bool {
	var wm *WeakMap
	if decodes(val, &wm) {
		return true
	}

	var ws *WeakSet
	return decodes(val, &ws)
}

// IsBinaryBuffer returns true for ArrayBuffers.
func IsBinaryBuffer(val Value) bool {
	var buf *ArrayBuffer
	return decodes(val, &buf)
}

// IsBinaryView returns true for DataViews.
func IsBinaryView(val Value) bool {
	var view *DataView
	return decodes(val, &view)
}

// IsBoxed returns true for composite wrappers around primitives.
func IsBoxed(val Value) bool {
	var boxed *Boxed
	return decodes(val, &boxed)
}

// IsUniqueToken returns true for tokens.
func IsUniqueToken(val Value) bool {
	var tok *Token
	return decodes(val, &tok)
}

// IsErrorObject returns true for error objects.
func IsErrorObject(val Value) bool {
	var e *Error
	return decodes(val, &e)
}

// IsDeferredHandle returns true for anything exposing an invokable then,
// regardless of its kind.
func IsDeferredHandle(val Value) bool {
	return CanInvoke(val, String("then"))
}

// IsPromise returns true for Promises only. Other thenables are deferred
// handles but not promises.
func IsPromise(val Value) bool {
	var p *Promise
	return decodes(val, &p)
}

// IsIterable returns true for composites exposing an invokable iteration
// routine under IteratorKey.
func IsIterable(val Value) bool {
	return IsPresent(val) && IsComposite(val) && CanInvoke(val, IteratorKey)
}
