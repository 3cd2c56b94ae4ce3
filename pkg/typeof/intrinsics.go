package typeof

import (
	"fmt"
	"strconv"
	"strings"
)

// Intrinsic prototypes. Every value created by this package inherits from
// one of these, so capability probes see the routines the host runtime
// provides.
var (
	ObjectPrototype      = newObject(nil)
	FunctionPrototype    = newObject(ObjectPrototype)
	ArrayPrototype       = newObject(ObjectPrototype)
	StringPrototype      = newObject(ObjectPrototype)
	NumberPrototype      = newObject(ObjectPrototype)
	BooleanPrototype     = newObject(ObjectPrototype)
	TokenPrototype       = newObject(ObjectPrototype)
	DatePrototype        = newObject(ObjectPrototype)
	RegExpPrototype      = newObject(ObjectPrototype)
	ErrorPrototype       = newObject(ObjectPrototype)
	MapPrototype         = newObject(ObjectPrototype)
	SetPrototype         = newObject(ObjectPrototype)
	WeakMapPrototype     = newObject(ObjectPrototype)
	WeakSetPrototype     = newObject(ObjectPrototype)
	ArrayBufferPrototype = newObject(ObjectPrototype)
	DataViewPrototype    = newObject(ObjectPrototype)
	PromisePrototype     = newObject(ObjectPrototype)
	NodePrototype        = newObject(ObjectPrototype)
	WindowPrototype      = newObject(ObjectPrototype)
)

// Intrinsic constructors, linked to their prototypes.
var (
	ObjectConstructor   *Function
	FunctionConstructor *Function
	ArrayConstructor    *Function
	StringConstructor   *Function
	NumberConstructor   *Function
	BooleanConstructor  *Function
	DateConstructor     *Function
	RegExpConstructor   *Function
	ErrorConstructor    *Function
	MapConstructor      *Function
	SetConstructor      *Function
	PromiseConstructor  *Function
)

// arrayValues is the iteration routine shared by arrays and positional
// captures.
var arrayValues = Native("values", 0, func(this Value, _ ...Value) (Value, error) {
	var comp Composite
	if !decodes(this, &comp) {
		return nil, incompatible("values", this)
	}

	var n int
	if !decodes(Get(comp, lengthKey), &n) {
		return nil, incompatible("values", this)
	}

	vals := make([]Value, n)
	for i := range vals {
		vals[i] = Get(comp, String(strconv.Itoa(i)))
	}

	return newIterator(vals), nil
})

func init() {
	ObjectConstructor = nativeConstructor("Object", 1, ObjectPrototype, nil)
	FunctionConstructor = nativeConstructor("Function", 1, FunctionPrototype, nil)
	ArrayConstructor = nativeConstructor("Array", 1, ArrayPrototype, nil)
	StringConstructor = nativeConstructor("String", 1, StringPrototype, nil)
	NumberConstructor = nativeConstructor("Number", 1, NumberPrototype, nil)
	BooleanConstructor = nativeConstructor("Boolean", 1, BooleanPrototype, nil)
	DateConstructor = nativeConstructor("Date", 7, DatePrototype, nil)
	RegExpConstructor = nativeConstructor("RegExp", 2, RegExpPrototype, nil)
	ErrorConstructor = nativeConstructor("Error", 1, ErrorPrototype, nil)
	MapConstructor = nativeConstructor("Map", 0, MapPrototype, nil)
	SetConstructor = nativeConstructor("Set", 0, SetPrototype, nil)
	PromiseConstructor = nativeConstructor("Promise", 1, PromisePrototype, nil)

	nativeConstructor("Symbol", 0, TokenPrototype, nil)
	nativeConstructor("WeakMap", 0, WeakMapPrototype, nil)
	nativeConstructor("WeakSet", 0, WeakSetPrototype, nil)
	nativeConstructor("ArrayBuffer", 1, ArrayBufferPrototype, nil)
	nativeConstructor("DataView", 1, DataViewPrototype, nil)
	nativeConstructor("Node", 0, NodePrototype, nil)
	nativeConstructor("Window", 0, WindowPrototype, nil)

	installObjectPrototype()
	installFunctionPrototype()
	installArrayPrototype()
	installPrimitivePrototypes()
	installDatePrototype()
	installErrorPrototype()
	installCollectionPrototypes()
	installPromisePrototype()
}

func method(proto *Object, name string, arity int, routine Routine) {
	proto.SetHidden(String(name), Native(name, arity, routine))
}

func installObjectPrototype() {
	method(ObjectPrototype, "hasOwnProperty", 1, func(this Value, args ...Value) (Value, error) {
		return Bool(OwnsSlot(this, toKey(arg(args, 0)))), nil
	})

	method(ObjectPrototype, "isPrototypeOf", 1, func(this Value, args ...Value) (Value, error) {
		var comp Composite
		if !decodes(arg(args, 0), &comp) {
			return Bool(false), nil
		}

		for proto := comp.Proto(); proto != nil; proto = proto.Proto() {
			if proto.Equal(this) {
				return Bool(true), nil
			}
		}

		return Bool(false), nil
	})

	method(ObjectPrototype, "propertyIsEnumerable", 1, func(this Value, args ...Value) (Value, error) {
		key := toKey(arg(args, 0))
		for _, k := range OwnKeys(this) {
			if k.Equal(key) {
				return Bool(true), nil
			}
		}

		return Bool(false), nil
	})

	method(ObjectPrototype, "toString", 0, func(this Value, _ ...Value) (Value, error) {
		return String(Tag(this)), nil
	})

	method(ObjectPrototype, "valueOf", 0, func(this Value, _ ...Value) (Value, error) {
		return this, nil
	})
}

func installFunctionPrototype() {
	method(FunctionPrototype, "call", 1, func(this Value, args ...Value) (Value, error) {
		var fn *Function
		if !decodes(this, &fn) {
			return nil, incompatible("Function.prototype.call", this)
		}

		var rest []Value
		if len(args) > 1 {
			rest = args[1:]
		}

		return fn.Call(arg(args, 0), rest...)
	})

	method(FunctionPrototype, "apply", 2, func(this Value, args ...Value) (Value, error) {
		var fn *Function
		if !decodes(this, &fn) {
			return nil, incompatible("Function.prototype.apply", this)
		}

		var rest []Value
		if IsPresent(arg(args, 1)) && !decodes(arg(args, 1), &rest) {
			var capture *Arguments
			if !decodes(arg(args, 1), &capture) {
				return nil, TypeError{Message: "argument list must be an array"}
			}

			rest = capture.Args
		}

		return fn.Call(arg(args, 0), rest...)
	})

	method(FunctionPrototype, "toString", 0, func(this Value, _ ...Value) (Value, error) {
		var fn *Function
		if !decodes(this, &fn) {
			return nil, incompatible("Function.prototype.toString", this)
		}

		return String(fn.Source), nil
	})
}

func installArrayPrototype() {
	thisArray := func(name string, this Value) (*Array, error) {
		var arr *Array
		if !decodes(this, &arr) {
			return nil, incompatible("Array.prototype."+name, this)
		}

		return arr, nil
	}

	method(ArrayPrototype, "push", 1, func(this Value, args ...Value) (Value, error) {
		arr, err := thisArray("push", this)
		if err != nil {
			return nil, err
		}

		arr.Elements = append(arr.Elements, args...)
		return Number(len(arr.Elements)), nil
	})

	method(ArrayPrototype, "pop", 0, func(this Value, _ ...Value) (Value, error) {
		arr, err := thisArray("pop", this)
		if err != nil {
			return nil, err
		}

		if len(arr.Elements) == 0 {
			return Undefined{}, nil
		}

		last := arr.Elements[len(arr.Elements)-1]
		arr.Elements = arr.Elements[:len(arr.Elements)-1]
		return last, nil
	})

	method(ArrayPrototype, "indexOf", 1, func(this Value, args ...Value) (Value, error) {
		arr, err := thisArray("indexOf", this)
		if err != nil {
			return nil, err
		}

		for i, e := range arr.Elements {
			if e.Equal(arg(args, 0)) {
				return Number(i), nil
			}
		}

		return Number(-1), nil
	})

	method(ArrayPrototype, "join", 1, func(this Value, args ...Value) (Value, error) {
		arr, err := thisArray("join", this)
		if err != nil {
			return nil, err
		}

		sep := ","
		var s String
		if decodes(arg(args, 0), &s) {
			sep = string(s)
		}

		strs := make([]string, len(arr.Elements))
		for i, e := range arr.Elements {
			if IsPresent(e) {
				strs[i] = toText(e)
			}
		}

		return String(strings.Join(strs, sep)), nil
	})

	method(ArrayPrototype, "slice", 2, func(this Value, args ...Value) (Value, error) {
		arr, err := thisArray("slice", this)
		if err != nil {
			return nil, err
		}

		start := relativeIndex(arg(args, 0), len(arr.Elements), 0)
		end := relativeIndex(arg(args, 1), len(arr.Elements), len(arr.Elements))
		if end < start {
			end = start
		}

		return NewArray(append([]Value{}, arr.Elements[start:end]...)...), nil
	})

	ArrayPrototype.SetHidden(String("values"), arrayValues)
	ArrayPrototype.SetHidden(IteratorKey, arrayValues)
}

func installPrimitivePrototypes() {
	thisString := func(name string, this Value) (String, error) {
		var str String
		if !decodes(this, &str) {
			return "", incompatible("String.prototype."+name, this)
		}

		return str, nil
	}

	stringMethod := func(name string, f func(string) string) {
		method(StringPrototype, name, 0, func(this Value, _ ...Value) (Value, error) {
			str, err := thisString(name, this)
			if err != nil {
				return nil, err
			}

			return String(f(string(str))), nil
		})
	}

	stringMethod("toUpperCase", strings.ToUpper)
	stringMethod("toLowerCase", strings.ToLower)
	stringMethod("trim", strings.TrimSpace)
	stringMethod("toString", func(s string) string { return s })

	method(StringPrototype, "valueOf", 0, func(this Value, _ ...Value) (Value, error) {
		return thisString("valueOf", this)
	})

	method(StringPrototype, "charAt", 1, func(this Value, args ...Value) (Value, error) {
		str, err := thisString("charAt", this)
		if err != nil {
			return nil, err
		}

		var idx int
		if !decodes(arg(args, 0), &idx) {
			idx = 0
		}

		char, found := str.getOwn(String(strconv.Itoa(idx)))
		if !found {
			return String(""), nil
		}

		return char, nil
	})

	StringPrototype.SetHidden(IteratorKey, Native("[Symbol.iterator]", 0, func(this Value, _ ...Value) (Value, error) {
		str, err := thisString("[Symbol.iterator]", this)
		if err != nil {
			return nil, err
		}

		var chars []Value
		for _, r := range string(str) {
			chars = append(chars, String(string(r)))
		}

		return newIterator(chars), nil
	}))

	method(NumberPrototype, "toFixed", 1, func(this Value, args ...Value) (Value, error) {
		var num Number
		if !decodes(this, &num) {
			return nil, incompatible("Number.prototype.toFixed", this)
		}

		var digits int
		if IsPresent(arg(args, 0)) && !decodes(arg(args, 0), &digits) {
			return nil, TypeError{Message: "toFixed() digits must be an integer"}
		}

		if num.isNaN() {
			return String("NaN"), nil
		}

		return String(strconv.FormatFloat(float64(num), 'f', digits, 64)), nil
	})

	for _, proto := range []*Object{NumberPrototype, BooleanPrototype, TokenPrototype} {
		method(proto, "toString", 0, func(this Value, _ ...Value) (Value, error) {
			return String(primitiveOf(this).String()), nil
		})

		method(proto, "valueOf", 0, func(this Value, _ ...Value) (Value, error) {
			return primitiveOf(this), nil
		})
	}
}

func installDatePrototype() {
	thisDate := func(name string, this Value) (*Date, error) {
		var date *Date
		if !decodes(this, &date) {
			return nil, incompatible("Date.prototype."+name, this)
		}

		return date, nil
	}

	method(DatePrototype, "getTime", 0, func(this Value, _ ...Value) (Value, error) {
		date, err := thisDate("getTime", this)
		if err != nil {
			return nil, err
		}

		return date.Millis(), nil
	})

	DatePrototype.SetHidden(String("valueOf"), Get(DatePrototype, String("getTime")))

	method(DatePrototype, "toISOString", 0, func(this Value, _ ...Value) (Value, error) {
		date, err := thisDate("toISOString", this)
		if err != nil {
			return nil, err
		}

		if !date.Valid {
			return nil, NewError("RangeError", "Invalid time value")
		}

		return String(date.Time.UTC().Format("2006-01-02T15:04:05.000Z")), nil
	})

	method(RegExpPrototype, "test", 1, func(this Value, args ...Value) (Value, error) {
		var re *RegExp
		if !decodes(this, &re) {
			return nil, incompatible("RegExp.prototype.test", this)
		}

		return Bool(re.Test(toText(arg(args, 0)))), nil
	})

	method(RegExpPrototype, "toString", 0, func(this Value, _ ...Value) (Value, error) {
		var re *RegExp
		if !decodes(this, &re) {
			return nil, incompatible("RegExp.prototype.toString", this)
		}

		return String(re.String()), nil
	})
}

func installErrorPrototype() {
	ErrorPrototype.SetHidden(String("name"), String("Error"))
	ErrorPrototype.SetHidden(String("message"), String(""))

	method(ErrorPrototype, "toString", 0, func(this Value, _ ...Value) (Value, error) {
		name := toText(Get(this, String("name")))
		msg := toText(Get(this, String("message")))
		if msg == "" {
			return String(name), nil
		}

		return String(name + ": " + msg), nil
	})
}

func installCollectionPrototypes() {
	thisMap := func(name string, this Value) (*Map, error) {
		var m *Map
		if !decodes(this, &m) {
			return nil, incompatible("Map.prototype."+name, this)
		}

		return m, nil
	}

	method(MapPrototype, "get", 1, func(this Value, args ...Value) (Value, error) {
		m, err := thisMap("get", this)
		if err != nil {
			return nil, err
		}

		val, found := m.Load(arg(args, 0))
		if !found {
			return Undefined{}, nil
		}

		return val, nil
	})

	method(MapPrototype, "set", 2, func(this Value, args ...Value) (Value, error) {
		m, err := thisMap("set", this)
		if err != nil {
			return nil, err
		}

		m.Store(arg(args, 0), arg(args, 1))
		return m, nil
	})

	method(MapPrototype, "has", 1, func(this Value, args ...Value) (Value, error) {
		m, err := thisMap("has", this)
		if err != nil {
			return nil, err
		}

		_, found := m.Load(arg(args, 0))
		return Bool(found), nil
	})

	method(MapPrototype, "delete", 1, func(this Value, args ...Value) (Value, error) {
		m, err := thisMap("delete", this)
		if err != nil {
			return nil, err
		}

		return Bool(m.Remove(arg(args, 0))), nil
	})

	method(MapPrototype, "clear", 0, func(this Value, _ ...Value) (Value, error) {
		m, err := thisMap("clear", this)
		if err != nil {
			return nil, err
		}

		m.Clear()
		return Undefined{}, nil
	})

	MapPrototype.SetHidden(IteratorKey, Native("entries", 0, func(this Value, _ ...Value) (Value, error) {
		m, err := thisMap("entries", this)
		if err != nil {
			return nil, err
		}

		var pairs []Value
		for _, e := range m.Entries() {
			pairs = append(pairs, NewArray(e[0], e[1]))
		}

		return newIterator(pairs), nil
	}))

	thisSet := func(name string, this Value) (*Set, error) {
		var s *Set
		if !decodes(this, &s) {
			return nil, incompatible("Set.prototype."+name, this)
		}

		return s, nil
	}

	method(SetPrototype, "add", 1, func(this Value, args ...Value) (Value, error) {
		s, err := thisSet("add", this)
		if err != nil {
			return nil, err
		}

		s.Add(arg(args, 0))
		return s, nil
	})

	method(SetPrototype, "has", 1, func(this Value, args ...Value) (Value, error) {
		s, err := thisSet("has", this)
		if err != nil {
			return nil, err
		}

		return Bool(s.Has(arg(args, 0))), nil
	})

	method(SetPrototype, "delete", 1, func(this Value, args ...Value) (Value, error) {
		s, err := thisSet("delete", this)
		if err != nil {
			return nil, err
		}

		return Bool(s.Remove(arg(args, 0))), nil
	})

	method(SetPrototype, "clear", 0, func(this Value, _ ...Value) (Value, error) {
		s, err := thisSet("clear", this)
		if err != nil {
			return nil, err
		}

		s.Clear()
		return Undefined{}, nil
	})

	SetPrototype.SetHidden(IteratorKey, Native("values", 0, func(this Value, _ ...Value) (Value, error) {
		s, err := thisSet("values", this)
		if err != nil {
			return nil, err
		}

		return newIterator(s.Members()), nil
	}))

	weakKey := func(val Value) (Composite, error) {
		var comp Composite
		if !decodes(val, &comp) {
			return nil, TypeError{Message: fmt.Sprintf("invalid value used as weak key: %s", val)}
		}

		return comp, nil
	}

	method(WeakMapPrototype, "get", 1, func(this Value, args ...Value) (Value, error) {
		var wm *WeakMap
		if !decodes(this, &wm) {
			return nil, incompatible("WeakMap.prototype.get", this)
		}

		var comp Composite
		if !decodes(arg(args, 0), &comp) {
			return Undefined{}, nil
		}

		val, found := wm.Load(comp)
		if !found {
			return Undefined{}, nil
		}

		return val, nil
	})

	method(WeakMapPrototype, "set", 2, func(this Value, args ...Value) (Value, error) {
		var wm *WeakMap
		if !decodes(this, &wm) {
			return nil, incompatible("WeakMap.prototype.set", this)
		}

		key, err := weakKey(arg(args, 0))
		if err != nil {
			return nil, err
		}

		wm.Store(key, arg(args, 1))
		return wm, nil
	})

	method(WeakMapPrototype, "has", 1, func(this Value, args ...Value) (Value, error) {
		var wm *WeakMap
		if !decodes(this, &wm) {
			return nil, incompatible("WeakMap.prototype.has", this)
		}

		var comp Composite
		if !decodes(arg(args, 0), &comp) {
			return Bool(false), nil
		}

		_, found := wm.Load(comp)
		return Bool(found), nil
	})

	method(WeakSetPrototype, "add", 1, func(this Value, args ...Value) (Value, error) {
		var ws *WeakSet
		if !decodes(this, &ws) {
			return nil, incompatible("WeakSet.prototype.add", this)
		}

		member, err := weakKey(arg(args, 0))
		if err != nil {
			return nil, err
		}

		ws.Add(member)
		return ws, nil
	})

	method(WeakSetPrototype, "has", 1, func(this Value, args ...Value) (Value, error) {
		var ws *WeakSet
		if !decodes(this, &ws) {
			return nil, incompatible("WeakSet.prototype.has", this)
		}

		var comp Composite
		if !decodes(arg(args, 0), &comp) {
			return Bool(false), nil
		}

		return Bool(ws.Has(comp)), nil
	})

	method(ArrayBufferPrototype, "slice", 2, func(this Value, args ...Value) (Value, error) {
		var buf *ArrayBuffer
		if !decodes(this, &buf) {
			return nil, incompatible("ArrayBuffer.prototype.slice", this)
		}

		start := relativeIndex(arg(args, 0), len(buf.Bytes), 0)
		end := relativeIndex(arg(args, 1), len(buf.Bytes), len(buf.Bytes))
		if end < start {
			end = start
		}

		sliced := NewArrayBuffer(end - start)
		copy(sliced.Bytes, buf.Bytes[start:end])
		return sliced, nil
	})

	method(DataViewPrototype, "getUint8", 1, func(this Value, args ...Value) (Value, error) {
		var view *DataView
		if !decodes(this, &view) {
			return nil, incompatible("DataView.prototype.getUint8", this)
		}

		var idx int
		if !decodes(arg(args, 0), &idx) || idx < 0 || idx >= view.Length {
			return nil, NewError("RangeError", "Offset is outside the bounds of the DataView")
		}

		return Number(view.Bytes()[idx]), nil
	})

	method(DataViewPrototype, "setUint8", 2, func(this Value, args ...Value) (Value, error) {
		var view *DataView
		if !decodes(this, &view) {
			return nil, incompatible("DataView.prototype.setUint8", this)
		}

		var idx int
		if !decodes(arg(args, 0), &idx) || idx < 0 || idx >= view.Length {
			return nil, NewError("RangeError", "Offset is outside the bounds of the DataView")
		}

		var b Number
		if !decodes(arg(args, 1), &b) {
			b = 0
		}

		view.Bytes()[idx] = byte(int64(b))
		return Undefined{}, nil
	})
}

func installPromisePrototype() {
	method(PromisePrototype, "then", 2, func(this Value, args ...Value) (Value, error) {
		var p *Promise
		if !decodes(this, &p) {
			return nil, incompatible("Promise.prototype.then", this)
		}

		return p.Then(reaction(arg(args, 0)), reaction(arg(args, 1))), nil
	})

	method(PromisePrototype, "catch", 1, func(this Value, args ...Value) (Value, error) {
		var p *Promise
		if !decodes(this, &p) {
			return nil, incompatible("Promise.prototype.catch", this)
		}

		return p.Then(nil, reaction(arg(args, 0))), nil
	})
}

// reaction adapts an invokable value into a Promise reaction. Anything else
// passes the settlement through.
func reaction(val Value) func(Value) (Value, error) {
	var fn *Function
	if !decodes(val, &fn) {
		return nil
	}

	return func(res Value) (Value, error) {
		return fn.Call(Undefined{}, res)
	}
}

// newIterator returns an iterator record over a fixed list of values.
func newIterator(vals []Value) *Object {
	it := NewObject()

	pos := 0
	it.SetHidden(String("next"), Native("next", 0, func(Value, ...Value) (Value, error) {
		if pos >= len(vals) {
			return NewRecord(Slots{"value": Undefined{}, "done": Bool(true)}), nil
		}

		val := vals[pos]
		pos++
		return NewRecord(Slots{"value": val, "done": Bool(false)}), nil
	}))

	it.SetHidden(IteratorKey, Native("[Symbol.iterator]", 0, func(this Value, _ ...Value) (Value, error) {
		return this, nil
	}))

	return it
}

func arg(args []Value, i int) Value {
	if i >= len(args) || args[i] == nil {
		return Undefined{}
	}

	return args[i]
}

func relativeIndex(val Value, n, def int) int {
	var idx int
	if !decodes(val, &idx) {
		return def
	}

	if idx < 0 {
		idx += n
	}

	if idx < 0 {
		return 0
	}

	if idx > n {
		return n
	}

	return idx
}

// toKey converts a value to a slot key.
func toKey(val Value) Key {
	var key Key
	if decodes(val, &key) {
		return key
	}

	return String(toText(val))
}

// toText renders a value the way string conversion would.
func toText(val Value) string {
	var str String
	if decodes(val, &str) {
		return string(str)
	}

	if val == nil {
		return "undefined"
	}

	return val.String()
}

// primitiveOf unwraps a Boxed value.
func primitiveOf(val Value) Value {
	var boxed *Boxed
	if decodes(val, &boxed) {
		return boxed.Primitive
	}

	return val
}

func incompatible(name string, this Value) error {
	return TypeError{
		Message: fmt.Sprintf("%s called on incompatible receiver %s", name, toText(this)),
	}
}
